package catalogs

import (
	"errors"

	"catalog-sync/core/engine"
	"catalog-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for catalogs.
type Handler struct {
	service      *Service
	adminEnabled bool
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, adminEnabled bool) *Handler {
	return &Handler{service: service, adminEnabled: adminEnabled}
}

// RegisterRoutes registers the catalog routes. The catch-all catalog route is
// registered last so it cannot shadow the fixed ones.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/updates", h.HandleUpdates)

	if h.adminEnabled {
		admin := app.Group("/admin")
		admin.Post("/snapshots/purge", h.HandlePurge)
		admin.Post("/lookups/reload", h.HandleReloadLookups)
	}

	app.Get("/:catalog", h.HandleCatalog)
}

// HandleUpdates returns the watermark of every catalog.
// @Summary Catalog Watermarks
// @Description Returns, per group and catalog, the latest updated timestamp (epoch seconds) or null for empty catalogs.
// @Tags catalogs
// @Produce json
// @Success 200 {object} map[string]map[string]int64 "Watermarks"
// @Router /updates [get]
func (h *Handler) HandleUpdates(c *fiber.Ctx) error {
	return c.JSON(h.service.Updates(c.UserContext()))
}

// HandleCatalog returns a catalog page or a delta.
// @Summary Get Catalog Page
// @Description Small catalogs return {items}. Paginated catalogs return {timestamp, next_offset, has_more, items}; with updated, the response is a delta and carries next_cursor.
// @Tags catalogs
// @Produce json
// @Param catalog path string true "Catalog name (e.g. 'cities')"
// @Param offset query int false "Page offset, floored to the page size"
// @Param updated query int false "Delta cursor: return records updated after this epoch"
// @Param after query string false "Delta cursor tie-break token from next_cursor"
// @Success 200 {object} engine.Page "Page"
// @Failure 404 {object} map[string]string "Unknown catalog"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /{catalog} [get]
func (h *Handler) HandleCatalog(c *fiber.Ctx) error {
	name := c.Params("catalog")
	l := logger.WithRayID(h.service.logger, c)

	page, err := h.service.Get(c.UserContext(), name, ParseQuery(c))
	if err != nil {
		if errors.Is(err, engine.ErrUnknownCatalog) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown catalog"})
		}
		l.Error("Catalog request failed", zap.String("catalog", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(page.JSON())
}

// HandlePurge removes cached snapshot pages.
// @Summary Purge Snapshot Pages
// @Description Removes the cached pages of one catalog, or of every catalog when no catalog is given.
// @Tags admin
// @Produce json
// @Param catalog query string false "Catalog name"
// @Success 200 {object} map[string]int "Removed pages"
// @Failure 404 {object} map[string]string "Unknown catalog"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /admin/snapshots/purge [post]
func (h *Handler) HandlePurge(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var names []string
	if name := c.Query("catalog"); name != "" {
		names = append(names, name)
	}

	removed, err := h.service.Purge(c.UserContext(), names...)
	if err != nil {
		if errors.Is(err, engine.ErrUnknownCatalog) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown catalog"})
		}
		l.Error("Snapshot purge failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}

	l.Info("Snapshot pages purged via API", zap.Strings("catalogs", names), zap.Int("removed", removed))
	return c.JSON(fiber.Map{"removed": removed})
}

// HandleReloadLookups reloads every lookup table.
// @Summary Reload Lookups
// @Description Reloads the id to token lookup tables from the database.
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]string "Status"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /admin/lookups/reload [post]
func (h *Handler) HandleReloadLookups(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.ReloadLookups(c.UserContext()); err != nil {
		l.Error("Lookup reload failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
