package catalogs

import (
	"catalog-sync/core/store"
	"catalog-sync/core/utils"

	"github.com/gofiber/fiber/v2"
)

// Query holds the normalized parameters of a catalog request. Clients in the
// field send all kinds of values, so malformed input is normalized instead of
// rejected: a bad offset reads as 0 and a bad cursor as no cursor.
type Query struct {
	Offset int
	Cursor *store.Cursor
}

// ParseQuery reads offset, updated and after from the request.
func ParseQuery(c *fiber.Ctx) Query {
	var q Query
	if offset, ok := utils.ParseNonNegative(c.Query("offset")); ok {
		q.Offset = int(offset)
	}
	if updated, ok := utils.ParseNonNegative(c.Query("updated")); ok {
		q.Cursor = &store.Cursor{Updated: updated, After: c.Query("after")}
	}
	return q
}
