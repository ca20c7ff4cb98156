package checks

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"catalog-sync/core/catalog"
	"catalog-sync/core/database"
	"catalog-sync/feature/catalogs/models"

	"gorm.io/gorm"
)

// SchemaReport strictly types the result of a schema integrity check.
type SchemaReport struct {
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"` // "ok", "error"
}

// CheckSchema verifies the catalog tables. Every descriptor's sync columns
// (id, updated, deleted, token) must exist, and every model column must exist
// with a compatible type.
func CheckSchema(db *gorm.DB, descs []*catalog.Descriptor, tables []models.Tabler) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Tables:  make(map[string]TableReport),
		Errors:  []string{},
		Matched: true,
	}

	for _, model := range tables {
		tbl, err := checkModel(db, model)
		if err != nil {
			report.Errors = append(report.Errors, err.Error())
			report.Matched = false
			continue
		}
		report.Tables[model.TableName()] = tbl
	}

	for _, desc := range descs {
		missing, err := database.MissingColumns(db, desc.Table, syncColumns(desc))
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", desc.Table, err))
			report.Matched = false
			continue
		}
		if len(missing) == 0 {
			continue
		}

		tbl, ok := report.Tables[desc.Table]
		if !ok {
			tbl = TableReport{MissingColumns: []string{}, TypeMismatches: []string{}}
		}
		for _, col := range missing {
			if !slices.Contains(tbl.MissingColumns, col) {
				tbl.MissingColumns = append(tbl.MissingColumns, col)
			}
		}
		tbl.Status = "error"
		report.Tables[desc.Table] = tbl
	}

	for _, tbl := range report.Tables {
		if tbl.Status != "ok" {
			report.Matched = false
		}
	}
	return report, nil
}

func syncColumns(desc *catalog.Descriptor) []string {
	cols := []string{"id", "updated"}
	if desc.SoftDelete {
		cols = append(cols, "deleted")
	}
	if desc.TokenColumn != "" {
		cols = append(cols, desc.TokenColumn)
	}
	return cols
}

// checkModel compares one gorm model with the live table.
func checkModel(db *gorm.DB, model models.Tabler) (TableReport, error) {
	tableName := model.TableName()
	tbl := TableReport{
		MissingColumns: []string{},
		TypeMismatches: []string{},
		Status:         "ok",
	}

	actualCols, err := database.GetTableColumns(db, tableName)
	if err != nil {
		return tbl, fmt.Errorf("Failed to inspect table %s: %v", tableName, err)
	}

	actualMap := make(map[string]database.ColumnInfo, len(actualCols))
	for _, col := range actualCols {
		actualMap[col.Field] = col
	}

	val := reflect.TypeOf(model)
	for i := 0; i < val.NumField(); i++ {
		gormTag := val.Field(i).Tag.Get("gorm")

		colName := parseGormColumn(gormTag)
		if colName == "" {
			continue
		}

		actCol, exists := actualMap[colName]
		if !exists {
			tbl.MissingColumns = append(tbl.MissingColumns, colName)
			tbl.Status = "error"
			continue
		}

		// Only columns with an explicit type are type-checked. Widths differ
		// between servers (int vs int(11)), so the check is a containment test.
		expType := strings.ToLower(parseGormType(gormTag))
		if expType != "" && !strings.Contains(actCol.Type, expType) {
			tbl.TypeMismatches = append(tbl.TypeMismatches,
				fmt.Sprintf("%s: expected %s, got %s", colName, expType, actCol.Type))
			tbl.Status = "error"
		}
	}
	return tbl, nil
}

// Helpers to parse simple GORM tags
func parseGormColumn(tag string) string {
	return gormTagValue(tag, "column:")
}

func parseGormType(tag string) string {
	return gormTagValue(tag, "type:")
}

func gormTagValue(tag, key string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, key) {
			return strings.TrimPrefix(p, key)
		}
	}
	return ""
}
