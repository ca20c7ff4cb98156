package catalog

import (
	"fmt"
	"strings"
)

// FieldKind controls how the renderer turns a row value into a public field.
type FieldKind int

const (
	// KindString copies the value as a string.
	KindString FieldKind = iota
	// KindInt copies the value as an integer.
	KindInt
	// KindFloat copies the value as a float.
	KindFloat
	// KindBool copies the value as a boolean and always emits it.
	KindBool
	// KindSparseBool emits true and omits the field entirely when false.
	KindSparseBool
	// KindNullableInt emits an integer or null (e.g. the deleted marker).
	KindNullableInt
	// KindLookup substitutes a token from a process-wide lookup table.
	KindLookup
	// KindInline substitutes a token from an inline scan done per render.
	KindInline
)

// Field is one entry of a catalog's public projection.
type Field struct {
	// Name is the public JSON name.
	Name string
	// Column is the row key the value is read from. Unused for lookups.
	Column string
	Kind   FieldKind
	// Ref names the lookup table (KindLookup) or inline scan (KindInline).
	Ref string
	// Keys are the row columns forming the reference key, outermost first.
	Keys []string
}

// Column is a projected SQL expression and the row key it lands under.
type Column struct {
	Expr string
	As   string
}

// InlineScan is a small table scanned in full on every render to resolve
// parent/child tokens without going through the lookup cache.
type InlineScan struct {
	Name        string
	Table       string
	TokenColumn string
}

// Descriptor describes one syncable catalog.
type Descriptor struct {
	Name  string
	Group string
	// Table is the source table. It owns the id, updated and deleted columns.
	Table string
	// Joins are raw JOIN clauses appended to every scan.
	Joins   []string
	Columns []Column
	Fields  []Field
	// PageSize is the fixed page size of paginated catalogs.
	PageSize int
	// Paginated marks large catalogs served in offset-addressed pages.
	// Small catalogs are served (and cached) as a single page.
	Paginated bool
	// Delta marks catalogs that accept an updated cursor.
	Delta bool
	// SoftDelete marks tables carrying a nullable deleted column.
	SoftDelete bool
	// TokenColumn is the unique token column of Table, used as the cursor
	// tie-break. It must also be selected under its own name.
	TokenColumn string
	// WatermarkTables are additional tables whose updated column contributes
	// to the catalog watermark (composite catalogs).
	WatermarkTables []string
	Inline          []InlineScan
}

// Qualify prefixes column with the source table name.
func (d *Descriptor) Qualify(column string) string {
	return d.Table + "." + column
}

// SelectList returns the projection used by every scan. The primary key and
// sync columns are always selected, under the row keys id, updated and deleted.
func (d *Descriptor) SelectList() []string {
	list := []string{
		d.Qualify("id") + " AS id",
		d.Qualify("updated") + " AS updated",
	}
	if d.SoftDelete {
		list = append(list, d.Qualify("deleted")+" AS deleted")
	}
	for _, col := range d.Columns {
		list = append(list, col.Expr+" AS "+col.As)
	}
	return list
}

// WatermarkSources returns every table whose updated column feeds the watermark.
func (d *Descriptor) WatermarkSources() []string {
	return append([]string{d.Table}, d.WatermarkTables...)
}

// LookupRefs returns the distinct lookup tables the projection depends on.
func (d *Descriptor) LookupRefs() []string {
	seen := make(map[string]struct{})
	var refs []string
	for _, f := range d.Fields {
		if f.Kind != KindLookup {
			continue
		}
		if _, ok := seen[f.Ref]; ok {
			continue
		}
		seen[f.Ref] = struct{}{}
		refs = append(refs, f.Ref)
	}
	return refs
}

// EffectivePageSize returns the page size used for scans. Small catalogs
// have no page grid and return 0.
func (d *Descriptor) EffectivePageSize() int {
	if !d.Paginated {
		return 0
	}
	return d.PageSize
}

// NormalizeOffset floors offset to the page grid. Negative offsets become 0.
func (d *Descriptor) NormalizeOffset(offset int) int {
	if offset <= 0 || !d.Paginated || d.PageSize <= 0 {
		return 0
	}
	return (offset / d.PageSize) * d.PageSize
}

// Validate checks that the descriptor is internally consistent.
func (d *Descriptor) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("catalog name is required")
	}
	if d.Group == "" {
		return fmt.Errorf("catalog %s: group is required", d.Name)
	}
	if d.Table == "" {
		return fmt.Errorf("catalog %s: table is required", d.Name)
	}
	if d.Paginated && d.PageSize <= 0 {
		return fmt.Errorf("catalog %s: paginated catalogs need a positive page size", d.Name)
	}
	if d.Delta && !d.Paginated {
		return fmt.Errorf("catalog %s: delta sync requires a paginated catalog", d.Name)
	}

	aliases := make(map[string]struct{}, len(d.Columns))
	for _, col := range d.Columns {
		if col.As == "id" || col.As == "updated" || col.As == "deleted" {
			return fmt.Errorf("catalog %s: column alias %q is reserved", d.Name, col.As)
		}
		aliases[col.As] = struct{}{}
	}
	if d.TokenColumn != "" {
		if _, ok := aliases[d.TokenColumn]; !ok {
			return fmt.Errorf("catalog %s: token column %q is not selected", d.Name, d.TokenColumn)
		}
	}
	aliases["id"] = struct{}{}
	aliases["updated"] = struct{}{}
	if d.SoftDelete {
		aliases["deleted"] = struct{}{}
	}

	inline := make(map[string]struct{}, len(d.Inline))
	for _, scan := range d.Inline {
		inline[scan.Name] = struct{}{}
	}

	names := make(map[string]struct{}, len(d.Fields))
	for _, f := range d.Fields {
		if f.Name == "id" || strings.HasSuffix(f.Name, "_id") {
			return fmt.Errorf("catalog %s: field %q would expose an internal id", d.Name, f.Name)
		}
		if _, dup := names[f.Name]; dup {
			return fmt.Errorf("catalog %s: duplicate field %q", d.Name, f.Name)
		}
		names[f.Name] = struct{}{}

		switch f.Kind {
		case KindLookup, KindInline:
			if f.Ref == "" || len(f.Keys) == 0 {
				return fmt.Errorf("catalog %s: reference field %q needs a ref and keys", d.Name, f.Name)
			}
			if f.Kind == KindInline {
				if _, ok := inline[f.Ref]; !ok {
					return fmt.Errorf("catalog %s: field %q references unknown inline scan %q", d.Name, f.Name, f.Ref)
				}
			}
			for _, key := range f.Keys {
				if _, ok := aliases[key]; !ok {
					return fmt.Errorf("catalog %s: field %q key %q is not selected", d.Name, f.Name, key)
				}
			}
		default:
			if _, ok := aliases[f.Column]; !ok {
				return fmt.Errorf("catalog %s: field %q column %q is not selected", d.Name, f.Name, f.Column)
			}
		}
	}
	return nil
}
