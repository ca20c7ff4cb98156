package render

import (
	"context"
	"fmt"

	"catalog-sync/core/catalog"
	"catalog-sync/core/store"
	"catalog-sync/core/utils"
)

// Record is one rendered catalog entry. encoding/json writes map keys in
// sorted order, so a rendered page always serializes to the same bytes.
type Record map[string]any

// Resolver resolves a reference key to its public token.
type Resolver interface {
	Resolve(name string, keys ...int64) (string, bool)
}

// InlineTokens holds the result of a descriptor's inline scans, keyed by scan
// name and then by row id.
type InlineTokens map[string]map[int64]string

// Resolve implements Resolver for single-key inline scans.
func (t InlineTokens) Resolve(name string, keys ...int64) (string, bool) {
	if len(keys) != 1 {
		return "", false
	}
	tokens, ok := t[name]
	if !ok {
		return "", false
	}
	token, ok := tokens[keys[0]]
	return token, ok
}

// LoadInline runs every inline scan of desc in full. It is called once per
// render, so parent changes are visible immediately.
func LoadInline(ctx context.Context, st store.Store, desc *catalog.Descriptor) (InlineTokens, error) {
	if len(desc.Inline) == 0 {
		return nil, nil
	}
	out := make(InlineTokens, len(desc.Inline))
	for _, scan := range desc.Inline {
		rows, err := st.Tokens(ctx, scan.Table, []string{"id"}, scan.TokenColumn)
		if err != nil {
			return nil, fmt.Errorf("inline scan %s: %w", scan.Name, err)
		}
		tokens := make(map[int64]string, len(rows))
		for _, row := range rows {
			tokens[row.Keys[0]] = row.Token
		}
		out[scan.Name] = tokens
	}
	return out, nil
}

// Render projects rows onto the public fields of desc. Only declared fields
// are emitted; references that cannot be resolved render as null.
func Render(desc *catalog.Descriptor, rows []store.Row, lookups, inline Resolver) []Record {
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, renderRow(desc, row, lookups, inline))
	}
	return records
}

func renderRow(desc *catalog.Descriptor, row store.Row, lookups, inline Resolver) Record {
	rec := make(Record, len(desc.Fields))
	for _, f := range desc.Fields {
		switch f.Kind {
		case catalog.KindString:
			if v := row[f.Column]; v != nil {
				rec[f.Name] = utils.ToString(v)
			} else {
				rec[f.Name] = nil
			}
		case catalog.KindInt:
			if v := row[f.Column]; v != nil {
				rec[f.Name] = utils.ToInt64(v)
			} else {
				rec[f.Name] = nil
			}
		case catalog.KindFloat:
			if v := row[f.Column]; v != nil {
				rec[f.Name] = utils.ToFloat(v)
			} else {
				rec[f.Name] = nil
			}
		case catalog.KindBool:
			rec[f.Name] = utils.ToBool(row[f.Column])
		case catalog.KindSparseBool:
			if utils.ToBool(row[f.Column]) {
				rec[f.Name] = true
			}
		case catalog.KindNullableInt:
			if v := utils.ToNullableInt64(row[f.Column]); v != nil {
				rec[f.Name] = *v
			} else {
				rec[f.Name] = nil
			}
		case catalog.KindLookup:
			rec[f.Name] = resolve(lookups, f, row)
		case catalog.KindInline:
			rec[f.Name] = resolve(inline, f, row)
		}
	}
	return rec
}

func resolve(r Resolver, f catalog.Field, row store.Row) any {
	if r == nil {
		return nil
	}
	keys := make([]int64, 0, len(f.Keys))
	for _, column := range f.Keys {
		key := utils.ToNullableInt64(row[column])
		if key == nil {
			return nil
		}
		keys = append(keys, *key)
	}
	token, ok := r.Resolve(f.Ref, keys...)
	if !ok {
		return nil
	}
	return token
}
