package store

import (
	"context"
	"fmt"
	"strings"

	"catalog-sync/core/catalog"
	"catalog-sync/core/utils"

	"gorm.io/gorm"
)

// GormStore implements Store on top of a gorm connection.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a store backed by db.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Scan runs a snapshot or delta scan for desc.
func (s *GormStore) Scan(ctx context.Context, desc *catalog.Descriptor, q ScanQuery) ([]Row, error) {
	tx := s.db.WithContext(ctx).
		Table(desc.Table).
		Select(strings.Join(desc.SelectList(), ", "))

	for _, join := range desc.Joins {
		tx = tx.Joins(join)
	}

	id := desc.Qualify("id")
	if q.Cursor == nil {
		if desc.SoftDelete {
			tx = tx.Where(desc.Qualify("deleted") + " IS NULL")
		}
		tx = tx.Order(id + " ASC")
	} else {
		updated := desc.Qualify("updated")
		if q.Cursor.After != "" && desc.TokenColumn != "" {
			token := desc.Qualify(desc.TokenColumn)
			tx = tx.Where(
				fmt.Sprintf("(%s > ? OR (%s = ? AND %s > ?))", updated, updated, token),
				q.Cursor.Updated, q.Cursor.Updated, q.Cursor.After,
			)
		} else {
			tx = tx.Where(updated+" > ?", q.Cursor.Updated)
		}
		tx = tx.Order(updated + " ASC")
		if desc.TokenColumn != "" {
			tx = tx.Order(desc.Qualify(desc.TokenColumn) + " ASC")
		}
		tx = tx.Order(id + " ASC")
	}

	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
		if q.Offset > 0 {
			tx = tx.Offset(q.Offset)
		}
	}

	var raw []map[string]any
	if err := tx.Find(&raw).Error; err != nil {
		return nil, fmt.Errorf("scan %s: %w", desc.Table, err)
	}

	rows := make([]Row, len(raw))
	for i, r := range raw {
		rows[i] = Row(r)
	}
	return rows, nil
}

type maxUpdatedRow struct {
	MaxUpdated *int64 `gorm:"column:max_updated"`
}

// MaxUpdated returns MAX(updated) of table.
func (s *GormStore) MaxUpdated(ctx context.Context, table string) (*int64, error) {
	var result maxUpdatedRow
	err := s.db.WithContext(ctx).
		Table(table).
		Select("MAX(updated) AS max_updated").
		Scan(&result).Error
	if err != nil {
		return nil, fmt.Errorf("max updated of %s: %w", table, err)
	}
	return result.MaxUpdated, nil
}

// Tokens loads every (keys, token) pair of table.
func (s *GormStore) Tokens(ctx context.Context, table string, keyColumns []string, tokenColumn string) ([]TokenRow, error) {
	if len(keyColumns) == 0 {
		return nil, fmt.Errorf("tokens of %s: at least one key column is required", table)
	}

	cols := make([]string, 0, len(keyColumns)+1)
	for i, key := range keyColumns {
		cols = append(cols, fmt.Sprintf("%s AS k%d", key, i))
	}
	cols = append(cols, tokenColumn+" AS token")

	var raw []map[string]any
	err := s.db.WithContext(ctx).
		Table(table).
		Select(strings.Join(cols, ", ")).
		Find(&raw).Error
	if err != nil {
		return nil, fmt.Errorf("tokens of %s: %w", table, err)
	}

	out := make([]TokenRow, 0, len(raw))
	for _, r := range raw {
		keys := make([]int64, len(keyColumns))
		for i := range keyColumns {
			keys[i] = utils.ToInt64(r[fmt.Sprintf("k%d", i)])
		}
		out = append(out, TokenRow{Keys: keys, Token: utils.ToString(r["token"])})
	}
	return out, nil
}
