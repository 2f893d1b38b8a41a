package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo describes one column of a table.
type ColumnInfo struct {
	Field   string
	Type    string
	NotNull bool
	Default *string // Pointer because NULL default is possible
	Primary bool
}

// GetTableColumns retrieves the column definitions for a given table
// via PRAGMA table_info. Field and Type are normalized to lowercase.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	type sqliteColumn struct {
		Cid        int
		Name       string
		Type       string
		Notnull    int
		DefaultVal *string
		Pk         int
	}
	var raw []sqliteColumn
	if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", tableName)).Scan(&raw).Error; err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}
	columns := make([]ColumnInfo, 0, len(raw))
	for _, col := range raw {
		columns = append(columns, ColumnInfo{
			Field:   strings.ToLower(col.Name),
			Type:    strings.ToLower(col.Type),
			NotNull: col.Notnull != 0,
			Default: col.DefaultVal,
			Primary: col.Pk != 0,
		})
	}
	return columns, nil
}

// HasColumn reports whether the table defines the named column.
func HasColumn(columns []ColumnInfo, name string) bool {
	name = strings.ToLower(name)
	for _, col := range columns {
		if col.Field == name {
			return true
		}
	}
	return false
}
