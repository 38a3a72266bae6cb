package models

import "encoding/json"

// Table is a table in a TablesDB database.
type Table struct {
	ID          string        `json:"$id"`
	CreatedAt   string        `json:"$createdAt"`
	UpdatedAt   string        `json:"$updatedAt"`
	Permissions []string      `json:"$permissions"`
	DatabaseID  string        `json:"databaseId"`
	Name        string        `json:"name"`
	Enabled     bool          `json:"enabled"`
	RowSecurity bool          `json:"rowSecurity"`
	Columns     []Column      `json:"columns"`
	Indexes     []ColumnIndex `json:"indexes"`
}

// TableList is a page of tables.
type TableList struct {
	Total  int     `json:"total"`
	Tables []Table `json:"tables"`
}

// Column describes a table column. Fields not relevant to Type are left zero.
type Column struct {
	Key       string `json:"key"`
	Type      string `json:"type"`
	Status    string `json:"status"`
	Error     string `json:"error"`
	Required  bool   `json:"required"`
	Array     bool   `json:"array,omitempty"`
	CreatedAt string `json:"$createdAt"`
	UpdatedAt string `json:"$updatedAt"`

	Format   string       `json:"format,omitempty"`
	Size     int          `json:"size,omitempty"`
	Min      *json.Number `json:"min,omitempty"`
	Max      *json.Number `json:"max,omitempty"`
	Default  any          `json:"default,omitempty"`
	Elements []string     `json:"elements,omitempty"`
	Encrypt  bool         `json:"encrypt,omitempty"`

	RelatedTable string `json:"relatedTable,omitempty"`
	RelationType string `json:"relationType,omitempty"`
	TwoWay       bool   `json:"twoWay,omitempty"`
	TwoWayKey    string `json:"twoWayKey,omitempty"`
	OnDelete     string `json:"onDelete,omitempty"`
	Side         string `json:"side,omitempty"`
}

// ColumnList is a page of columns.
type ColumnList struct {
	Total   int      `json:"total"`
	Columns []Column `json:"columns"`
}

// ColumnIndex describes a table index.
type ColumnIndex struct {
	ID        string   `json:"$id"`
	CreatedAt string   `json:"$createdAt"`
	UpdatedAt string   `json:"$updatedAt"`
	Key       string   `json:"key"`
	Type      string   `json:"type"`
	Status    string   `json:"status"`
	Error     string   `json:"error"`
	Columns   []string `json:"columns"`
	Lengths   []int    `json:"lengths"`
	Orders    []string `json:"orders"`
}

// ColumnIndexList is a page of table indexes.
type ColumnIndexList struct {
	Total   int           `json:"total"`
	Indexes []ColumnIndex `json:"indexes"`
}
