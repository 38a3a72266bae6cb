// Package models contains the response types returned by the API.
//
// Field names follow Go conventions; JSON tags match the server's wire format,
// including the $-prefixed system attributes ($id, $createdAt, ...).
package models

import (
	"encoding/json"
	"time"

	"github.com/DrewBradfordXYZ/appwrite-go/core"
)

// Database is a database in the legacy databases or TablesDB API.
type Database struct {
	ID        string `json:"$id"`
	Name      string `json:"name"`
	CreatedAt string `json:"$createdAt"`
	UpdatedAt string `json:"$updatedAt"`
	Enabled   bool   `json:"enabled"`
	Type      string `json:"type"`
}

// Created parses CreatedAt.
func (d Database) Created() (time.Time, error) {
	return core.ParseISODate(d.CreatedAt)
}

// DatabaseList is a page of databases.
type DatabaseList struct {
	Total     int        `json:"total"`
	Databases []Database `json:"databases"`
}

// Transaction is a server-side transaction that batches write operations.
type Transaction struct {
	ID         string `json:"$id"`
	CreatedAt  string `json:"$createdAt"`
	UpdatedAt  string `json:"$updatedAt"`
	Status     string `json:"status"`
	Operations int    `json:"operations"`
	ExpiresAt  string `json:"expiresAt"`
}

// TransactionList is a page of transactions.
type TransactionList struct {
	Total        int           `json:"total"`
	Transactions []Transaction `json:"transactions"`
}

// Operation is a single staged write inside a transaction.
type Operation struct {
	Action       string         `json:"action"`
	DatabaseID   string         `json:"databaseId"`
	CollectionID string         `json:"collectionId,omitempty"`
	TableID      string         `json:"tableId,omitempty"`
	DocumentID   string         `json:"documentId,omitempty"`
	RowID        string         `json:"rowId,omitempty"`
	Data         map[string]any `json:"data,omitempty"`
}

// Collection is a collection in the legacy databases API.
type Collection struct {
	ID               string      `json:"$id"`
	CreatedAt        string      `json:"$createdAt"`
	UpdatedAt        string      `json:"$updatedAt"`
	Permissions      []string    `json:"$permissions"`
	DatabaseID       string      `json:"databaseId"`
	Name             string      `json:"name"`
	Enabled          bool        `json:"enabled"`
	DocumentSecurity bool        `json:"documentSecurity"`
	Attributes       []Attribute `json:"attributes"`
	Indexes          []Index     `json:"indexes"`
}

// CollectionList is a page of collections.
type CollectionList struct {
	Total       int          `json:"total"`
	Collections []Collection `json:"collections"`
}

// Attribute describes a collection attribute. The server returns one shape per
// attribute type; fields not relevant to Type are left zero.
type Attribute struct {
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

	RelatedCollection string `json:"relatedCollection,omitempty"`
	RelationType      string `json:"relationType,omitempty"`
	TwoWay            bool   `json:"twoWay,omitempty"`
	TwoWayKey         string `json:"twoWayKey,omitempty"`
	OnDelete          string `json:"onDelete,omitempty"`
	Side              string `json:"side,omitempty"`
}

// AttributeList is a page of attributes.
type AttributeList struct {
	Total      int         `json:"total"`
	Attributes []Attribute `json:"attributes"`
}

// Index describes a collection index.
type Index struct {
	ID         string   `json:"$id"`
	CreatedAt  string   `json:"$createdAt"`
	UpdatedAt  string   `json:"$updatedAt"`
	Key        string   `json:"key"`
	Type       string   `json:"type"`
	Status     string   `json:"status"`
	Error      string   `json:"error"`
	Attributes []string `json:"attributes"`
	Lengths    []int    `json:"lengths"`
	Orders     []string `json:"orders"`
}

// IndexList is a page of collection indexes.
type IndexList struct {
	Total   int     `json:"total"`
	Indexes []Index `json:"indexes"`
}
