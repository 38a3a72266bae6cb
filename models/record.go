package models

import (
	"encoding/json"
	"strings"
)

// Document is a document in a collection. System attributes are decoded into
// fields; user attributes are kept in Data. Decode unmarshals the full document
// into a caller-defined struct.
type Document struct {
	ID           string         `json:"$id"`
	Sequence     json.Number    `json:"$sequence"`
	CollectionID string         `json:"$collectionId"`
	DatabaseID   string         `json:"$databaseId"`
	CreatedAt    string         `json:"$createdAt"`
	UpdatedAt    string         `json:"$updatedAt"`
	Permissions  []string       `json:"$permissions"`
	Data         map[string]any `json:"-"`

	raw json.RawMessage
}

// UnmarshalJSON decodes system attributes and keeps user attributes in Data.
func (d *Document) UnmarshalJSON(b []byte) error {
	type system Document
	var s system
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	data, err := userAttributes(b)
	if err != nil {
		return err
	}
	*d = Document(s)
	d.Data = data
	d.raw = append(d.raw[:0], b...)
	return nil
}

// MarshalJSON re-assembles the document in wire format.
func (d Document) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(d.Data)+7)
	for k, v := range d.Data {
		out[k] = v
	}
	out["$id"] = d.ID
	out["$collectionId"] = d.CollectionID
	out["$databaseId"] = d.DatabaseID
	out["$createdAt"] = d.CreatedAt
	out["$updatedAt"] = d.UpdatedAt
	out["$permissions"] = d.Permissions
	if d.Sequence != "" {
		out["$sequence"] = d.Sequence
	}
	return json.Marshal(out)
}

// Decode unmarshals the document into v.
func (d Document) Decode(v any) error {
	return decodeRecord(d.raw, d, v)
}

// DocumentList is a page of documents.
type DocumentList struct {
	Total     int        `json:"total"`
	Documents []Document `json:"documents"`
}

// Row is a row in a TablesDB table. System columns are decoded into fields;
// user columns are kept in Data.
type Row struct {
	ID          string         `json:"$id"`
	Sequence    json.Number    `json:"$sequence"`
	TableID     string         `json:"$tableId"`
	DatabaseID  string         `json:"$databaseId"`
	CreatedAt   string         `json:"$createdAt"`
	UpdatedAt   string         `json:"$updatedAt"`
	Permissions []string       `json:"$permissions"`
	Data        map[string]any `json:"-"`

	raw json.RawMessage
}

// UnmarshalJSON decodes system columns and keeps user columns in Data.
func (r *Row) UnmarshalJSON(b []byte) error {
	type system Row
	var s system
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	data, err := userAttributes(b)
	if err != nil {
		return err
	}
	*r = Row(s)
	r.Data = data
	r.raw = append(r.raw[:0], b...)
	return nil
}

// MarshalJSON re-assembles the row in wire format.
func (r Row) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Data)+7)
	for k, v := range r.Data {
		out[k] = v
	}
	out["$id"] = r.ID
	out["$tableId"] = r.TableID
	out["$databaseId"] = r.DatabaseID
	out["$createdAt"] = r.CreatedAt
	out["$updatedAt"] = r.UpdatedAt
	out["$permissions"] = r.Permissions
	if r.Sequence != "" {
		out["$sequence"] = r.Sequence
	}
	return json.Marshal(out)
}

// Decode unmarshals the row into v.
func (r Row) Decode(v any) error {
	return decodeRecord(r.raw, r, v)
}

// RowList is a page of rows.
type RowList struct {
	Total int   `json:"total"`
	Rows  []Row `json:"rows"`
}

func userAttributes(b []byte) (map[string]any, error) {
	var all map[string]any
	if err := json.Unmarshal(b, &all); err != nil {
		return nil, err
	}
	data := make(map[string]any, len(all))
	for k, v := range all {
		if strings.HasPrefix(k, "$") {
			continue
		}
		data[k] = v
	}
	return data, nil
}

// decodeRecord prefers the bytes received from the server and falls back to
// re-marshalling records built in memory.
func decodeRecord(raw json.RawMessage, fallback json.Marshaler, v any) error {
	if len(raw) == 0 {
		b, err := fallback.MarshalJSON()
		if err != nil {
			return err
		}
		raw = b
	}
	return json.Unmarshal(raw, v)
}
