// Package query builds the query strings accepted by list endpoints.
//
// Each helper returns the JSON form the server parses, e.g.
//
//	query.Equal("status", "active")  // {"method":"equal","attribute":"status","values":["active"]}
//	query.Limit(25)                  // {"method":"limit","values":[25]}
//
// Queries are passed as a []string:
//
//	rows, err := tables.ListRows(ctx, tablesdb.ListRowsParams{
//	    DatabaseID: "main",
//	    TableID:    "orders",
//	    Queries: []string{
//	        query.Equal("status", "paid"),
//	        query.OrderDesc("$createdAt"),
//	        query.Limit(50),
//	    },
//	})
package query

import (
	"encoding/json"
	"reflect"
)

// Query is the parsed form of a single query.
type Query struct {
	Method    string `json:"method"`
	Attribute string `json:"attribute,omitempty"`
	Values    []any  `json:"values,omitempty"`
}

// String returns the JSON encoding of q, or "" if q cannot be encoded.
func (q Query) String() string {
	b, err := json.Marshal(q)
	if err != nil {
		return ""
	}
	return string(b)
}

// Parse decodes a query string produced by this package.
func Parse(s string) (Query, error) {
	var q Query
	err := json.Unmarshal([]byte(s), &q)
	return q, err
}

// toValues wraps scalars in a slice; slices and arrays are spread.
func toValues(value any) []any {
	if value == nil {
		return []any{nil}
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		if _, isBytes := value.([]byte); isBytes {
			return []any{value}
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	}
	return []any{value}
}

func build(method, attribute string, values []any) string {
	return Query{Method: method, Attribute: attribute, Values: values}.String()
}

// Equal filters where attribute equals value. A slice value matches any element.
func Equal(attribute string, value any) string {
	return build("equal", attribute, toValues(value))
}

// NotEqual filters where attribute does not equal value.
func NotEqual(attribute string, value any) string {
	return build("notEqual", attribute, toValues(value))
}

// LessThan filters where attribute < value.
func LessThan(attribute string, value any) string {
	return build("lessThan", attribute, toValues(value))
}

// LessThanEqual filters where attribute <= value.
func LessThanEqual(attribute string, value any) string {
	return build("lessThanEqual", attribute, toValues(value))
}

// GreaterThan filters where attribute > value.
func GreaterThan(attribute string, value any) string {
	return build("greaterThan", attribute, toValues(value))
}

// GreaterThanEqual filters where attribute >= value.
func GreaterThanEqual(attribute string, value any) string {
	return build("greaterThanEqual", attribute, toValues(value))
}

// IsNull filters where attribute is null.
func IsNull(attribute string) string {
	return build("isNull", attribute, nil)
}

// IsNotNull filters where attribute is not null.
func IsNotNull(attribute string) string {
	return build("isNotNull", attribute, nil)
}

// Between filters where start <= attribute <= end.
func Between(attribute string, start, end any) string {
	return build("between", attribute, []any{start, end})
}

// NotBetween filters where attribute is outside [start, end].
func NotBetween(attribute string, start, end any) string {
	return build("notBetween", attribute, []any{start, end})
}

// StartsWith filters string attributes by prefix.
func StartsWith(attribute, value string) string {
	return build("startsWith", attribute, []any{value})
}

// NotStartsWith filters string attributes not having the prefix.
func NotStartsWith(attribute, value string) string {
	return build("notStartsWith", attribute, []any{value})
}

// EndsWith filters string attributes by suffix.
func EndsWith(attribute, value string) string {
	return build("endsWith", attribute, []any{value})
}

// NotEndsWith filters string attributes not having the suffix.
func NotEndsWith(attribute, value string) string {
	return build("notEndsWith", attribute, []any{value})
}

// Contains filters arrays containing value, or strings containing the substring.
func Contains(attribute string, value any) string {
	return build("contains", attribute, toValues(value))
}

// NotContains is the negation of Contains.
func NotContains(attribute string, value any) string {
	return build("notContains", attribute, toValues(value))
}

// Search runs a full-text search against an attribute with a fulltext index.
func Search(attribute, value string) string {
	return build("search", attribute, []any{value})
}

// NotSearch is the negation of Search.
func NotSearch(attribute, value string) string {
	return build("notSearch", attribute, []any{value})
}

// Select limits the returned attributes.
func Select(attributes ...string) string {
	values := make([]any, len(attributes))
	for i, a := range attributes {
		values[i] = a
	}
	return build("select", "", values)
}

// OrderAsc sorts ascending by attribute.
func OrderAsc(attribute string) string {
	return build("orderAsc", attribute, nil)
}

// OrderDesc sorts descending by attribute.
func OrderDesc(attribute string) string {
	return build("orderDesc", attribute, nil)
}

// OrderRandom returns results in random order.
func OrderRandom() string {
	return build("orderRandom", "", nil)
}

// CursorAfter returns results after the resource with the given ID.
func CursorAfter(id string) string {
	return build("cursorAfter", "", []any{id})
}

// CursorBefore returns results before the resource with the given ID.
func CursorBefore(id string) string {
	return build("cursorBefore", "", []any{id})
}

// Limit caps the number of results.
func Limit(n int) string {
	return build("limit", "", []any{n})
}

// Offset skips the first n results.
func Offset(n int) string {
	return build("offset", "", []any{n})
}

// CreatedBefore filters resources created before the given datetime.
func CreatedBefore(value string) string {
	return build("createdBefore", "", []any{value})
}

// CreatedAfter filters resources created after the given datetime.
func CreatedAfter(value string) string {
	return build("createdAfter", "", []any{value})
}

// UpdatedBefore filters resources updated before the given datetime.
func UpdatedBefore(value string) string {
	return build("updatedBefore", "", []any{value})
}

// UpdatedAfter filters resources updated after the given datetime.
func UpdatedAfter(value string) string {
	return build("updatedAfter", "", []any{value})
}

// Or matches when any of the given queries matches. Entries that are not
// JSON queries are skipped.
func Or(queries ...string) string {
	return build("or", "", nested(queries))
}

// And matches when all of the given queries match. Entries that are not
// JSON queries are skipped.
func And(queries ...string) string {
	return build("and", "", nested(queries))
}

// nested embeds queries as JSON objects rather than strings.
func nested(queries []string) []any {
	values := make([]any, 0, len(queries))
	for _, q := range queries {
		if !json.Valid([]byte(q)) {
			continue
		}
		values = append(values, json.RawMessage(q))
	}
	return values
}
