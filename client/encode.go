package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/DrewBradfordXYZ/appwrite-go/core"
)

// encodeQuery flattens params into a query string. Arrays become key[0],
// key[1] and maps key[sub]; nil values are skipped. Keys are emitted in sorted
// order and array elements in index order.
func encodeQuery(params map[string]any) string {
	var pairs []string
	for _, k := range sortedKeys(params) {
		flatten(k, params[k], func(key, value string) {
			pairs = append(pairs, url.QueryEscape(key)+"="+url.QueryEscape(value))
		})
	}
	return strings.Join(pairs, "&")
}

func flatten(key string, v any, emit func(key, value string)) {
	if v == nil {
		return
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			emit(key, string(rv.Bytes()))
			return
		}
		for i := 0; i < rv.Len(); i++ {
			flatten(fmt.Sprintf("%s[%d]", key, i), rv.Index(i).Interface(), emit)
		}
	case reflect.Map:
		keys := rv.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return strings.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
		})
		for _, mk := range keys {
			flatten(fmt.Sprintf("%s[%v]", key, mk.Interface()), rv.MapIndex(mk).Interface(), emit)
		}
	default:
		emit(key, formatScalar(rv))
	}
}

func formatScalar(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	case reflect.String:
		return rv.String()
	}
	if s, ok := rv.Interface().(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(rv.Interface())
}

// encodeJSON marshals params as the request body. Nil params encode as {}.
func encodeJSON(params map[string]any) ([]byte, error) {
	if params == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(params)
}

// encodeMultipart writes params as multipart/form-data. InputFile values
// become file parts, arrays repeated key[] fields and maps key[sub] fields.
// It returns the body and the content type including the boundary.
func encodeMultipart(params map[string]any) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, k := range sortedKeys(params) {
		if err := writePart(w, k, params[k]); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

func writePart(w *multipart.Writer, key string, v any) error {
	switch f := v.(type) {
	case nil:
		return nil
	case core.InputFile:
		return writeFilePart(w, key, f)
	case *core.InputFile:
		if f == nil {
			return nil
		}
		return writeFilePart(w, key, *f)
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return w.WriteField(key, string(rv.Bytes()))
		}
		for i := 0; i < rv.Len(); i++ {
			if err := writePart(w, key+"[]", rv.Index(i).Interface()); err != nil {
				return err
			}
		}
		return nil
	case reflect.Map:
		keys := rv.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return strings.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
		})
		for _, mk := range keys {
			if err := writePart(w, fmt.Sprintf("%s[%v]", key, mk.Interface()), rv.MapIndex(mk).Interface()); err != nil {
				return err
			}
		}
		return nil
	}
	return w.WriteField(key, formatScalar(rv))
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func writeFilePart(w *multipart.Writer, key string, f core.InputFile) error {
	data, err := f.Bytes()
	if err != nil {
		return fmt.Errorf("reading upload %q: %w", key, err)
	}
	filename := f.Filename()
	if filename == "" {
		filename = key
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(key), quoteEscaper.Replace(filename)))
	h.Set("Content-Type", "application/octet-stream")
	part, err := w.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = part.Write(data)
	return err
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
