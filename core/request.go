package core

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/oapi-codegen/runtime/types"
)

// Content types used by service requests.
const (
	ContentTypeJSON      = "application/json"
	ContentTypeMultipart = "multipart/form-data"
)

// Request describes a single API call. Path is relative to the client endpoint.
// For GET requests Params are encoded into the query string, otherwise into the
// body according to the content-type header.
type Request struct {
	Method  string
	Path    string
	Headers map[string]string
	Params  map[string]any
}

// ContentType returns the content-type header of the request, if any.
func (r *Request) ContentType() string {
	for k, v := range r.Headers {
		if strings.EqualFold(k, "content-type") {
			return v
		}
	}
	return ""
}

// Caller is the transport every service delegates to.
// It is implemented by *client.Client.
//
// By depending on this interface rather than the concrete client, services:
//   - Avoid import cycles with the client package
//   - Remain easily testable with mock implementations
type Caller interface {
	// Call sends req and decodes the response into out.
	// A nil out discards the body; a *[]byte receives the raw body.
	Call(ctx context.Context, req *Request, out any) error

	// ChunkedUpload sends req as multipart, splitting the file found in
	// req.Params[upload.ParamName] into chunks when it exceeds the chunk size.
	ChunkedUpload(ctx context.Context, req *Request, upload Upload, out any) error
}

// Fetch sends req through caller and decodes the response into a new T.
func Fetch[T any](ctx context.Context, caller Caller, req *Request) (*T, error) {
	var out T
	if err := caller.Call(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// InputFile is a file to be uploaded as a multipart part.
type InputFile = types.File

// NewInputFileFromBytes wraps in-memory data as an upload.
func NewInputFileFromBytes(data []byte, filename string) InputFile {
	var f InputFile
	f.InitFromBytes(data, filename)
	return f
}

// NewInputFileFromPath reads the file at path into an upload.
func NewInputFileFromPath(path string) (InputFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return InputFile{}, fmt.Errorf("reading upload: %w", err)
	}
	return NewInputFileFromBytes(data, filepath.Base(path)), nil
}

// Upload configures a chunked upload.
type Upload struct {
	// ParamName is the multipart field holding the InputFile (e.g. "code").
	ParamName string

	// IDParamName names the param carrying the resource ID, if the endpoint has one.
	// When its value is not "unique()" an interrupted upload is resumed.
	IDParamName string

	// OnProgress is called after every chunk.
	OnProgress func(UploadProgress)
}

// UploadProgress reports chunked upload progress.
type UploadProgress struct {
	ID             string  `json:"$id"`
	Progress       float64 `json:"progress"`
	SizeUploaded   int64   `json:"sizeUploaded"`
	ChunksTotal    int     `json:"chunksTotal"`
	ChunksUploaded int     `json:"chunksUploaded"`
}

// ExpandPath substitutes {name} placeholders in template with path-escaped values.
// pairs alternates placeholder names and values.
//
//	ExpandPath("/databases/{databaseId}", "databaseId", "main") // "/databases/main"
func ExpandPath(template string, pairs ...string) string {
	if len(pairs)%2 != 0 {
		panic("core.ExpandPath: odd number of arguments")
	}
	oldnew := make([]string, 0, len(pairs))
	for i := 0; i < len(pairs); i += 2 {
		oldnew = append(oldnew, "{"+pairs[i]+"}", url.PathEscape(pairs[i+1]))
	}
	return strings.NewReplacer(oldnew...).Replace(template)
}

// JSONHeaders returns the headers used by JSON write requests.
func JSONHeaders() map[string]string {
	return map[string]string{"content-type": ContentTypeJSON}
}

// MultipartHeaders returns the headers used by upload requests.
func MultipartHeaders() map[string]string {
	return map[string]string{"content-type": ContentTypeMultipart}
}

// IsNil reports whether v is nil or a nil map, slice, pointer or interface.
// Required params typed as any are checked with it.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Interface, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}
