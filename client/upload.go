package client

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"net/url"

	"github.com/DrewBradfordXYZ/appwrite-go/core"
)

// ChunkedUpload sends req as multipart/form-data. A file no larger than the
// chunk size goes in one request; a larger one is sent as sequential chunks
// carrying Content-Range, with x-appwrite-id set from the first response.
//
// When upload.IDParamName names a param whose value is not "unique()", the
// client first asks the server how many chunks it already has and resumes
// after them.
func (c *Client) ChunkedUpload(ctx context.Context, req *core.Request, upload core.Upload, out any) error {
	file, err := uploadFile(req.Params[upload.ParamName])
	if err != nil {
		return fmt.Errorf("upload param %q: %w", upload.ParamName, err)
	}
	data, err := file.Bytes()
	if err != nil {
		return fmt.Errorf("reading upload: %w", err)
	}
	size := int64(len(data))

	if size <= c.chunkSize {
		return c.Call(ctx, req, out)
	}

	chunksTotal := int((size + c.chunkSize - 1) / c.chunkSize)
	var (
		offset   int64
		uploadID string
		last     []byte
	)

	if id, _ := req.Params[upload.IDParamName].(string); upload.IDParamName != "" && id != "" && id != "unique()" {
		var existing []byte
		err := c.Call(ctx, &core.Request{
			Method:  http.MethodGet,
			Path:    req.Path + "/" + url.PathEscape(id),
			Headers: map[string]string{},
		}, &existing)
		switch {
		case err == nil:
			var p core.UploadProgress
			if err := json.Unmarshal(existing, &p); err != nil {
				return fmt.Errorf("decoding upload status: %w", err)
			}
			offset = min(int64(p.ChunksUploaded)*c.chunkSize, size)
			uploadID = p.ID
			last = existing
			c.logger.Debug("resuming upload", "id", id, "chunksUploaded", p.ChunksUploaded)
		case core.IsNotFound(err):
		default:
			return err
		}
	}

	for offset < size {
		end := min(offset+c.chunkSize, size)

		params := maps.Clone(req.Params)
		params[upload.ParamName] = core.NewInputFileFromBytes(data[offset:end], file.Filename())

		headers := maps.Clone(req.Headers)
		if headers == nil {
			headers = map[string]string{}
		}
		headers["content-type"] = core.ContentTypeMultipart
		headers["content-range"] = fmt.Sprintf("bytes %d-%d/%d", offset, end-1, size)
		if uploadID != "" {
			headers["x-appwrite-id"] = uploadID
		}

		var body []byte
		if err := c.Call(ctx, &core.Request{
			Method:  req.Method,
			Path:    req.Path,
			Headers: headers,
			Params:  params,
		}, &body); err != nil {
			return err
		}

		var p core.UploadProgress
		if err := json.Unmarshal(body, &p); err != nil {
			return fmt.Errorf("decoding chunk response: %w", err)
		}
		if p.ID != "" {
			uploadID = p.ID
		}

		progress := core.UploadProgress{
			ID:             uploadID,
			Progress:       float64(end) * 100 / float64(size),
			SizeUploaded:   end,
			ChunksTotal:    chunksTotal,
			ChunksUploaded: int((end + c.chunkSize - 1) / c.chunkSize),
		}
		if p.ChunksTotal > 0 {
			progress.ChunksTotal = p.ChunksTotal
		}
		if p.ChunksUploaded > 0 {
			progress.ChunksUploaded = p.ChunksUploaded
		}
		c.logger.Upload(progress)
		if upload.OnProgress != nil {
			upload.OnProgress(progress)
		}

		last = body
		offset = end
	}

	return decodeResponse(last, out)
}

func uploadFile(v any) (core.InputFile, error) {
	switch f := v.(type) {
	case core.InputFile:
		return f, nil
	case *core.InputFile:
		if f != nil {
			return *f, nil
		}
	}
	return core.InputFile{}, fmt.Errorf("expected an InputFile, got %T", v)
}
