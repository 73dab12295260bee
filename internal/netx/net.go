// Package netx holds small HTTP helpers shared by the service client and the
// download navigator.
package netx

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

// maxErrorBody caps how much of an error response is kept for diagnostics.
const maxErrorBody = 4 << 10

// IsSuccess reports whether code is a 2xx status.
func IsSuccess(code int) bool {
	return code >= 200 && code < 300
}

// ErrorBody reads at most a few KiB of an unsuccessful response body,
// trimmed, for use in log lines and error messages.
func ErrorBody(resp *http.Response) string {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return strings.TrimSpace(string(b))
}

// Drain discards the rest of body and closes it so the connection can be
// reused.
func Drain(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}

// AttachmentName extracts the file name suggested by a Content-Disposition
// header. Any directory part is stripped. It returns "" when there is none.
func AttachmentName(h http.Header) string {
	cd := h.Get("Content-Disposition")
	if cd == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(cd)
	if err != nil {
		return ""
	}
	name := params["filename"]
	if name == "" {
		return ""
	}
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	if name == "." || name == "/" || name == ".." {
		return ""
	}
	return name
}
