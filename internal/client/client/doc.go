// Package client talks to the remote DrawIO conversion service.
//
// # Overview
//
// The service exposes two endpoints under a single base URL:
//
//	POST {base}/upload    multipart/form-data, one part named "file"
//	GET  {base}/download  the archive produced by the last conversion
//
// HTTPClient implements the upload call and hands out the download URL. The
// download itself is a navigation performed by the caller (see package
// navigator); the client only offers Fetch as a streaming helper for it.
//
// The download request carries no identifier of the conversion it belongs
// to. The service is expected to remember the most recent conversion per
// session, so two clients sharing one service may receive each other's
// archive.
//
// # Error Handling
//
// Conditions are exposed as sentinel errors matched with errors.Is:
// ErrConversionFailed (non-2xx from /upload, see StatusError), ErrBadResponse,
// ErrUnavailable, ErrTimeout and ErrDownloadFailed.
package client
