package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/drawioconv/internal/client/models"
	"github.com/dmitrijs2005/drawioconv/internal/logging"
	"github.com/dmitrijs2005/drawioconv/internal/netx"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

type HTTPClient struct {
	baseURL      *url.URL
	http         *http.Client
	log          logging.Logger
	newRequestID func() string
}

// NewHTTPClient builds a client for the service rooted at baseURL.
// A zero timeout leaves requests unbounded; they still honour their context.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: unsupported scheme %q", baseURL, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("base url %q: missing host", baseURL)
	}

	return &HTTPClient{
		baseURL:      u,
		http:         &http.Client{Timeout: timeout},
		log:          log,
		newRequestID: uuid.NewString,
	}, nil
}

func (c *HTTPClient) endpoint(path string) string {
	return c.baseURL.JoinPath(path).String()
}

func (c *HTTPClient) DownloadURL() string {
	return c.endpoint(DownloadPath)
}

// Upload sends the diagram to the conversion endpoint and decodes the
// artifact descriptor from the response.
func (c *HTTPClient) Upload(ctx context.Context, file models.FileHandle) (*models.ConvertedArtifact, error) {
	requestID := c.newRequestID()
	log := c.log.With("request_id", requestID, "file", file.Name())

	body, contentType, err := encodeUpload(file)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(UploadPath), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	log.Debug(ctx, "uploading diagram", "url", req.URL.String(), "bytes", body.Len())
	started := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "upload request failed", "error", err)
		return nil, c.mapError(err)
	}
	defer netx.Drain(resp.Body)

	log.Debug(ctx, "upload response", "status", resp.StatusCode, "elapsed", time.Since(started))

	if !netx.IsSuccess(resp.StatusCode) {
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status, Body: netx.ErrorBody(resp)}
	}

	var artifact models.ConvertedArtifact
	if err := json.NewDecoder(resp.Body).Decode(&artifact); err != nil {
		log.Warn(ctx, "cannot decode upload response", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	if artifact.Filename == "" {
		artifact.Filename = models.DefaultArtifactName
	}

	return &artifact, nil
}

// Fetch downloads rawURL into w and returns the file name suggested by the
// server, if any.
func (c *HTTPClient) Fetch(ctx context.Context, rawURL string, w io.Writer) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", c.mapError(err)
	}
	defer netx.Drain(resp.Body)

	if !netx.IsSuccess(resp.StatusCode) {
		return "", fmt.Errorf("%w: %s", ErrDownloadFailed, resp.Status)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}

	return netx.AttachmentName(resp.Header), nil
}

// encodeUpload builds the multipart body. The part type is sniffed from the
// payload because browsers and servers disagree on a type for .drawio.
func encodeUpload(file models.FileHandle) (*bytes.Buffer, string, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", file.Name(), err)
	}
	defer rc.Close()

	payload, err := io.ReadAll(rc)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", file.Name(), err)
	}

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		FileField, quoteEscaper.Replace(file.Name())))
	h.Set("Content-Type", mimetype.Detect(payload).String())

	part, err := mw.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(payload); err != nil {
		return nil, "", err
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}

	return body, mw.FormDataContentType(), nil
}

func (c *HTTPClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}

	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
