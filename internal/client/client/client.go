package client

import (
	"context"

	"github.com/dmitrijs2005/drawioconv/internal/client/models"
)

const (
	UploadPath   = "upload"
	DownloadPath = "download"

	// FileField is the multipart field carrying the diagram.
	FileField = "file"

	RequestIDHeader = "X-Request-ID"
)

// Client is the conversion service as seen by the workflow controller.
type Client interface {
	Upload(ctx context.Context, file models.FileHandle) (*models.ConvertedArtifact, error)
	DownloadURL() string
}
