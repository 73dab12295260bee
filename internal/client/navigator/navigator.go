// Package navigator performs the download step in a terminal: where a
// browser would navigate to the download URL, SaveNavigator fetches it and
// stores the archive under the download directory.
package navigator

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/drawioconv/internal/client/models"
	"github.com/dmitrijs2005/drawioconv/internal/filex"
	"github.com/dmitrijs2005/drawioconv/internal/logging"
)

// Fetcher streams a URL into w and returns the server-suggested file name.
type Fetcher interface {
	Fetch(ctx context.Context, url string, w io.Writer) (string, error)
}

type SaveNavigator struct {
	fetcher Fetcher
	dir     string
	out     io.Writer
	log     logging.Logger

	// Fallback names the file when the server suggests none.
	Fallback func() string
}

func NewSaveNavigator(fetcher Fetcher, dir string, out io.Writer, log logging.Logger) *SaveNavigator {
	return &SaveNavigator{fetcher: fetcher, dir: dir, out: out, log: log}
}

// Navigate downloads url. The outcome is reported to the user directly; the
// caller is never told.
func (n *SaveNavigator) Navigate(ctx context.Context, url string) {
	path, err := n.save(ctx, url)
	if err != nil {
		n.log.Error(ctx, "download failed", "url", url, "error", err)
		fmt.Fprintf(n.out, "Download failed: %v\n", err)
		return
	}
	n.log.Info(ctx, "download saved", "url", url, "path", path)
	fmt.Fprintf(n.out, "Saved %s\n", path)
}

func (n *SaveNavigator) save(ctx context.Context, url string) (string, error) {
	dir, err := filex.EnsureDir(n.dir)
	if err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(dir, ".download-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	suggested, err := n.fetcher.Fetch(ctx, url, tmp)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", err
	}

	name := suggested
	if name == "" {
		name = n.fallbackName()
	}

	dst, err := filex.UniquePath(dir, filepath.Base(name))
	if err != nil {
		return "", err
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return "", err
	}
	return dst, nil
}

func (n *SaveNavigator) fallbackName() string {
	if n.Fallback != nil {
		if name := n.Fallback(); name != "" {
			return name
		}
	}
	return models.DefaultArtifactName
}
