package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/drawioconv/internal/client/client"
	"github.com/dmitrijs2005/drawioconv/internal/client/config"
	"github.com/dmitrijs2005/drawioconv/internal/client/landing"
	"github.com/dmitrijs2005/drawioconv/internal/client/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, uploadStatus int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/upload", func(w http.ResponseWriter, r *http.Request) {
		if uploadStatus != http.StatusOK {
			http.Error(w, "boom", uploadStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"filename":"Diagram.zip"}`)
	})
	mux.HandleFunc("/download", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="Diagram.zip"`)
		_, _ = io.WriteString(w, "PK-archive")
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestApp(t *testing.T, baseURL string) (*App, *bytes.Buffer) {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.ServerBaseURL = baseURL
	cfg.MinConvertDelay = 0
	cfg.DownloadDir = filepath.Join(t.TempDir(), "downloads")
	cfg.LogLevel = "error"

	var out bytes.Buffer
	a, err := newApp(cfg, strings.NewReader(""), &out, io.Discard)
	require.NoError(t, err)
	return a, &out
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewApp_RejectsBadServerURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.ServerBaseURL = "ftp://example.com"

	_, err := newApp(cfg, strings.NewReader(""), io.Discard, io.Discard)
	require.Error(t, err)
}

func TestApp_FullWorkflow(t *testing.T) {
	srv := newTestServer(t, http.StatusOK)
	a, out := newTestApp(t, srv.URL)
	ctx := context.Background()

	require.NoError(t, a.Select(ctx, writeFile(t, "model.drawio", "<mxfile/>")))
	assert.Equal(t, "(convert: model.drawio)", a.getStatus())

	require.NoError(t, a.Convert(ctx))
	require.NoError(t, a.Wait(ctx))

	st := a.ctl.State()
	require.Equal(t, workflow.StepDownload, st.Step)
	assert.Equal(t, "Diagram.zip", st.Artifact.DisplayName())

	require.NoError(t, a.Download(ctx))

	saved, err := os.ReadFile(filepath.Join(a.config.DownloadDir, "Diagram.zip"))
	require.NoError(t, err)
	assert.Equal(t, "PK-archive", string(saved))

	got := out.String()
	assert.Contains(t, got, "Converting model.drawio...")
	assert.Contains(t, got, "(✓) Select file ─── (✓) Convert ─── (3) Download")
	assert.Contains(t, got, `Diagram.zip is ready. Type "download" to save it.`)
	assert.Contains(t, got, "Saved ")
}

func TestApp_SelectInvalidFile(t *testing.T) {
	a, out := newTestApp(t, "http://localhost:1")
	ctx := context.Background()

	err := a.Select(ctx, writeFile(t, "notes.txt", "x"))
	require.ErrorIs(t, err, workflow.ErrInvalidFileType)
	assert.Contains(t, out.String(), workflow.MsgInvalidFile)
	assert.Equal(t, workflow.StepSelect, a.ctl.State().Step)
}

func TestApp_SelectMissingOrDirectory(t *testing.T) {
	a, out := newTestApp(t, "http://localhost:1")
	ctx := context.Background()

	require.Error(t, a.Select(ctx, filepath.Join(t.TempDir(), "gone.drawio")))
	assert.Contains(t, out.String(), "Cannot read")

	require.Error(t, a.Select(ctx, t.TempDir()))
	assert.Contains(t, out.String(), "is a directory")
	assert.Equal(t, workflow.StepSelect, a.ctl.State().Step)
}

func TestApp_PreconditionMessages(t *testing.T) {
	a, out := newTestApp(t, "http://localhost:1")
	ctx := context.Background()

	require.ErrorIs(t, a.Convert(ctx), workflow.ErrNoFileSelected)
	assert.Contains(t, out.String(), "Select a .drawio file first")

	require.ErrorIs(t, a.Download(ctx), workflow.ErrWrongStep)
	assert.Contains(t, out.String(), "Nothing to download yet")

	require.NoError(t, a.Wait(ctx))
	assert.Contains(t, out.String(), "No conversion started")
}

func TestApp_ConversionFailureIsNotified(t *testing.T) {
	srv := newTestServer(t, http.StatusInternalServerError)
	a, out := newTestApp(t, srv.URL)
	ctx := context.Background()

	require.NoError(t, a.Select(ctx, writeFile(t, "model.drawio", "<mxfile/>")))
	require.NoError(t, a.Convert(ctx))

	err := a.Wait(ctx)
	require.ErrorIs(t, err, client.ErrConversionFailed)

	assert.Contains(t, out.String(), workflow.MsgConversionFailed)
	st := a.ctl.State()
	assert.Equal(t, workflow.StepConvert, st.Step)
	assert.False(t, st.InFlight)
}

func TestApp_Status(t *testing.T) {
	a, out := newTestApp(t, "http://localhost:1")

	require.NoError(t, a.Status(context.Background()))
	got := out.String()
	assert.Contains(t, got, "(1) Select file")
	assert.Contains(t, got, "1/3 select")
	assert.Contains(t, got, "Converting")
}

func TestApp_RunShowsLandingAndStart(t *testing.T) {
	capturePrintln(t)

	a, out := newTestApp(t, "http://localhost:1")
	a.in = strings.NewReader("start\nexit\n")

	a.Run(context.Background())

	got := out.String()
	assert.Contains(t, got, landing.Title)
	assert.Contains(t, got, landing.WorkflowHeading)
	assert.Contains(t, got, "(1) Select file ··· (2) Convert ··· (3) Download")
	assert.Contains(t, got, landing.Footer)
}
