package assetserver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	umleterrors "github.com/umlet/umlet-bridge/src/umlet/internal/errors"
	"github.com/umlet/umlet-bridge/src/umlet/internal/serverinfofile/serverinfofilemock"
	"go.uber.org/config"
	"go.uber.org/fx/fxtest"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestClient() *http.Client {
	return &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
}

func newTestServer(t *testing.T) *server {
	return &server{
		cfg:    entityAssets("127.0.0.1", "", ""),
		logger: zap.NewNop().Sugar(),
	}
}

func writeAssets(t *testing.T) string {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>umlet</html>"), 0o644))
	return dir
}

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg, err := config.NewYAML(config.Source(strings.NewReader(`
assets:
  host: 127.0.0.1
  root: /tmp/assets
`)))
	require.NoError(t, err)

	s, err := New(Params{
		Config:         cfg,
		Lifecycle:      fxtest.NewLifecycle(t),
		Logger:         zap.NewNop().Sugar(),
		ServerInfoFile: serverinfofilemock.NewMockServerInfoFile(ctrl),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, s.Port())
	assert.Equal(t, "", s.URL())
}

func TestLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := writeAssets(t)
	cfg, err := config.NewYAML(config.Source(strings.NewReader(fmt.Sprintf(`
assets:
  host: 127.0.0.1
  root: %s
`, root))))
	require.NoError(t, err)

	infoFile := serverinfofilemock.NewMockServerInfoFile(ctrl)
	infoFile.EXPECT().UpdateField(_outputKeyPort, gomock.Any()).Return(nil)
	infoFile.EXPECT().UpdateField(_outputKeyURL, gomock.Any()).Return(nil)

	lc := fxtest.NewLifecycle(t)
	s, err := New(Params{
		Config:         cfg,
		Lifecycle:      lc,
		Logger:         zap.NewNop().Sugar(),
		ServerInfoFile: infoFile,
	})
	require.NoError(t, err)

	lc.RequireStart()
	assert.NotZero(t, s.Port())
	assert.Equal(t, fmt.Sprintf("http://127.0.0.1:%d/", s.Port()), s.URL())

	lc.RequireStop()
	assert.Zero(t, s.Port())
}

func TestURLUsesConfiguredHost(t *testing.T) {
	tests := []struct {
		host string
		want string
	}{
		{host: "localhost", want: "http://localhost:8123/"},
		{host: "127.0.0.1", want: "http://127.0.0.1:8123/"},
		{host: "::1", want: "http://[::1]:8123/"},
		{host: "0.0.0.0", want: "http://localhost:8123/"},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			s := &server{cfg: entityAssets(tt.host, "", ""), port: 8123}
			assert.Equal(t, tt.want, s.URL())
		})
	}
}

func TestLifecycleMissingBundle(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg, err := config.NewYAML(config.Source(strings.NewReader(fmt.Sprintf(`
assets:
  host: 127.0.0.1
  extensionPath: %s
`, t.TempDir()))))
	require.NoError(t, err)

	s, err := New(Params{
		Config:         cfg,
		Lifecycle:      fxtest.NewLifecycle(t),
		Logger:         zap.NewNop().Sugar(),
		ServerInfoFile: serverinfofilemock.NewMockServerInfoFile(ctrl),
	})
	require.NoError(t, err)

	err = s.(*server).onStart(context.Background())
	assert.True(t, umleterrors.IsStartup(err))
	assert.Zero(t, s.Port())
}

func TestStartServesFiles(t *testing.T) {
	s := newTestServer(t)
	root := writeAssets(t)

	port, err := s.Start(context.Background(), root)
	require.NoError(t, err)
	defer func() { assert.NoError(t, s.Stop(context.Background())) }()
	require.NotZero(t, port)

	client := newTestClient()
	url := fmt.Sprintf("http://127.0.0.1:%d/index.html", port)

	t.Run("get", func(t *testing.T) {
		resp, err := client.Get(url)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "<html>umlet</html>", string(body))
	})

	t.Run("head", func(t *testing.T) {
		resp, err := client.Head(url)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("missing file", func(t *testing.T) {
		resp, err := client.Get(fmt.Sprintf("http://127.0.0.1:%d/missing.js", port))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("post not allowed", func(t *testing.T) {
		resp, err := client.Post(url, "text/plain", strings.NewReader("x"))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})

	t.Run("second start keeps the port", func(t *testing.T) {
		again, err := s.Start(context.Background(), root)
		require.NoError(t, err)
		assert.Equal(t, port, again)
	})
}

func TestStartMissingDirectory(t *testing.T) {
	s := newTestServer(t)
	port, err := s.Start(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.True(t, umleterrors.IsStartup(err))
	assert.Zero(t, port)
	assert.Zero(t, s.Port())
}

func TestStopReleasesPort(t *testing.T) {
	s := newTestServer(t)

	// Stopping a server that never started is a no-op.
	assert.NoError(t, s.Stop(context.Background()))

	port, err := s.Start(context.Background(), writeAssets(t))
	require.NoError(t, err)

	require.NoError(t, s.Stop(context.Background()))
	assert.Zero(t, s.Port())
	assert.NoError(t, s.Stop(context.Background()))

	_, err = newTestClient().Get(fmt.Sprintf("http://127.0.0.1:%d/index.html", port))
	assert.Error(t, err)
}
