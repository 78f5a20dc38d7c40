// Package assetserver hosts the static files of the diagram web application on a local port.
package assetserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/umlet/umlet-bridge/src/umlet/entity"
	umleterrors "github.com/umlet/umlet-bridge/src/umlet/internal/errors"
	"github.com/umlet/umlet-bridge/src/umlet/internal/serverinfofile"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	_outputKeyPort = "asset-port"
	_outputKeyURL  = "asset-url"

	_readHeaderTimeout = 10 * time.Second
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// Server serves a directory read-only over HTTP on an OS-assigned port.
type Server interface {
	Start(ctx context.Context, root string) (int, error)
	Stop(ctx context.Context) error
	// Port is 0 while the server is not running.
	Port() int
	URL() string
}

// Params are inbound parameters to initialize a new Server.
type Params struct {
	fx.In

	Config         config.Provider
	Lifecycle      fx.Lifecycle
	Logger         *zap.SugaredLogger
	ServerInfoFile serverinfofile.ServerInfoFile
}

type server struct {
	cfg            entity.AssetsConfig
	logger         *zap.SugaredLogger
	serverInfoFile serverinfofile.ServerInfoFile

	mu   sync.Mutex
	http *http.Server
	done chan struct{}
	port int
}

// New creates a Server that is started with the application and stopped with it.
// A failure to start aborts application startup.
func New(p Params) (Server, error) {
	cfg := entity.AssetsConfig{}
	if err := p.Config.Get(entity.AssetsConfigKey).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", entity.AssetsConfigKey, err)
	}
	if cfg.Host == "" {
		cfg.Host = "localhost"
	}

	s := &server{
		cfg:            cfg,
		logger:         p.Logger.With("component", "assetserver"),
		serverInfoFile: p.ServerInfoFile,
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: s.onStart,
		OnStop:  s.Stop,
	})
	return s, nil
}

func (s *server) onStart(ctx context.Context) error {
	root := s.cfg.Root
	if root == "" {
		dir, err := BundleDirectory(s.cfg.ExtensionPath)
		if err != nil {
			return &umleterrors.StartupError{Reason: "locating web application bundle", Err: err}
		}
		root = dir
	}

	if _, err := s.Start(ctx, root); err != nil {
		return err
	}

	if err := s.serverInfoFile.UpdateField(_outputKeyPort, strconv.Itoa(s.Port())); err != nil {
		return err
	}
	return s.serverInfoFile.UpdateField(_outputKeyURL, s.URL())
}

// Start begins serving root. The listener is bound before the port is returned,
// so the port is usable as soon as Start succeeds. Starting a running server
// returns the existing port.
func (s *server) Start(ctx context.Context, root string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.http != nil {
		return s.port, nil
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return 0, &umleterrors.StartupError{Reason: fmt.Sprintf("asset directory %q does not exist", root), Err: err}
	}

	ln, err := net.Listen("tcp", net.JoinHostPort(s.cfg.Host, "0"))
	if err != nil {
		return 0, &umleterrors.StartupError{Reason: "binding listener", Err: err}
	}

	srv := &http.Server{
		Handler:           newRouter(root),
		ReadHeaderTimeout: _readHeaderTimeout,
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Errorf("asset server stopped: %v", err)
		}
	}()

	s.http = srv
	s.done = done
	s.port = ln.Addr().(*net.TCPAddr).Port
	s.logger.Infow("serving assets", zap.String("root", root), zap.Int("port", s.port))
	return s.port, nil
}

// Stop shuts the server down and releases its port. It is a no-op when the server is not running.
func (s *server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.http == nil {
		return nil
	}

	err := s.http.Shutdown(ctx)
	if err != nil {
		// Graceful shutdown ran out of time, drop remaining connections.
		err = multierr.Append(err, s.http.Close())
	}
	<-s.done

	s.logger.Infow("stopped serving assets", zap.Int("port", s.port))
	s.http = nil
	s.done = nil
	s.port = 0
	return err
}

func (s *server) Port() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.port
}

func (s *server) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.port == 0 {
		return ""
	}
	host := s.cfg.Host
	// A wildcard listener is still reached through loopback.
	if ip := net.ParseIP(host); ip != nil && ip.IsUnspecified() {
		host = "localhost"
	}
	return fmt.Sprintf("http://%s/", net.JoinHostPort(host, strconv.Itoa(s.port)))
}

func newRouter(root string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	files := http.FileServer(http.Dir(root))
	r.Get("/*", files.ServeHTTP)
	r.Head("/*", files.ServeHTTP)
	return r
}
