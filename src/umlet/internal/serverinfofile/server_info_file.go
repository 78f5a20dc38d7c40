// Package serverinfofile publishes connection details of the running bridge for the host shim.
package serverinfofile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/umlet/umlet-bridge/src/umlet/internal/fs"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _configKeyInfoFile = "serverInfoFilePath"

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// ServerInfoFile keeps a flat JSON object on disk, one field per published value.
// The host shim reads it to find the JSON-RPC address and the asset server URL.
type ServerInfoFile interface {
	UpdateField(key string, value string) error
}

// Params define values to be used by ServerInfoFile.
type Params struct {
	fx.In

	Config    config.Provider
	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
	FS        fs.UmletFS
}

type infoFile struct {
	path   string
	fs     fs.UmletFS
	logger *zap.SugaredLogger

	mu      sync.Mutex
	fields  map[string]string
	written bool
}

// New creates the ServerInfoFile configured under serverInfoFilePath.
// The file is removed when the application stops.
func New(p Params) (ServerInfoFile, error) {
	path, err := infoFilePath(p.Config)
	if err != nil {
		return nil, err
	}

	f := &infoFile{
		path:   path,
		fs:     p.FS,
		logger: p.Logger,
		fields: make(map[string]string),
	}
	p.Lifecycle.Append(fx.Hook{
		OnStop: f.remove,
	})
	return f, nil
}

func (f *infoFile) UpdateField(key string, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fields[key] = value
	contents, err := json.Marshal(f.fields)
	if err != nil {
		return fmt.Errorf("marshalling json: %w", err)
	}

	if err := f.fs.MkdirAll(filepath.Dir(f.path)); err != nil {
		return fmt.Errorf("creating info file directory: %w", err)
	}
	if err := f.fs.WriteFile(f.path, contents); err != nil {
		return fmt.Errorf("writing info file: %w", err)
	}
	f.written = true

	f.logger.Infow("server info published", zap.String("file", f.path), zap.String(key, value))
	return nil
}

// remove deletes the file so that a stale address is never picked up.
func (f *infoFile) remove(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.written {
		return nil
	}
	if err := f.fs.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	f.written = false
	return nil
}

func infoFilePath(cfg config.Provider) (string, error) {
	var path string
	if err := cfg.Get(_configKeyInfoFile).Populate(&path); err != nil {
		return "", fmt.Errorf("getting config field %q: %w", _configKeyInfoFile, err)
	}
	if path == "" {
		return "", fmt.Errorf("missing field %q in config", _configKeyInfoFile)
	}
	return path, nil
}
