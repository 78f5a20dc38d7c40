package handler

import (
	"fmt"
	"os"
	"strconv"

	"github.com/umlet/umlet-bridge/src/umlet/internal/serverinfofile"
	"go.uber.org/config"
)

const (
	_configKeyServiceName = "service.name"

	_infoKeyServiceName = "service-name"
	_infoKeyPID         = "pid"
)

// Output the identity of this process so that the host shim can tell a live bridge from a stale info file.
// The JSON-RPC inbound and the asset server add their own addresses once they are bound.
func outputServiceInfo(cfg config.Provider, infofile serverinfofile.ServerInfoFile) error {
	var name string
	if err := cfg.Get(_configKeyServiceName).Populate(&name); err != nil {
		return fmt.Errorf("loading service config: %v", err)
	}
	if name == "" {
		return fmt.Errorf("missing field %q in config", _configKeyServiceName)
	}

	if err := infofile.UpdateField(_infoKeyServiceName, name); err != nil {
		return fmt.Errorf("outputting service name to info file: %w", err)
	}
	if err := infofile.UpdateField(_infoKeyPID, strconv.Itoa(os.Getpid())); err != nil {
		return fmt.Errorf("outputting pid to info file: %w", err)
	}
	return nil
}
