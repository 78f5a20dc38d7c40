package jsonrpcfx

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umlet/umlet-bridge/idl/mock/configmock"
	"github.com/umlet/umlet-bridge/idl/mock/jsonrpc2mock"
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

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	lifecycleMock := fxtest.NewLifecycle(t)

	tests := []struct {
		name    string
		params  Params
		wantErr bool
	}{
		{
			name:    "missing required params",
			params:  Params{},
			wantErr: true,
		},
		{
			name: "all required params are present",
			params: Params{
				Lifecycle: lifecycleMock,
				Config:    newMockConfigProvider(ctrl, "valid"),
				Logger:    zap.NewNop().Sugar(),
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.params)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegisterRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := module{}

	mockConnectionManager := NewMockConnectionManager(ctrl)

	// first call should return no error
	err := m.RegisterConnectionManager(mockConnectionManager)
	assert.NoError(t, err)

	// duplicate call should return error
	err = m.RegisterConnectionManager(mockConnectionManager)
	assert.Error(t, err)
}

func TestServeStream(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	mockServer := module{
		logger: zap.NewNop().Sugar(),
	}

	mockUUID, _ := uuid.NewV4()
	mockRouter := NewMockRouter(ctrl)
	mockRouter.EXPECT().UUID().Return(mockUUID).AnyTimes()

	mockConnectionManager := NewMockConnectionManager(ctrl)
	mockConnectionManager.EXPECT().RemoveConnection(ctx, mockUUID)

	conn := jsonrpc2mock.NewMockConn(ctrl)
	conn.EXPECT().Go(gomock.Any(), gomock.Any())

	// Return an already closed channel.
	c := make(chan struct{})
	close(c)
	conn.EXPECT().Done().Return(c)
	conn.EXPECT().Err()

	tests := []struct {
		name                        string
		connectionManagerRegistered bool
		wantErr                     bool

		// Return values from NewConnection
		routerReturnVal Router
		errReturnVal    error
	}{
		{
			name:    "no connection manager registered",
			wantErr: true,

			connectionManagerRegistered: false,
		},
		{
			name:    "failed NewConnection",
			wantErr: true,

			connectionManagerRegistered: true,
			errReturnVal:                errors.New("sample error"),
		},
		{
			name:    "successful NewConnection",
			wantErr: false,

			connectionManagerRegistered: true,
			routerReturnVal:             mockRouter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.connectionManagerRegistered && mockServer.connectionMgr == nil {
				require.NoError(t, mockServer.RegisterConnectionManager(mockConnectionManager))
			}

			if tt.routerReturnVal != nil || tt.errReturnVal != nil {
				mockConnectionManager.EXPECT().NewConnection(gomock.Any(), gomock.Any()).Return(tt.routerReturnVal, tt.errReturnVal)
			}

			err := mockServer.ServeStream(ctx, conn)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSetup(t *testing.T) {
	m := module{
		logger: zap.NewNop().Sugar(),
	}
	err := m.setup()
	assert.Error(t, err)

	m = module{Address: "127.0.0.1:0"}
	err = m.setup()
	require.NoError(t, err)
	assert.NoError(t, m.ln.Close())
}

func TestProcessConfig(t *testing.T) {
	tests := []struct {
		name        string
		configKey   string
		wantErr     bool
		errorString string
	}{
		{
			name:      "valid configuration",
			configKey: "valid",
			wantErr:   false,
		},
		{
			name:        "missing address key",
			configKey:   "missingKey",
			wantErr:     true,
			errorString: "missing field \"jsonrpc.address\" in config",
		},
		{
			name:        "missing address value",
			configKey:   "missingValue",
			wantErr:     true,
			errorString: "missing field \"jsonrpc.address\" in config",
		},
		{
			name:      "incorrectly formatted entry",
			configKey: "formatProblem",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gomockCtrl := gomock.NewController(t)
			cfg := newMockConfigProvider(gomockCtrl, tt.configKey)

			m := module{
				logger: zap.NewNop().Sugar(),
			}
			err := m.processConfig(cfg)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.errorString != "" {
					assert.Equal(t, tt.errorString, err.Error())
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStartPanicsWithoutInfoFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	infoFileMock := serverinfofilemock.NewMockServerInfoFile(ctrl)

	m := module{
		Address:        "127.0.0.1:0",
		serverInfoFile: infoFileMock,
		logger:         zap.NewNop().Sugar(),
	}
	require.NoError(t, m.setup())
	defer m.ln.Close()

	infoFileMock.EXPECT().UpdateField(_outputKey, m.ln.Addr().String()).Return(errors.New("read-only"))
	assert.Panics(t, func() { m.start(context.Background()) })
}

func TestOnStartAndOnStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	infoFileMock := serverinfofilemock.NewMockServerInfoFile(ctrl)
	infoFileMock.EXPECT().UpdateField(_outputKey, gomock.Any()).Return(nil)

	m := module{
		Address:        "127.0.0.1:0",
		serverInfoFile: infoFileMock,
		logger:         zap.NewNop().Sugar(),
	}

	ctx := context.Background()
	require.NoError(t, m.OnStart(ctx))
	assert.NoError(t, m.OnStop(ctx))

	// A second stop is a no-op.
	assert.NoError(t, m.OnStop(ctx))
}

func TestImmediateStop(t *testing.T) {
	for i := 0; i < 20; i++ {
		ctrl := gomock.NewController(t)
		infoFileMock := serverinfofilemock.NewMockServerInfoFile(ctrl)
		infoFileMock.EXPECT().UpdateField(_outputKey, gomock.Any()).Return(nil)

		m := module{
			Address:        "127.0.0.1:0",
			serverInfoFile: infoFileMock,
			logger:         zap.NewNop().Sugar(),
		}

		// Stopping before the serve goroutine is scheduled must still wait for it.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		require.NoError(t, m.OnStart(ctx))
		require.NoError(t, m.OnStop(ctx))
		cancel()
	}
}

func TestOnStartWithoutAddress(t *testing.T) {
	m := module{
		logger: zap.NewNop().Sugar(),
	}

	err := m.OnStart(context.Background())
	assert.Error(t, err)
}

func newMockConfigProvider(ctrl *gomock.Controller, configKey string) config.Provider {
	configs := map[string]string{
		"valid": `
jsonrpc:
  address: 127.0.0.1:5859`,
		"missingKey": `
jsonrpc:
  other: value`,
		"missingValue": `
jsonrpc:
  address:`,
		"formatProblem": `
jsonrpc:
  address:
    key: val`,
	}

	yamlProv, _ := config.NewYAML(config.Source(strings.NewReader(configs[configKey])))
	configProviderMock := configmock.NewMockProvider(ctrl)
	configProviderMock.EXPECT().Get(_configKeyAddress).Return(yamlProv.Get(_configKeyAddress)).AnyTimes()
	return configProviderMock
}
