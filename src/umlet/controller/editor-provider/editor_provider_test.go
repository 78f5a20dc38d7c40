package editorprovider

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally"
	"github.com/umlet/umlet-bridge/src/umlet/controller/doc-lifecycle/doclifecyclemock"
	"github.com/umlet/umlet-bridge/src/umlet/entity"
	"github.com/umlet/umlet-bridge/src/umlet/factory"
	"github.com/umlet/umlet-bridge/src/umlet/gateway/ide-client/ideclientmock"
	"github.com/umlet/umlet-bridge/src/umlet/internal/assetserver/assetservermock"
	umleterrors "github.com/umlet/umlet-bridge/src/umlet/internal/errors"
	"github.com/umlet/umlet-bridge/src/umlet/mapper"
	"github.com/umlet/umlet-bridge/src/umlet/repository/document"
	"github.com/umlet/umlet-bridge/src/umlet/repository/session"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
	"go.uber.org/config"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fixture struct {
	c            *controller
	ctx          context.Context
	client       *entity.Session
	documents    document.Repository
	docLifecycle *doclifecyclemock.MockController
	assetServer  *assetservermock.MockServer
	gateway      *ideclientmock.MockGateway
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	cfg, err := config.NewYAML(config.Source(strings.NewReader(`
editor:
  viewType: uxfCustoms.umletEditor
  filenamePattern: "*.uxf"
  retainContextWhenHidden: true
`)))
	require.NoError(t, err)

	scope := tally.NewTestScope("testing", nil)
	sessions := session.New(scope)
	client := &entity.Session{UUID: factory.UUID()}
	require.NoError(t, sessions.Set(context.Background(), client))

	f := &fixture{
		ctx:          mapper.SessionUUIDToContext(context.Background(), client.UUID),
		client:       client,
		documents:    document.New(scope),
		docLifecycle: doclifecyclemock.NewMockController(ctrl),
		assetServer:  assetservermock.NewMockServer(ctrl),
		gateway:      ideclientmock.NewMockGateway(ctrl),
	}

	c, err := New(Params{
		Sessions:     sessions,
		Documents:    f.documents,
		DocLifecycle: f.docLifecycle,
		AssetServer:  f.assetServer,
		IdeGateway:   f.gateway,
		Logger:       zap.NewNop().Sugar(),
		Stats:        scope,
		Config:       cfg,
	})
	require.NoError(t, err)
	f.c = c.(*controller)
	return f
}

func (f *fixture) addDocument(t *testing.T, clientID uuid.UUID) *entity.DocumentSession {
	doc := factory.DocumentSession("/home/user/diagrams/a.uxf")
	doc.ClientUUID = clientID
	require.NoError(t, f.documents.Set(context.Background(), doc))
	return doc
}

func (f *fixture) activeCount(t *testing.T) int {
	docs, err := f.documents.GetAllForURI(context.Background(), uri.File("/home/user/diagrams/a.uxf"))
	require.NoError(t, err)
	n := 0
	for _, d := range docs {
		if d.IsActive {
			n++
		}
	}
	return n
}

func TestNewDefaults(t *testing.T) {
	cfg, err := config.NewYAML(config.Source(strings.NewReader(`other: {}`)))
	require.NoError(t, err)

	c, err := New(Params{Config: cfg, Logger: zap.NewNop().Sugar(), Stats: tally.NoopScope})
	require.NoError(t, err)
	assert.Equal(t, entity.ViewTypeUmletEditor, c.(*controller).editorConfig.ViewType)
	assert.Equal(t, "*.uxf", c.(*controller).editorConfig.FilenamePattern)
	assert.True(t, c.(*controller).editorConfig.RetainContextWhenHidden)
}

func TestRegister(t *testing.T) {
	t.Run("asset server not running", func(t *testing.T) {
		f := newFixture(t)
		f.assetServer.EXPECT().Port().Return(0)

		err := f.c.Register(f.ctx)
		assert.True(t, umleterrors.IsStartup(err))
	})

	t.Run("registers custom editor", func(t *testing.T) {
		f := newFixture(t)
		f.assetServer.EXPECT().Port().Return(41234)
		f.assetServer.EXPECT().URL().Return("http://localhost:41234/")
		f.gateway.EXPECT().RegisterCapability(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p *protocol.RegistrationParams) error {
				require.Len(t, p.Registrations, 1)
				reg := p.Registrations[0]
				assert.Equal(t, entity.MethodCustomEditorCapability, reg.Method)
				assert.NotEmpty(t, reg.ID)
				assert.Equal(t, entity.CustomEditorRegistration{
					ViewType:                "uxfCustoms.umletEditor",
					FilenamePattern:         "*.uxf",
					AssetURL:                "http://localhost:41234/",
					RetainContextWhenHidden: true,
				}, reg.RegisterOptions)
				return nil
			})

		assert.NoError(t, f.c.Register(f.ctx))
	})
}

func TestResolveCustomEditor(t *testing.T) {
	params := &entity.ResolveCustomEditorParams{
		WebviewID: factory.UUID(),
		URI:       uri.File("/home/user/diagrams/class diagram.uxf"),
	}

	t.Run("ready session", func(t *testing.T) {
		f := newFixture(t)
		f.assetServer.EXPECT().Port().Return(41234)
		f.assetServer.EXPECT().URL().Return("http://localhost:41234/")

		res, err := f.c.ResolveCustomEditor(f.ctx, params)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:41234/", res.URL)
		assert.Contains(t, res.HTML, `src="http://localhost:41234/"`)
		assert.Contains(t, res.HTML, "<title>class diagram.uxf</title>")
		assert.Contains(t, res.HTML, params.WebviewID.String())

		doc, err := f.documents.Get(f.ctx, params.WebviewID)
		require.NoError(t, err)
		assert.Equal(t, entity.DocumentStateReady, doc.State)
		assert.Equal(t, f.client.UUID, doc.ClientUUID)
		assert.False(t, doc.IsActive)
	})

	t.Run("unknown connection", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.c.ResolveCustomEditor(context.Background(), params)
		assert.Error(t, err)
	})

	t.Run("asset server not running", func(t *testing.T) {
		f := newFixture(t)
		f.assetServer.EXPECT().Port().Return(0)

		_, err := f.c.ResolveCustomEditor(f.ctx, params)
		assert.True(t, umleterrors.IsStartup(err))
		count, err := f.documents.DocumentCount(f.ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestLoadDocument(t *testing.T) {
	f := newFixture(t)
	params := &entity.ResolveCustomEditorParams{
		WebviewID: factory.UUID(),
		URI:       uri.File("/tmp/a.uxf"),
		BackupURI: uri.File("/tmp/backup"),
	}
	f.docLifecycle.EXPECT().Open(f.ctx, params.WebviewID, params.BackupURI).Return(nil)
	assert.NoError(t, f.c.LoadDocument(f.ctx, params))
}

func TestDidChangeViewState(t *testing.T) {
	f := newFixture(t)
	a := f.addDocument(t, f.client.UUID)
	b := f.addDocument(t, f.client.UUID)

	focus := func(doc *entity.DocumentSession, active bool) {
		require.NoError(t, f.c.DidChangeViewState(f.ctx, &entity.DidChangeViewStateParams{WebviewID: doc.WebviewID, Active: active}))
	}

	focus(a, true)
	got, ok := f.c.Active(f.ctx)
	require.True(t, ok)
	assert.Equal(t, a.WebviewID, got.WebviewID)

	focus(b, true)
	got, ok = f.c.Active(f.ctx)
	require.True(t, ok)
	assert.Equal(t, b.WebviewID, got.WebviewID)
	assert.Equal(t, 1, f.activeCount(t))

	// Losing focus on a panel that is not active leaves the pointer alone.
	focus(a, false)
	_, ok = f.c.Active(f.ctx)
	assert.True(t, ok)

	focus(b, false)
	_, ok = f.c.Active(f.ctx)
	assert.False(t, ok)
	assert.Equal(t, 0, f.activeCount(t))

	err := f.c.DidChangeViewState(f.ctx, &entity.DidChangeViewStateParams{WebviewID: factory.UUID(), Active: true})
	assert.Error(t, err)
}

func TestAtMostOneActive(t *testing.T) {
	f := newFixture(t)
	docs := []*entity.DocumentSession{
		f.addDocument(t, f.client.UUID),
		f.addDocument(t, f.client.UUID),
		f.addDocument(t, f.client.UUID),
	}

	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		doc := docs[r.Intn(len(docs))]
		active := r.Intn(2) == 0
		require.NoError(t, f.c.DidChangeViewState(f.ctx, &entity.DidChangeViewStateParams{WebviewID: doc.WebviewID, Active: active}))

		n := f.activeCount(t)
		assert.LessOrEqual(t, n, 1)
		got, ok := f.c.Active(f.ctx)
		if ok {
			assert.Equal(t, 1, n)
			assert.True(t, got.IsActive)
		} else {
			assert.Equal(t, 0, n)
		}
	}
}

func TestDisposeWebview(t *testing.T) {
	f := newFixture(t)
	doc := f.addDocument(t, f.client.UUID)
	require.NoError(t, f.c.DidChangeViewState(f.ctx, &entity.DidChangeViewStateParams{WebviewID: doc.WebviewID, Active: true}))

	f.docLifecycle.EXPECT().Close(f.ctx, doc.WebviewID).Return(nil)
	require.NoError(t, f.c.DisposeWebview(f.ctx, doc.WebviewID))

	_, ok := f.c.Active(f.ctx)
	assert.False(t, ok)
	_, err := f.documents.Get(f.ctx, doc.WebviewID)
	assert.Error(t, err)

	// A second dispose is a no-op.
	assert.NoError(t, f.c.DisposeWebview(f.ctx, doc.WebviewID))
}

func TestDisposeWebviewLogsOpenCount(t *testing.T) {
	f := newFixture(t)
	core, recorded := observer.New(zap.InfoLevel)
	f.c.logger = zap.New(core).Sugar()
	doc := f.addDocument(t, f.client.UUID)
	f.addDocument(t, f.client.UUID)

	f.docLifecycle.EXPECT().Close(f.ctx, doc.WebviewID).Return(nil)
	require.NoError(t, f.c.DisposeWebview(f.ctx, doc.WebviewID))

	entries := recorded.FilterMessage("custom editor disposed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].ContextMap()["open"])
}

func TestDisposeWebviewKeepsOtherActive(t *testing.T) {
	f := newFixture(t)
	a := f.addDocument(t, f.client.UUID)
	b := f.addDocument(t, f.client.UUID)
	require.NoError(t, f.c.DidChangeViewState(f.ctx, &entity.DidChangeViewStateParams{WebviewID: a.WebviewID, Active: true}))

	f.docLifecycle.EXPECT().Close(f.ctx, b.WebviewID).Return(nil)
	require.NoError(t, f.c.DisposeWebview(f.ctx, b.WebviewID))

	got, ok := f.c.Active(f.ctx)
	require.True(t, ok)
	assert.Equal(t, a.WebviewID, got.WebviewID)
}

func TestDisposeClient(t *testing.T) {
	f := newFixture(t)
	other := factory.UUID()
	a := f.addDocument(t, f.client.UUID)
	b := f.addDocument(t, f.client.UUID)
	kept := f.addDocument(t, other)

	f.docLifecycle.EXPECT().Close(gomock.Any(), a.WebviewID).Return(nil)
	f.docLifecycle.EXPECT().Close(gomock.Any(), b.WebviewID).Return(errors.New("close failed"))

	err := f.c.DisposeClient(f.ctx, f.client.UUID)
	assert.EqualError(t, err, "close failed")

	count, err := f.documents.DocumentCount(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	_, err = f.documents.Get(f.ctx, kept.WebviewID)
	assert.NoError(t, err)
}

func TestPostToActive(t *testing.T) {
	zoomIn := entity.WebviewMessage{Command: entity.WebviewCommandZoomIn}

	t.Run("no active session", func(t *testing.T) {
		f := newFixture(t)
		f.addDocument(t, f.client.UUID)

		err := f.c.PostToActive(f.ctx, zoomIn)
		assert.True(t, umleterrors.IsRoutingNoop(err))
	})

	t.Run("active session", func(t *testing.T) {
		f := newFixture(t)
		other := factory.UUID()
		doc := f.addDocument(t, other)
		f.addDocument(t, f.client.UUID)
		require.NoError(t, f.c.DidChangeViewState(f.ctx, &entity.DidChangeViewStateParams{WebviewID: doc.WebviewID, Active: true}))

		f.gateway.EXPECT().PostMessage(gomock.Any(), &entity.PostMessageParams{
			WebviewID: doc.WebviewID,
			Message:   zoomIn,
		}).DoAndReturn(func(ctx context.Context, _ *entity.PostMessageParams) error {
			id, err := mapper.ContextToSessionUUID(ctx)
			require.NoError(t, err)
			assert.Equal(t, other, id)
			return nil
		}).Times(1)

		assert.NoError(t, f.c.PostToActive(mapper.SessionUUIDToContext(context.Background(), other), zoomIn))
	})

	t.Run("panel focused by another host", func(t *testing.T) {
		f := newFixture(t)
		other := factory.UUID()
		doc := f.addDocument(t, other)
		require.NoError(t, f.c.DidChangeViewState(f.ctx, &entity.DidChangeViewStateParams{WebviewID: doc.WebviewID, Active: true}))

		// No PostMessage expectation: the gateway mock fails the test if called.
		err := f.c.PostToActive(f.ctx, zoomIn)
		assert.True(t, umleterrors.IsRoutingNoop(err))
	})
}

func TestActiveScopedToCaller(t *testing.T) {
	f := newFixture(t)
	other := factory.UUID()
	otherCtx := mapper.SessionUUIDToContext(context.Background(), other)
	mine := f.addDocument(t, f.client.UUID)
	theirs := f.addDocument(t, other)

	require.NoError(t, f.c.DidChangeViewState(otherCtx, &entity.DidChangeViewStateParams{WebviewID: theirs.WebviewID, Active: true}))

	_, ok := f.c.Active(f.ctx)
	assert.False(t, ok)
	got, ok := f.c.Active(otherCtx)
	require.True(t, ok)
	assert.Equal(t, theirs.WebviewID, got.WebviewID)

	_, ok = f.c.Active(context.Background())
	assert.False(t, ok)

	// Focus moves across hosts; still a single active panel overall.
	require.NoError(t, f.c.DidChangeViewState(f.ctx, &entity.DidChangeViewStateParams{WebviewID: mine.WebviewID, Active: true}))
	assert.Equal(t, 1, f.activeCount(t))
	got, ok = f.c.Active(f.ctx)
	require.True(t, ok)
	assert.Equal(t, mine.WebviewID, got.WebviewID)
	_, ok = f.c.Active(otherCtx)
	assert.False(t, ok)
}

func TestDidReceiveMessage(t *testing.T) {
	f := newFixture(t)
	id := factory.UUID()

	f.docLifecycle.EXPECT().DidChangeContent(f.ctx, id).Return(nil)
	assert.NoError(t, f.c.DidReceiveMessage(f.ctx, &entity.WebviewMessageParams{
		WebviewID: id,
		Message:   entity.WebviewEvent{Type: entity.WebviewEventContentChanged},
	}))

	f.docLifecycle.EXPECT().ResolveSerialize(f.ctx, id, "req-1", "<diagram/>").Return(nil)
	assert.NoError(t, f.c.DidReceiveMessage(f.ctx, &entity.WebviewMessageParams{
		WebviewID: id,
		Message:   entity.WebviewEvent{Type: entity.WebviewEventSerializeResponse, RequestID: "req-1", Content: "<diagram/>"},
	}))

	assert.NoError(t, f.c.DidReceiveMessage(f.ctx, &entity.WebviewMessageParams{
		WebviewID: id,
		Message:   entity.WebviewEvent{Type: "somethingElse"},
	}))
}
