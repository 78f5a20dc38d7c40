// Package doclifecycle keeps the file on disk and the diagram shown in a webview consistent.
package doclifecycle

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	"github.com/uber-go/tally"
	"github.com/umlet/umlet-bridge/src/umlet/entity"
	ideclient "github.com/umlet/umlet-bridge/src/umlet/gateway/ide-client"
	umleterrors "github.com/umlet/umlet-bridge/src/umlet/internal/errors"
	"github.com/umlet/umlet-bridge/src/umlet/internal/filewatcher"
	"github.com/umlet/umlet-bridge/src/umlet/internal/fs"
	"github.com/umlet/umlet-bridge/src/umlet/mapper"
	"github.com/umlet/umlet-bridge/src/umlet/repository/document"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_nameKey                 = "doc-lifecycle"
	_defaultSerializeTimeout = 5 * time.Second
)

// Controller owns reading, writing and backing up the file behind each DocumentSession.
type Controller interface {
	// Open loads the initial content of a freshly resolved session into its webview.
	// When backupURI points at an existing backup, its content is used and the session starts dirty.
	Open(ctx context.Context, webviewID uuid.UUID, backupURI uri.URI) error
	// DidChangeContent records an edit made in the webview.
	DidChangeContent(ctx context.Context, webviewID uuid.UUID) error
	Save(ctx context.Context, webviewID uuid.UUID) error
	SaveAs(ctx context.Context, webviewID uuid.UUID, target uri.URI) error
	Revert(ctx context.Context, webviewID uuid.UUID) error
	Backup(ctx context.Context, webviewID uuid.UUID, destination uri.URI) (*entity.BackupResult, error)
	// ResolveSerialize completes a pending serialize round trip. Unknown requests are ignored.
	ResolveSerialize(ctx context.Context, webviewID uuid.UUID, requestID string, content string) error
	// Close abandons pending round trips of the webview and stops watching its file.
	Close(ctx context.Context, webviewID uuid.UUID) error
}

// Params are inbound parameters to initialize a new Controller.
type Params struct {
	fx.In

	Documents  document.Repository
	IdeGateway ideclient.Gateway
	Logger     *zap.SugaredLogger
	Stats      tally.Scope
	Config     config.Provider
	FS         fs.UmletFS
	Watcher    filewatcher.Watcher
}

type controller struct {
	documents  document.Repository
	ideGateway ideclient.Gateway
	logger     *zap.SugaredLogger
	stats      tally.Scope
	fs         fs.UmletFS
	watcher    filewatcher.Watcher

	serializeTimeout time.Duration
	watchChanges     bool
	pending          *pendingRequests

	// watched maps a webview to the file path registered with the watcher.
	watched   map[uuid.UUID]string
	watchedMu sync.Mutex
}

// New creates a new Controller.
func New(p Params) (Controller, error) {
	cfg := entity.DocumentsConfig{}
	if err := p.Config.Get(entity.DocumentsConfigKey).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting config field %q: %w", entity.DocumentsConfigKey, err)
	}

	c := &controller{
		documents:        p.Documents,
		ideGateway:       p.IdeGateway,
		logger:           p.Logger.With("component", _nameKey),
		stats:            p.Stats.SubScope("doc_lifecycle"),
		fs:               p.FS,
		watcher:          p.Watcher,
		serializeTimeout: time.Duration(cfg.SerializeTimeoutMs) * time.Millisecond,
		watchChanges:     cfg.WatchExternalChanges,
		pending:          newPendingRequests(),
		watched:          make(map[uuid.UUID]string),
	}
	if c.serializeTimeout <= 0 {
		c.serializeTimeout = _defaultSerializeTimeout
	}
	if c.watchChanges {
		c.watcher.OnChange(c.onFileChanged)
	}
	return c, nil
}

func (c *controller) Open(ctx context.Context, webviewID uuid.UUID, backupURI uri.URI) error {
	doc, err := c.documents.Get(ctx, webviewID)
	if err != nil {
		return err
	}

	path, err := mapper.URIToPath(doc.URI)
	if err != nil {
		return err
	}
	saved, err := c.readIfExists(path)
	if err != nil {
		return fmt.Errorf("reading %q: %w", path, err)
	}

	content, dirty := saved, false
	if backupURI != "" {
		backup, ok, err := c.readBackup(backupURI)
		if err != nil {
			c.logger.Warnw("ignoring unreadable backup", zap.String("backup", string(backupURI)), zap.Error(err))
		} else if ok {
			content, dirty = backup, true
		}
	}

	if _, err := c.documents.Update(ctx, webviewID, func(d *entity.DocumentSession) error {
		d.SavedContent = saved
		d.IsDirty = dirty
		return nil
	}); err != nil {
		return err
	}

	if err := c.postContent(ctx, doc, content); err != nil {
		return err
	}

	c.watch(webviewID, path)
	c.logger.Infow("document opened", zap.String("uri", string(doc.URI)), zap.Bool("fromBackup", dirty))
	return nil
}

func (c *controller) DidChangeContent(ctx context.Context, webviewID uuid.UUID) error {
	doc, err := c.documents.Update(ctx, webviewID, func(d *entity.DocumentSession) error {
		d.IsDirty = true
		return nil
	})
	if err != nil {
		return err
	}

	// Every change is forwarded so that the host can keep its undo stack in step.
	return c.ideGateway.NotifyDocumentChanged(clientContext(ctx, doc), &entity.DidChangeCustomDocumentParams{
		WebviewID: doc.WebviewID,
		URI:       doc.URI,
	})
}

func (c *controller) Save(ctx context.Context, webviewID uuid.UUID) error {
	doc, err := c.documents.Get(ctx, webviewID)
	if err != nil {
		return err
	}
	return c.saveTo(ctx, doc, doc.URI)
}

func (c *controller) SaveAs(ctx context.Context, webviewID uuid.UUID, target uri.URI) error {
	doc, err := c.documents.Get(ctx, webviewID)
	if err != nil {
		return err
	}
	return c.saveTo(ctx, doc, target)
}

func (c *controller) saveTo(ctx context.Context, doc *entity.DocumentSession, target uri.URI) (err error) {
	defer func() {
		if err != nil {
			c.stats.Counter("save.failure").Inc(1)
			c.reportSaveFailure(ctx, doc, target, err)
			return
		}
		c.stats.Counter("save.success").Inc(1)
	}()

	path, err := mapper.URIToPath(target)
	if err != nil {
		return err
	}

	content, err := c.serialize(ctx, doc)
	if err != nil {
		return err
	}

	if err := c.fs.WriteFile(path, content); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}

	if _, err := c.documents.Update(ctx, doc.WebviewID, func(d *entity.DocumentSession) error {
		d.URI = target
		d.IsDirty = false
		d.SavedContent = content
		return nil
	}); err != nil {
		return err
	}

	if target != doc.URI {
		c.unwatch(doc.WebviewID)
		c.watch(doc.WebviewID, path)
	}
	c.refreshOtherPanels(ctx, doc.WebviewID, target, content)
	c.logger.Infow("document saved", zap.String("uri", string(target)), zap.Int("bytes", len(content)))
	return nil
}

func (c *controller) reportSaveFailure(ctx context.Context, doc *entity.DocumentSession, target uri.URI, err error) {
	c.logger.Warnw("save failed", zap.String("uri", string(target)), zap.Error(err))
	if umleterrors.IsSessionDisposed(err) {
		return
	}
	if !umleterrors.IsSerializationTimeout(err) {
		// Other failures go to the host's output log rather than a popup.
		if logErr := c.ideGateway.LogMessage(clientContext(ctx, doc), &protocol.LogMessageParams{
			Type:    protocol.MessageTypeError,
			Message: fmt.Sprintf("Saving %s failed: %v", target, err),
		}); logErr != nil {
			c.logger.Warnf("logging save failure: %v", logErr)
		}
		return
	}

	name := string(target)
	if path, pathErr := mapper.URIToPath(target); pathErr == nil {
		name = filepath.Base(path)
	}
	if showErr := c.ideGateway.ShowMessage(clientContext(ctx, doc), &protocol.ShowMessageParams{
		Type:    protocol.MessageTypeWarning,
		Message: fmt.Sprintf("%s was not saved: the UMLet editor did not return the diagram within %s.", name, c.serializeTimeout),
	}); showErr != nil {
		c.logger.Warnf("showing save failure: %v", showErr)
	}
}

func (c *controller) Revert(ctx context.Context, webviewID uuid.UUID) error {
	doc, err := c.documents.Get(ctx, webviewID)
	if err != nil {
		return err
	}

	path, err := mapper.URIToPath(doc.URI)
	if err != nil {
		return err
	}
	content, err := c.readIfExists(path)
	if err != nil {
		return fmt.Errorf("reading %q: %w", path, err)
	}

	if _, err := c.documents.Update(ctx, webviewID, func(d *entity.DocumentSession) error {
		d.IsDirty = false
		d.SavedContent = content
		return nil
	}); err != nil {
		return err
	}
	return c.postContent(ctx, doc, content)
}

func (c *controller) Backup(ctx context.Context, webviewID uuid.UUID, destination uri.URI) (*entity.BackupResult, error) {
	doc, err := c.documents.Get(ctx, webviewID)
	if err != nil {
		return nil, err
	}

	path, err := mapper.URIToPath(destination)
	if err != nil {
		return nil, err
	}

	content, err := c.serialize(ctx, doc)
	if err != nil {
		return nil, err
	}

	if err := c.fs.MkdirAll(filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("creating backup directory: %w", err)
	}
	if err := c.fs.WriteFile(path, content); err != nil {
		return nil, fmt.Errorf("writing backup %q: %w", path, err)
	}
	c.stats.Counter("backups").Inc(1)
	return &entity.BackupResult{ID: string(destination)}, nil
}

func (c *controller) ResolveSerialize(ctx context.Context, webviewID uuid.UUID, requestID string, content string) error {
	if !c.pending.resolve(requestID, webviewID, []byte(content)) {
		c.logger.Debugw("ignoring serialize response without a pending request",
			zap.Stringer("webviewId", webviewID),
			zap.String("requestId", requestID))
	}
	return nil
}

func (c *controller) Close(ctx context.Context, webviewID uuid.UUID) error {
	if n := c.pending.cancelAll(webviewID, &umleterrors.SessionDisposedError{WebviewID: webviewID}); n > 0 {
		c.logger.Infow("cancelled pending requests", zap.Stringer("webviewId", webviewID), zap.Int("count", n))
	}
	c.unwatch(webviewID)
	return nil
}

// serialize asks the webview for its current content and waits for the answer.
func (c *controller) serialize(ctx context.Context, doc *entity.DocumentSession) ([]byte, error) {
	requestID, result, err := c.pending.add(doc.WebviewID)
	if err != nil {
		return nil, err
	}
	defer c.pending.remove(requestID)

	start := time.Now()
	if err := c.ideGateway.PostMessage(clientContext(ctx, doc), &entity.PostMessageParams{
		WebviewID: doc.WebviewID,
		Message: entity.WebviewMessage{
			Command:   entity.WebviewCommandRequestSerialize,
			RequestID: requestID,
		},
	}); err != nil {
		return nil, fmt.Errorf("requesting diagram content: %w", err)
	}

	timer := time.NewTimer(c.serializeTimeout)
	defer timer.Stop()

	select {
	case res := <-result:
		c.stats.Timer("serialize.latency").Record(time.Since(start))
		return res.content, res.err
	case <-timer.C:
		return nil, &umleterrors.SerializationTimeoutError{WebviewID: doc.WebviewID, Timeout: c.serializeTimeout}
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *controller) postContent(ctx context.Context, doc *entity.DocumentSession, content []byte) error {
	return c.ideGateway.PostMessage(clientContext(ctx, doc), &entity.PostMessageParams{
		WebviewID: doc.WebviewID,
		Message: entity.WebviewMessage{
			Command: entity.WebviewCommandSetContent,
			Text:    string(content),
		},
	})
}

func (c *controller) readIfExists(path string) ([]byte, error) {
	exists, err := c.fs.FileExists(path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return []byte{}, nil
	}
	return c.fs.ReadFile(path)
}

func (c *controller) readBackup(backupURI uri.URI) ([]byte, bool, error) {
	path, err := mapper.URIToPath(backupURI)
	if err != nil {
		return nil, false, err
	}
	exists, err := c.fs.FileExists(path)
	if err != nil || !exists {
		return nil, false, err
	}
	content, err := c.fs.ReadFile(path)
	if err != nil {
		return nil, false, err
	}
	return content, true, nil
}

func (c *controller) watch(webviewID uuid.UUID, path string) {
	if !c.watchChanges {
		return
	}
	if err := c.watcher.Add(path); err != nil {
		c.logger.Warnw("not watching file for external changes", zap.String("path", path), zap.Error(err))
		return
	}

	c.watchedMu.Lock()
	defer c.watchedMu.Unlock()
	c.watched[webviewID] = path
}

func (c *controller) unwatch(webviewID uuid.UUID) {
	c.watchedMu.Lock()
	path, ok := c.watched[webviewID]
	delete(c.watched, webviewID)
	c.watchedMu.Unlock()

	if !ok {
		return
	}
	if err := c.watcher.Remove(path); err != nil {
		c.logger.Warnw("removing file watch", zap.String("path", path), zap.Error(err))
	}
}

// onFileChanged pushes content written by other programs to clean sessions of that file.
func (c *controller) onFileChanged(path string) {
	ctx := context.Background()

	c.watchedMu.Lock()
	var webviews []uuid.UUID
	for id, watchedPath := range c.watched {
		if watchedPath == path {
			webviews = append(webviews, id)
		}
	}
	c.watchedMu.Unlock()
	if len(webviews) == 0 {
		return
	}

	content, err := c.fs.ReadFile(path)
	if err != nil {
		c.logger.Warnw("reading externally changed file", zap.String("path", path), zap.Error(err))
		return
	}

	if n := c.pushToCleanPanels(ctx, webviews, content); n > 0 {
		c.stats.Counter("external_changes").Inc(int64(n))
		c.logger.Infow("reloaded externally changed file", zap.String("path", path), zap.Int("panels", n))
	}
}

// refreshOtherPanels shows freshly saved bytes in the other panels of the same file.
func (c *controller) refreshOtherPanels(ctx context.Context, saved uuid.UUID, target uri.URI, content []byte) {
	docs, err := c.documents.GetAllForURI(ctx, target)
	if err != nil {
		c.logger.Warnw("listing panels of saved file", zap.String("uri", string(target)), zap.Error(err))
		return
	}

	var others []uuid.UUID
	for _, d := range docs {
		if d.WebviewID != saved {
			others = append(others, d.WebviewID)
		}
	}
	c.pushToCleanPanels(ctx, others, content)
}

// pushToCleanPanels replaces the content of every listed panel without unsaved edits.
// It returns the number of panels that received the content.
func (c *controller) pushToCleanPanels(ctx context.Context, webviews []uuid.UUID, content []byte) int {
	pushed := 0
	for _, id := range webviews {
		changed := false
		doc, err := c.documents.Update(ctx, id, func(d *entity.DocumentSession) error {
			if d.IsDirty || bytes.Equal(d.SavedContent, content) {
				return nil
			}
			d.SavedContent = content
			changed = true
			return nil
		})
		if err != nil || !changed {
			continue
		}

		if err := c.postContent(ctx, doc, content); err != nil {
			if clientID, ok := umleterrors.NotFoundUUID(err); ok {
				c.logger.Debugw("host connection already closed", zap.Stringer("client", clientID), zap.Stringer("webviewId", id))
				continue
			}
			c.logger.Warnw("pushing content", zap.Stringer("webviewId", id), zap.Error(err))
			continue
		}
		pushed++
	}
	return pushed
}

// clientContext routes outbound calls to the host connection that opened the document.
func clientContext(ctx context.Context, doc *entity.DocumentSession) context.Context {
	return mapper.SessionUUIDToContext(ctx, doc.ClientUUID)
}
