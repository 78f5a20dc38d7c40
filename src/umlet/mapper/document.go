package mapper

import (
	"fmt"
	"net/url"

	"github.com/umlet/umlet-bridge/src/umlet/entity"
	"github.com/umlet/umlet-bridge/src/umlet/model"
	"go.lsp.dev/uri"
)

// DocumentSessionToModel maps a DocumentSession entity to its model equivalent.
// SavedContent is copied so callers cannot mutate stored bytes.
func DocumentSessionToModel(d *entity.DocumentSession) *model.DocumentSession {
	return &model.DocumentSession{
		WebviewID:    d.WebviewID,
		ClientUUID:   d.ClientUUID,
		URI:          string(d.URI),
		State:        int(d.State),
		IsDirty:      d.IsDirty,
		IsActive:     d.IsActive,
		SavedContent: copyBytes(d.SavedContent),
	}
}

// ModelToDocumentSession maps a model DocumentSession to its entity equivalent.
func ModelToDocumentSession(m *model.DocumentSession) (*entity.DocumentSession, error) {
	return &entity.DocumentSession{
		WebviewID:    m.WebviewID,
		ClientUUID:   m.ClientUUID,
		URI:          uri.URI(m.URI),
		State:        entity.DocumentState(m.State),
		IsDirty:      m.IsDirty,
		IsActive:     m.IsActive,
		SavedContent: copyBytes(m.SavedContent),
	}, nil
}

// ResolveParamsToDocumentSession creates an Uninitialized DocumentSession for a newly resolved panel.
func ResolveParamsToDocumentSession(p *entity.ResolveCustomEditorParams, client *entity.Session) *entity.DocumentSession {
	d := &entity.DocumentSession{
		WebviewID: p.WebviewID,
		URI:       p.URI,
		State:     entity.DocumentStateUninitialized,
	}
	if client != nil {
		d.ClientUUID = client.UUID
	}
	return d
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

// URIToPath returns the local filesystem path of a file:// URI.
func URIToPath(u uri.URI) (string, error) {
	parsed, err := url.ParseRequestURI(string(u))
	if err != nil {
		return "", fmt.Errorf("parsing uri %q: %w", u, err)
	}
	if parsed.Scheme != uri.FileScheme {
		return "", fmt.Errorf("uri %q is not a local file", u)
	}
	return u.Filename(), nil
}
