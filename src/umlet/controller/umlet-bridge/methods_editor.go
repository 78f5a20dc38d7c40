package umletbridge

import (
	"context"

	"github.com/umlet/umlet-bridge/src/umlet/entity"
)

// ResolveCustomEditor creates the DocumentSession for a new panel and returns its content.
func (c *controller) ResolveCustomEditor(ctx context.Context, params *entity.ResolveCustomEditorParams) (*entity.ResolveCustomEditorResult, error) {
	return c.editorProvider.ResolveCustomEditor(ctx, params)
}

// LoadDocument pushes the file content into a resolved panel.
func (c *controller) LoadDocument(ctx context.Context, params *entity.ResolveCustomEditorParams) error {
	return c.editorProvider.LoadDocument(ctx, params)
}

func (c *controller) DidChangeViewState(ctx context.Context, params *entity.DidChangeViewStateParams) error {
	return c.editorProvider.DidChangeViewState(ctx, params)
}

func (c *controller) DidDisposeWebview(ctx context.Context, params *entity.DidDisposeWebviewParams) error {
	return c.editorProvider.DisposeWebview(ctx, params.WebviewID)
}

func (c *controller) WebviewMessage(ctx context.Context, params *entity.WebviewMessageParams) error {
	return c.editorProvider.DidReceiveMessage(ctx, params)
}

// SaveCustomDocument writes the current webview content back to the document's file.
func (c *controller) SaveCustomDocument(ctx context.Context, params *entity.CustomDocumentParams) error {
	return c.docLifecycle.Save(ctx, params.WebviewID)
}

func (c *controller) SaveCustomDocumentAs(ctx context.Context, params *entity.SaveCustomDocumentAsParams) error {
	return c.docLifecycle.SaveAs(ctx, params.WebviewID, params.Destination)
}

func (c *controller) RevertCustomDocument(ctx context.Context, params *entity.CustomDocumentParams) error {
	return c.docLifecycle.Revert(ctx, params.WebviewID)
}

func (c *controller) BackupCustomDocument(ctx context.Context, params *entity.BackupCustomDocumentParams) (*entity.BackupResult, error) {
	return c.docLifecycle.Backup(ctx, params.WebviewID, params.Destination)
}
