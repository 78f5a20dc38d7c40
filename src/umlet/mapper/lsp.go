package mapper

import (
	"encoding/json"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/umlet/umlet-bridge/src/umlet/entity"
	"github.com/umlet/umlet-bridge/src/umlet/internal/errors"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

// RequestToInitializeParams maps the parameters from a jsconrpc2.Request into protocol.InitializeParams.
func RequestToInitializeParams(req jsonrpc2.Request) (*protocol.InitializeParams, error) {
	params := protocol.InitializeParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToInitializedParams maps the parameters from a jsconrpc2.Request into protocol.InitializedParams.
func RequestToInitializedParams(req jsonrpc2.Request) (*protocol.InitializedParams, error) {
	params := protocol.InitializedParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToExecuteCommandParams maps the parameters from a jsconrpc2.Request into protocol.ExecuteCommandParams.
func RequestToExecuteCommandParams(req jsonrpc2.Request) (*protocol.ExecuteCommandParams, error) {
	params := protocol.ExecuteCommandParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	return &params, nil
}

// RequestToResolveCustomEditorParams maps the parameters of umlet/resolveCustomEditor.
func RequestToResolveCustomEditorParams(req jsonrpc2.Request) (*entity.ResolveCustomEditorParams, error) {
	params := entity.ResolveCustomEditorParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	if params.WebviewID == uuid.Nil {
		return nil, errors.NoUUIDOnWireError
	}
	if params.URI == "" {
		return nil, errors.NoURIOnWireError
	}
	return &params, nil
}

// RequestToDidChangeViewStateParams maps the parameters of umlet/didChangeViewState.
func RequestToDidChangeViewStateParams(req jsonrpc2.Request) (*entity.DidChangeViewStateParams, error) {
	params := entity.DidChangeViewStateParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	if params.WebviewID == uuid.Nil {
		return nil, errors.NoUUIDOnWireError
	}
	return &params, nil
}

// RequestToDidDisposeWebviewParams maps the parameters of umlet/didDisposeWebview.
func RequestToDidDisposeWebviewParams(req jsonrpc2.Request) (*entity.DidDisposeWebviewParams, error) {
	params := entity.DidDisposeWebviewParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	if params.WebviewID == uuid.Nil {
		return nil, errors.NoUUIDOnWireError
	}
	return &params, nil
}

// RequestToWebviewMessageParams maps the parameters of umlet/webviewMessage.
func RequestToWebviewMessageParams(req jsonrpc2.Request) (*entity.WebviewMessageParams, error) {
	params := entity.WebviewMessageParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	if params.WebviewID == uuid.Nil {
		return nil, errors.NoUUIDOnWireError
	}
	return &params, nil
}

// RequestToCustomDocumentParams maps the parameters of umlet/saveCustomDocument and umlet/revertCustomDocument.
func RequestToCustomDocumentParams(req jsonrpc2.Request) (*entity.CustomDocumentParams, error) {
	params := entity.CustomDocumentParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	if params.WebviewID == uuid.Nil {
		return nil, errors.NoUUIDOnWireError
	}
	return &params, nil
}

// RequestToSaveCustomDocumentAsParams maps the parameters of umlet/saveCustomDocumentAs.
func RequestToSaveCustomDocumentAsParams(req jsonrpc2.Request) (*entity.SaveCustomDocumentAsParams, error) {
	params := entity.SaveCustomDocumentAsParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	if params.WebviewID == uuid.Nil {
		return nil, errors.NoUUIDOnWireError
	}
	if params.Destination == "" {
		return nil, errors.NoURIOnWireError
	}
	return &params, nil
}

// RequestToBackupCustomDocumentParams maps the parameters of umlet/backupCustomDocument.
func RequestToBackupCustomDocumentParams(req jsonrpc2.Request) (*entity.BackupCustomDocumentParams, error) {
	params := entity.BackupCustomDocumentParams{}
	if err := json.Unmarshal(req.Params(), &params); err != nil {
		return nil, wrapErrParse(err)
	}
	if params.WebviewID == uuid.Nil {
		return nil, errors.NoUUIDOnWireError
	}
	if params.Destination == "" {
		return nil, errors.NoURIOnWireError
	}
	return &params, nil
}

func wrapErrParse(err error) error {
	return fmt.Errorf("%s: %w", jsonrpc2.ErrParse, err)
}
