package doclifecycle

import (
	"sync"

	"github.com/gofrs/uuid"
)

type serializeResult struct {
	content []byte
	err     error
}

type pendingRequest struct {
	webviewID uuid.UUID
	// result has capacity 1 so that resolving never blocks on a waiter that already gave up.
	result chan serializeResult
}

// pendingRequests tracks serialize round trips that are waiting for a webview answer.
type pendingRequests struct {
	mu   sync.Mutex
	byID map[string]*pendingRequest
}

func newPendingRequests() *pendingRequests {
	return &pendingRequests{
		byID: make(map[string]*pendingRequest),
	}
}

func (p *pendingRequests) add(webviewID uuid.UUID) (string, <-chan serializeResult, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", nil, err
	}

	req := &pendingRequest{
		webviewID: webviewID,
		result:    make(chan serializeResult, 1),
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.byID[id.String()] = req
	return id.String(), req.result, nil
}

// resolve completes the request with the given content. It reports false when
// no such request is pending for this webview.
func (p *pendingRequests) resolve(requestID string, webviewID uuid.UUID, content []byte) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	req, ok := p.byID[requestID]
	if !ok || req.webviewID != webviewID {
		return false
	}
	delete(p.byID, requestID)
	req.result <- serializeResult{content: content}
	return true
}

// cancelAll fails every pending request of the webview with err and returns how many were cancelled.
func (p *pendingRequests) cancelAll(webviewID uuid.UUID, err error) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for id, req := range p.byID {
		if req.webviewID != webviewID {
			continue
		}
		delete(p.byID, id)
		req.result <- serializeResult{err: err}
		n++
	}
	return n
}

func (p *pendingRequests) remove(requestID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.byID, requestID)
}

func (p *pendingRequests) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.byID)
}
