package payments

import "sync"

// Status is the gateway's verdict on a charge.
type Status string

const (
	StatusSucceeded  Status = "succeeded"
	StatusProcessing Status = "processing"
	StatusFailed     Status = "failed"
)

// Gateway is the payment provider boundary. The core only needs to know
// whether a charge referenced at checkout actually went through; everything
// else about the provider stays behind this interface.
type Gateway interface {
	VerifyPayment(reference string) (Status, error)
}

// MockGateway is an in-memory Gateway for development and tests. Unknown
// references verify as succeeded; tests pin specific references to other
// outcomes with SetResult.
type MockGateway struct {
	results map[string]Status
	mu      sync.RWMutex
}

// NewMockGateway creates a new instance of MockGateway.
func NewMockGateway() *MockGateway {
	return &MockGateway{
		results: make(map[string]Status),
	}
}

// SetResult pins the verification outcome for a payment reference.
func (g *MockGateway) SetResult(reference string, status Status) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.results[reference] = status
}

// VerifyPayment reports the pinned outcome for the reference, defaulting to
// succeeded.
func (g *MockGateway) VerifyPayment(reference string) (Status, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if status, ok := g.results[reference]; ok {
		return status, nil
	}
	return StatusSucceeded, nil
}
