package provider

import "context"

// Provider is the remote calendar collaborator, specified only at its
// interface. Sync is a best-effort, last-write-wins full resync; the
// orchestrator decides when it is safe to call it.
type Provider interface {
	// Connected reports whether a remote account/subscription is configured.
	Connected() bool
	// Sync performs one full resync against the remote service.
	Sync(ctx context.Context) error
}

// Disconnected is the null provider used when no remote is configured.
type Disconnected struct{}

func (Disconnected) Connected() bool                { return false }
func (Disconnected) Sync(ctx context.Context) error { return nil }
