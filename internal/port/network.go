// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"

	"golang-netreconcile/internal/types"
)

// TopologyReconciler is the primary port for network topology reconciliation.
// It converges the live kernel configuration to the declared networks. Passes
// are strictly sequential; a second pass with unchanged inputs mutates nothing.
type TopologyReconciler interface {
	// Reconcile performs exactly one pass and returns its result.
	Reconcile(ctx context.Context) (*types.PassResult, error)

	// Run performs a pass and, when an interval is configured, keeps repeating
	// until the context is cancelled.
	Run(ctx context.Context) error
}
