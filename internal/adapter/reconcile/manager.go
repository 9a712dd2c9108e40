// Package reconcile executes topology plans against the live system. It
// implements the TopologyReconciler port.
package reconcile

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang-netreconcile/internal/adapter/inventory"
	"golang-netreconcile/internal/pkg/config"
	"golang-netreconcile/internal/pkg/logging"
	"golang-netreconcile/internal/pkg/metrics"
	"golang-netreconcile/internal/pkg/topology"
	"golang-netreconcile/internal/port"
	"golang-netreconcile/internal/types"
)

// Manager runs reconciliation passes. Passes never overlap.
type Manager struct {
	cfg       *config.Config
	network   port.NetworkManager
	ovs       port.OVSManager
	inventory port.InterfaceInventory
	store     port.StateStore
	files     port.FileManager
	prober    port.ReachabilityProber
	metrics   *metrics.Registry

	newDatapathID func() string
	now           func() time.Time

	// per pass
	mutations int
}

// Ensure Manager implements the TopologyReconciler port
var _ port.TopologyReconciler = (*Manager)(nil)

// NewManager creates a reconciler for cfg. The network and ovs ports may be
// dry-run decorators; reads still reach the real system through them.
func NewManager(cfg *config.Config, network port.NetworkManager, ovs port.OVSManager, store port.StateStore, files port.FileManager) *Manager {
	return &Manager{
		cfg:           cfg,
		network:       network,
		ovs:           ovs,
		inventory:     inventory.New(network, ovs),
		store:         store,
		files:         files,
		newDatapathID: topology.DefaultDatapathID,
		now:           time.Now,
	}
}

// WithProber enables the post-pass reachability wait.
func (m *Manager) WithProber(p port.ReachabilityProber) *Manager {
	m.prober = p
	return m
}

// WithMetrics records every pass into r.
func (m *Manager) WithMetrics(r *metrics.Registry) *Manager {
	m.metrics = r
	return m
}

// Run performs a pass and, when an interval is configured, repeats it until
// the context is cancelled. Failed passes are logged and retried on the next
// tick; in single-pass mode the error is returned.
func (m *Manager) Run(ctx context.Context) error {
	logger := logging.WithComponent("reconcile")
	interval := m.cfg.Reconcile.Interval

	if _, err := m.Reconcile(ctx); err != nil {
		if interval <= 0 {
			return err
		}
		logger.WithError(err).Error("Reconciliation pass failed")
	}
	if interval <= 0 {
		return nil
	}

	logger.WithField("interval", interval.String()).Info("Starting periodic reconciliation")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Periodic reconciliation stopped due to context cancellation")
			return ctx.Err()
		case <-ticker.C:
			if _, err := m.Reconcile(ctx); err != nil {
				logger.WithError(err).Error("Reconciliation pass failed")
			}
		}
	}
}

// Reconcile performs exactly one pass.
func (m *Manager) Reconcile(ctx context.Context) (*types.PassResult, error) {
	start := m.now()
	m.mutations = 0

	res, err := m.reconcile(ctx)

	result := metrics.ResultSuccess
	switch {
	case err != nil:
		result = metrics.ResultFailure
	case m.cfg.Reconcile.DryRun:
		result = metrics.ResultDryRun
	}
	m.recordPass(result, start)

	logger := logging.WithComponent("reconcile").WithFields(map[string]interface{}{
		"mutations": m.mutations,
		"duration":  m.now().Sub(start).String(),
	})
	if err != nil {
		logger.WithError(err).Error("Reconciliation pass aborted")
		return nil, err
	}
	logger.Info("Reconciliation pass complete")
	return res, nil
}

func (m *Manager) reconcile(ctx context.Context) (*types.PassResult, error) {
	logger := logging.WithComponent("reconcile")
	dryRun := m.cfg.Reconcile.DryRun

	previous, err := m.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	managed := m.files.FileExists(m.cfg.ManagedMarker)

	live, err := m.inventory.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read interfaces: %w", err)
	}

	plan, err := topology.Build(topology.Input{
		Networks:        m.cfg.Networks,
		Conduits:        m.cfg.Conduits,
		Live:            live,
		Previous:        previous,
		Managed:         managed,
		VLANBridgeNames: m.cfg.Reconcile.VLANBridgeNames,
		NewDatapathID:   m.newDatapathID,
	})
	if err != nil {
		return nil, err
	}
	for _, w := range plan.Warnings {
		logger.Warn(w)
	}
	logger.WithFields(map[string]interface{}{
		"interfaces": len(plan.Interfaces),
		"actions":    len(plan.Actions),
		"managed":    managed,
	}).Debug("Planned topology")
	for _, n := range m.cfg.Networks {
		chain := plan.Networks[n.Name]
		if len(chain) == 0 {
			continue
		}
		logging.WithNetwork(n.Name).WithFields(map[string]interface{}{
			"component": "reconcile",
			"interface": chain[len(chain)-1],
			"chain":     strings.Join(chain, ">"),
		}).Debug("Network placed")
	}

	if len(plan.GeneratedDatapathIDs) > 0 && !dryRun {
		if err := m.checkpointDatapathIDs(ctx, previous, plan); err != nil {
			return nil, err
		}
	}

	if err := m.applyActions(ctx, plan.Actions); err != nil {
		return nil, err
	}
	if len(plan.Actions) > 0 {
		if live, err = m.inventory.Fetch(ctx); err != nil {
			return nil, fmt.Errorf("failed to read interfaces: %w", err)
		}
	}

	if err := m.converge(ctx, plan, live); err != nil {
		return nil, err
	}

	stale := topology.CollectStale(plan.Interfaces, live, previous.Interfaces, managed)
	if err := m.destroyStale(ctx, stale, live); err != nil {
		return nil, err
	}
	warnings := plan.Warnings
	if len(stale) > 0 && !dryRun {
		if live, err = m.inventory.Fetch(ctx); err != nil {
			return nil, fmt.Errorf("failed to read interfaces: %w", err)
		}
		warnings = append(warnings, missingAfterCleanup(plan.Interfaces, live)...)
	}

	res := &types.PassResult{
		Interfaces:       plan.Interfaces,
		Networks:         plan.Networks,
		NetworkAddresses: plan.NetworkAddresses,
		DefaultRoute:     plan.DefaultRoute,
		Destroyed:        stale,
		Warnings:         warnings,
		Mutations:        m.mutations,
		DryRun:           dryRun,
	}
	if dryRun {
		return res, nil
	}

	state := plan.State()
	state.UpdatedAt = m.now()
	if err := m.store.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save state: %w", err)
	}
	if !managed {
		if err := m.files.WriteFile(m.cfg.ManagedMarker, []byte(state.UpdatedAt.UTC().Format(time.RFC3339)+"\n"), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write managed marker: %w", err)
		}
		logger.WithField("marker", m.cfg.ManagedMarker).Info("Host is now managed")
	}

	m.waitReachable(ctx)
	return res, nil
}

// missingAfterCleanup reports wanted interfaces that no longer exist once
// stale ones are gone. The kernel removes dependants of a deleted device, so
// this catches a collection that reached further than planned.
func missingAfterCleanup(want types.InterfaceMap, live *types.LiveState) []string {
	var warnings []string
	for _, name := range want.Names() {
		if want[name].Unmanaged {
			continue
		}
		if _, ok := live.Get(name); !ok {
			msg := fmt.Sprintf("%s disappeared while removing stale interfaces", name)
			logging.WithComponentAndInterface("reconcile", name).Warn("Interface disappeared while removing stale interfaces")
			warnings = append(warnings, msg)
		}
	}
	return warnings
}

// checkpointDatapathIDs persists freshly generated OVS datapath ids before
// anything is mutated so that a failed pass reuses them.
func (m *Manager) checkpointDatapathIDs(ctx context.Context, previous *types.PersistedState, plan *topology.Plan) error {
	cp := *previous
	cp.DatapathIDs = make(map[string]string, len(previous.DatapathIDs)+len(plan.GeneratedDatapathIDs))
	for k, v := range previous.DatapathIDs {
		cp.DatapathIDs[k] = v
	}
	for _, bridge := range plan.GeneratedDatapathIDs {
		cp.DatapathIDs[bridge] = plan.DatapathIDs[bridge]
	}
	if err := m.store.Save(ctx, &cp); err != nil {
		return fmt.Errorf("failed to save datapath ids: %w", err)
	}
	return nil
}

func (m *Manager) recordPass(result string, start time.Time) {
	if m.metrics == nil {
		return
	}
	now := m.now()
	m.metrics.ObservePass(result, now.Sub(start), now)
	if path := m.cfg.Metrics.Textfile; path != "" {
		if err := m.metrics.WriteTextfile(path); err != nil {
			logging.WithComponent("reconcile").WithError(err).Warn("Failed to write metrics")
		}
	}
}

// mutate runs one kernel or OVS change, counting it and wrapping failures.
func (m *Manager) mutate(op, iface string, fn func() error) error {
	if err := fn(); err != nil {
		return &types.OperationError{Op: op, Interface: iface, Err: err}
	}
	m.mutations++
	if m.metrics != nil {
		m.metrics.Mutation(op)
	}
	return nil
}
