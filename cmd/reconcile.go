package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang-netreconcile/internal/adapter/infrastructure/command"
	"golang-netreconcile/internal/adapter/infrastructure/dryrun"
	"golang-netreconcile/internal/adapter/infrastructure/file"
	"golang-netreconcile/internal/adapter/infrastructure/network"
	"golang-netreconcile/internal/adapter/infrastructure/ovs"
	"golang-netreconcile/internal/adapter/infrastructure/probe"
	"golang-netreconcile/internal/adapter/infrastructure/state"
	"golang-netreconcile/internal/adapter/reconcile"
	"golang-netreconcile/internal/pkg/config"
	"golang-netreconcile/internal/pkg/logging"
	"golang-netreconcile/internal/pkg/metrics"
	"golang-netreconcile/internal/port"

	"github.com/spf13/cobra"
)

var (
	configFlag string
	dryRunFlag bool
	onceFlag   bool
)

// createReconciler wires the adapters for cfg. The returned cleanup releases
// the netlink handle and the state store.
func createReconciler(cfg *config.Config) (*reconcile.Manager, func(), error) {
	netMgr, err := network.NewManagerAdapter(cfg.Netns)
	if err != nil {
		return nil, nil, err
	}
	ovsMgr := ovs.NewManagerAdapter(command.NewExecutorAdapter(), cfg.OVS.Vsctl)
	fileMgr := file.NewManagerAdapter()

	store, err := state.New(cfg.State.Backend, cfg.State.Path, fileMgr)
	if err != nil {
		netMgr.Close()
		return nil, nil, err
	}
	cleanup := func() {
		store.Close()
		netMgr.Close()
	}

	var (
		networkPort port.NetworkManager = netMgr
		ovsPort     port.OVSManager     = ovsMgr
	)
	if cfg.Reconcile.DryRun {
		rec := dryrun.NewRecorder()
		networkPort = dryrun.NewNetworkManager(netMgr, rec)
		ovsPort = dryrun.NewOVSManager(ovsMgr, rec)
		logging.WithComponent("reconcile").Info("Dry run: changes are logged, not applied")
	}

	manager := reconcile.NewManager(cfg, networkPort, ovsPort, store, fileMgr)
	if cfg.Reachability.Target != "" {
		manager.WithProber(probe.NewProberAdapter(cfg.Reachability.Timeout, cfg.Reachability.Privileged))
	}
	if cfg.Metrics.Textfile != "" {
		manager.WithMetrics(metrics.NewRegistry())
	}
	return manager, cleanup, nil
}

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Converge the host's interfaces, addresses and default route to the configured networks",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(configFlag)
		if err != nil {
			fmt.Printf("Config error: %v\n", err)
			os.Exit(1)
		}
		if dryRunFlag {
			cfg.Reconcile.DryRun = true
		}
		if onceFlag {
			cfg.Reconcile.Interval = 0
		}

		// Initialize logging
		logging.InitLogger(cfg.Logging)

		logger := logging.GetLogger()
		logger.WithFields(map[string]interface{}{
			"config_file": configFlag,
			"networks":    len(cfg.Networks),
			"dry_run":     cfg.Reconcile.DryRun,
		}).Info("Starting reconciler")

		// Create context for graceful shutdown
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			sig := <-sigChan
			logger.WithField("signal", sig.String()).Info("Received shutdown signal")
			cancel()
		}()

		manager, cleanup, err := createReconciler(cfg)
		if err != nil {
			logger.WithError(err).Error("Failed to create reconciler")
			os.Exit(1)
		}
		defer cleanup()

		if err := manager.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.WithError(err).Error("Reconciliation failed")
			cleanup()
			os.Exit(1)
		}
		logger.Info("Reconciler stopped")
	},
}

func init() {
	reconcileCmd.Flags().StringVarP(&configFlag, "config", "f", "", "Path to config file (YAML)")
	reconcileCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Log changes without applying them")
	reconcileCmd.Flags().BoolVar(&onceFlag, "once", false, "Run a single pass even if an interval is configured")
	if err := reconcileCmd.MarkFlagRequired("config"); err != nil {
		panic(err) // This should never happen during initialization
	}
	rootCmd.AddCommand(reconcileCmd)
}
