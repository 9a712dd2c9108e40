package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang-netreconcile/internal/adapter/infrastructure/file"
	"golang-netreconcile/internal/adapter/infrastructure/state"
	"golang-netreconcile/internal/types"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	showConfigFlag  string
	showNetworkFlag string
)

// describeNetwork renders which interface serves network.
func describeNetwork(st *types.PersistedState, network string) (string, error) {
	iface, ok := st.InterfaceFor(network)
	if !ok {
		return "", fmt.Errorf("network %s is not in the saved state", network)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "network:   %s\n", network)
	fmt.Fprintf(&b, "interface: %s\n", iface)
	fmt.Fprintf(&b, "chain:     %s\n", strings.Join(st.Networks[network], " -> "))
	if addrs := st.NetworkAddresses[network]; len(addrs) > 0 {
		fmt.Fprintf(&b, "addresses: %s\n", strings.Join(addrs, ", "))
	}
	if dr := st.DefaultRoute; dr != nil && dr.Network == network {
		fmt.Fprintf(&b, "gateway:   %s (default route)\n", dr.Gateway)
	}
	return b.String(), nil
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the interface map saved by the last successful pass",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(showConfigFlag)
		if err != nil {
			fmt.Printf("Config error: %v\n", err)
			os.Exit(1)
		}

		store, err := state.New(cfg.State.Backend, cfg.State.Path, file.NewManagerAdapter())
		if err != nil {
			fmt.Printf("State error: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()

		st, err := store.Load(context.Background())
		if err != nil {
			fmt.Printf("State error: %v\n", err)
			os.Exit(1)
		}

		if showNetworkFlag != "" {
			out, err := describeNetwork(st, showNetworkFlag)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			fmt.Print(out)
			return
		}

		data, err := yaml.Marshal(st)
		if err != nil {
			fmt.Printf("Failed to encode state: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(string(data))
	},
}

func init() {
	showCmd.Flags().StringVarP(&showConfigFlag, "config", "f", "", "Path to config file (YAML)")
	showCmd.Flags().StringVar(&showNetworkFlag, "network", "", "Only show the interface serving this network")
	if err := showCmd.MarkFlagRequired("config"); err != nil {
		panic(err) // This should never happen during initialization
	}
	rootCmd.AddCommand(showCmd)
}
