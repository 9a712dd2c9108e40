package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"golang-netreconcile/internal/adapter/infrastructure/command"
	"golang-netreconcile/internal/adapter/infrastructure/network"
	"golang-netreconcile/internal/adapter/infrastructure/ovs"
	"golang-netreconcile/internal/adapter/inventory"
	"golang-netreconcile/internal/pkg/logging"
	"golang-netreconcile/internal/port"
	"golang-netreconcile/internal/types"

	"github.com/spf13/cobra"
)

var (
	inventoryNetnsFlag string
	inventoryVsctlFlag string
)

// printInventory writes one row per live interface. inspector may be nil.
func printInventory(w io.Writer, live *types.LiveState, inspector port.LinkInspector) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTYPE\tSTATE\tMTU\tMASTER\tADDRESSES\tDRIVER\tBUS\tSPEED")

	for _, name := range live.Order {
		o := live.Interfaces[name]
		st := "down"
		if o.Up {
			st = "up"
		}
		master := o.Master
		if master == "" {
			master = "-"
		}
		addrs := strings.Join(o.Addresses, ",")
		if addrs == "" {
			addrs = "-"
		}

		driver, bus, speed := "-", "-", "-"
		if inspector != nil && o.Type == types.TypePhysical {
			if d, err := inspector.Inspect(name); err == nil {
				driver, bus = d.Driver, d.BusInfo
				if d.Speed > 0 {
					speed = fmt.Sprintf("%dMb/s/%s", d.Speed, d.Duplex)
				}
			} else {
				logging.WithComponentAndInterface("inventory", name).WithError(err).Debug("No ethtool details")
			}
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			o.Name, o.Type, st, o.MTU, master, addrs, driver, bus, speed)
	}
	return tw.Flush()
}

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "List live interfaces as the reconciler sees them",
	Run: func(cmd *cobra.Command, args []string) {
		netMgr, err := network.NewManagerAdapter(inventoryNetnsFlag)
		if err != nil {
			fmt.Printf("Netlink error: %v\n", err)
			os.Exit(1)
		}
		defer netMgr.Close()

		inv := inventory.New(netMgr, ovs.NewManagerAdapter(command.NewExecutorAdapter(), inventoryVsctlFlag))
		live, err := inv.Fetch(context.Background())
		if err != nil {
			fmt.Printf("Inventory error: %v\n", err)
			os.Exit(1)
		}

		// ethtool ioctls run in the caller's namespace
		var inspector port.LinkInspector
		if inventoryNetnsFlag == "" {
			if inspector, err = newLinkInspector(); err != nil {
				logging.WithComponent("inventory").WithError(err).Debug("ethtool unavailable")
				inspector = nil
			} else {
				defer inspector.Close()
			}
		}

		if err := printInventory(os.Stdout, live, inspector); err != nil {
			fmt.Printf("Output error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	inventoryCmd.Flags().StringVar(&inventoryNetnsFlag, "netns", "", "Named network namespace to inspect")
	inventoryCmd.Flags().StringVar(&inventoryVsctlFlag, "ovs-vsctl", ovs.DefaultVsctl, "Path to ovs-vsctl")
	rootCmd.AddCommand(inventoryCmd)
}
