package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/netreg-io/netreg/pkg/cli"
)

var connectionCmd = &cobra.Command{
	Use:     "connection",
	Aliases: []string{"conn"},
	Short:   "Inter-device connection operations",
}

var (
	connDevice string
	connIface  string
)

var connectionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List connections",
	Long: `List inter-device connections, optionally scoped to one device.

--interface is accepted alongside --device but the registry endpoint only
filters by device; interface-level narrowing is not applied.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		conns, err := c.Connections(cmd.Context(), connDevice, connIface)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(conns)
		}

		t := cli.NewTable("ID", "DEVICE A", "INTERFACE A", "DEVICE B", "INTERFACE B")
		for _, conn := range conns {
			t.Row(strconv.Itoa(conn.ID),
				conn.InterfaceA.Device.Name, conn.InterfaceA.Name,
				conn.InterfaceB.Device.Name, conn.InterfaceB.Name)
		}
		t.Flush()
		return nil
	},
}

var connectionAddCmd = &cobra.Command{
	Use:   "add <device-a> <interface-a> <device-b> <interface-b>",
	Short: "Connect two device interfaces",
	Long: `Connect two device interfaces.

Both interfaces are resolved (device by name, then interface by name on
that device) before anything is written; if either side is missing, no
connection is created.

Examples:
  netreg connection add leaf1-ny xe-0/0/48 spine1-ny et-0/0/1`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		conn, err := c.AddConnection(cmd.Context(), args[0], args[1], args[2], args[3])
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(conn)
		}
		fmt.Printf("connected %s %s <-> %s %s (id %d)\n",
			cli.Bold(args[0]), args[1], cli.Bold(args[2]), args[3], conn.ID)
		return nil
	},
}

func init() {
	connectionListCmd.Flags().StringVarP(&connDevice, "device", "d", "", "scope to one device")
	connectionListCmd.Flags().StringVarP(&connIface, "interface", "i", "", "interface name (accepted, not a server-side filter)")
	connectionCmd.AddCommand(connectionListCmd, connectionAddCmd)
}
