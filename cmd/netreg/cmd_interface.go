package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/netreg-io/netreg/pkg/cli"
	"github.com/netreg-io/netreg/pkg/registry"
)

var interfaceCmd = &cobra.Command{
	Use:     "interface",
	Aliases: []string{"if"},
	Short:   "Interface operations",
}

var (
	ifaceDevice      string
	ifaceListName    string
	ifaceMAC         string
	ifaceDescription string
	ifaceFormFactor  int
	ifaceMTU         int
	ifaceDisabled    bool
)

var interfaceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List interfaces of a device",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		interfaces, err := c.Interfaces(cmd.Context(), ifaceDevice, ifaceListName)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(interfaces)
		}

		t := cli.NewTable("ID", "NAME", "MAC", "MTU", "ENABLED")
		for _, intf := range interfaces {
			mtu := ""
			if intf.MTU != 0 {
				mtu = strconv.Itoa(intf.MTU)
			}
			t.Row(strconv.Itoa(intf.ID), intf.Name, intf.MACAddress, mtu, strconv.FormatBool(intf.Enabled))
		}
		t.Flush()
		return nil
	},
}

var interfaceAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create an interface on an existing device",
	Long: `Create an interface on an existing device.

The device must already be registered; interfaces are never a reason to
create a device. Optional attributes are only sent when their flag is
given.

Examples:
  netreg interface add xe-0/0/0 --device leaf1-ny --mtu 9100
  netreg interface add mgmt0 --device leaf1-ny --mac aa:bb:cc:dd:ee:ff --disabled`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		params := registry.InterfaceParams{
			Device:      ifaceDevice,
			Name:        args[0],
			MACAddress:  ifaceMAC,
			Description: ifaceDescription,
			FormFactor:  ifaceFormFactor,
			MTU:         ifaceMTU,
		}
		if cmd.Flags().Changed("disabled") {
			enabled := !ifaceDisabled
			params.Enabled = &enabled
		}

		intf, err := c.AddInterface(cmd.Context(), params)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(intf)
		}
		fmt.Printf("interface %s created on %s (id %d)\n", cli.Bold(intf.Name), ifaceDevice, intf.ID)
		return nil
	},
}

func init() {
	interfaceCmd.PersistentFlags().StringVarP(&ifaceDevice, "device", "d", "", "owning device name (required)")

	interfaceListCmd.Flags().StringVar(&ifaceListName, "name", "", "filter by exact interface name")

	interfaceAddCmd.Flags().StringVar(&ifaceMAC, "mac", "", "MAC address")
	interfaceAddCmd.Flags().StringVar(&ifaceDescription, "description", "", "description")
	interfaceAddCmd.Flags().IntVar(&ifaceFormFactor, "form-factor", 0, "registry form-factor code")
	interfaceAddCmd.Flags().IntVar(&ifaceMTU, "mtu", 0, "MTU")
	interfaceAddCmd.Flags().BoolVar(&ifaceDisabled, "disabled", false, "create administratively disabled")

	interfaceCmd.AddCommand(interfaceListCmd, interfaceAddCmd)
}
