package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/netreg-io/netreg/pkg/cli"
	"github.com/netreg-io/netreg/pkg/registry"
)

var deviceCmd = &cobra.Command{
	Use:   "device",
	Short: "Device operations",
}

var (
	deviceListName string
	deviceRole     string
	deviceMfr      string
	deviceModel    string
	deviceSite     string
)

var deviceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List devices",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		devices, err := c.Devices(cmd.Context(), deviceListName)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(devices)
		}

		t := cli.NewTable("ID", "NAME", "TYPE", "ROLE", "SITE")
		for _, d := range devices {
			t.Row(strconv.Itoa(d.ID), d.Name, d.DeviceType.Name, d.DeviceRole.Name, d.Site.Name)
		}
		t.Flush()
		return nil
	},
}

var deviceAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a device, creating missing prerequisites",
	Long: `Register a device in the inventory.

The device's manufacturer, role, device type and site are resolved first
and created on the fly when missing; the device is then created with the
resolved references. All four flags are required.

Examples:
  netreg device add leaf1-ny --role Leaf --manufacturer Juniper \
      --model EX4300-48T --site "New York"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		d, err := c.AddDevice(cmd.Context(), registry.DeviceParams{
			Name:         args[0],
			Role:         deviceRole,
			Manufacturer: deviceMfr,
			Model:        deviceModel,
			Site:         deviceSite,
		})
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(d)
		}
		fmt.Printf("device %s registered (id %d)\n", cli.Bold(d.Name), d.ID)
		return nil
	},
}

func init() {
	deviceListCmd.Flags().StringVar(&deviceListName, "name", "", "filter by exact name")
	deviceAddCmd.Flags().StringVar(&deviceRole, "role", "", "device role name")
	deviceAddCmd.Flags().StringVar(&deviceMfr, "manufacturer", "", "manufacturer name")
	deviceAddCmd.Flags().StringVar(&deviceModel, "model", "", "device type model")
	deviceAddCmd.Flags().StringVar(&deviceSite, "site", "", "site name")
	deviceCmd.AddCommand(deviceListCmd, deviceAddCmd)
}
