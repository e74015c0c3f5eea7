package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/netreg-io/netreg/pkg/cli"
	"github.com/netreg-io/netreg/pkg/registry"
)

var deviceTypeCmd = &cobra.Command{
	Use:     "device-type",
	Aliases: []string{"type"},
	Short:   "Device type (hardware model) operations",
}

var (
	deviceTypeListModel string
	deviceTypeMfr       string
	deviceTypeHeight    int
	deviceTypeStrictMfr bool
)

var deviceTypeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List device types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		types, err := c.DeviceTypes(cmd.Context(), deviceTypeListModel)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(types)
		}

		t := cli.NewTable("ID", "MODEL", "SLUG", "MANUFACTURER", "U")
		for _, dt := range types {
			t.Row(strconv.Itoa(dt.ID), dt.Model, dt.Slug, dt.Manufacturer.Name, strconv.Itoa(dt.UHeight))
		}
		t.Flush()
		return nil
	},
}

var deviceTypeAddCmd = &cobra.Command{
	Use:   "add <model>",
	Short: "Create a device type",
	Long: `Create a device type under a manufacturer.

The manufacturer is created on the fly when missing unless
--require-manufacturer is given, in which case a missing manufacturer
fails the command without creating anything.

Examples:
  netreg device-type add EX4300-48T --manufacturer Juniper --height 1
  netreg device-type add "ProLiant DL360 G7" --manufacturer "Hewlett Packard" --require-manufacturer`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		dt, err := c.AddDeviceType(cmd.Context(), registry.DeviceTypeParams{
			Model:               args[0],
			Manufacturer:        deviceTypeMfr,
			Height:              deviceTypeHeight,
			RequireManufacturer: deviceTypeStrictMfr,
		})
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(dt)
		}
		fmt.Printf("device type %s (id %d, slug %s)\n", cli.Bold(dt.Model), dt.ID, dt.Slug)
		return nil
	},
}

func init() {
	deviceTypeListCmd.Flags().StringVar(&deviceTypeListModel, "model", "", "filter by exact model")
	deviceTypeAddCmd.Flags().StringVar(&deviceTypeMfr, "manufacturer", "", "manufacturer name (required)")
	deviceTypeAddCmd.Flags().IntVar(&deviceTypeHeight, "height", 0, "rack units")
	deviceTypeAddCmd.Flags().BoolVar(&deviceTypeStrictMfr, "require-manufacturer", false, "fail when the manufacturer does not exist instead of creating it")
	deviceTypeCmd.AddCommand(deviceTypeListCmd, deviceTypeAddCmd)
}
