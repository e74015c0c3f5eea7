package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/netreg-io/netreg/pkg/cli"
)

var ipCmd = &cobra.Command{
	Use:   "ip",
	Short: "IPAM operations (read-only)",
}

var ipListCmd = &cobra.Command{
	Use:   "list",
	Short: "List IP addresses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		addrs, err := c.IPAddresses(cmd.Context())
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(addrs)
		}

		t := cli.NewTable("ID", "ADDRESS", "FAMILY", "DESCRIPTION")
		for _, a := range addrs {
			t.Row(strconv.Itoa(a.ID), a.Address, strconv.Itoa(a.Family), a.Description)
		}
		t.Flush()
		return nil
	},
}

func init() {
	ipCmd.AddCommand(ipListCmd)
}
