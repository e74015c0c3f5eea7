package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/netreg-io/netreg/pkg/cli"
)

var manufacturerCmd = &cobra.Command{
	Use:     "manufacturer",
	Aliases: []string{"mfr"},
	Short:   "Manufacturer operations",
}

var manufacturerListName string

var manufacturerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List manufacturers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		mfrs, err := c.Manufacturers(cmd.Context(), manufacturerListName)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(mfrs)
		}

		t := cli.NewTable("ID", "NAME", "SLUG")
		for _, m := range mfrs {
			t.Row(strconv.Itoa(m.ID), m.Name, m.Slug)
		}
		t.Flush()
		return nil
	},
}

var manufacturerAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Ensure a manufacturer exists",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		m, err := c.AddManufacturer(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(m)
		}
		fmt.Printf("manufacturer %s (id %d, slug %s)\n", cli.Bold(m.Name), m.ID, m.Slug)
		return nil
	},
}

func init() {
	manufacturerListCmd.Flags().StringVar(&manufacturerListName, "name", "", "filter by exact name")
	manufacturerCmd.AddCommand(manufacturerListCmd, manufacturerAddCmd)
}
