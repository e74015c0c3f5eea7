package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/netreg-io/netreg/pkg/cli"
	"github.com/netreg-io/netreg/pkg/registry"
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Site operations",
}

var (
	siteListName string
	siteListSlug string
)

var siteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sites",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		sites, err := c.Sites(cmd.Context(), registry.SiteFilter{Name: siteListName, Slug: siteListSlug})
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(sites)
		}

		t := cli.NewTable("ID", "NAME", "SLUG")
		for _, s := range sites {
			t.Row(strconv.Itoa(s.ID), s.Name, s.Slug)
		}
		t.Flush()
		return nil
	},
}

var siteAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Ensure a site exists",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		s, err := c.AddSite(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(s)
		}
		fmt.Printf("site %s (id %d, slug %s)\n", cli.Bold(s.Name), s.ID, s.Slug)
		return nil
	},
}

func init() {
	siteListCmd.Flags().StringVar(&siteListName, "name", "", "filter by exact name")
	siteListCmd.Flags().StringVar(&siteListSlug, "slug", "", "filter by slug")
	siteCmd.AddCommand(siteListCmd, siteAddCmd)
}
