package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/netreg-io/netreg/pkg/cli"
	"github.com/netreg-io/netreg/pkg/registry"
)

var roleCmd = &cobra.Command{
	Use:   "role",
	Short: "Device role operations",
}

var (
	roleListName string
	roleListSlug string
	roleColor    string
	roleVM       bool
)

var roleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List device roles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		roles, err := c.DeviceRoles(cmd.Context(), registry.RoleFilter{Name: roleListName, Slug: roleListSlug})
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(roles)
		}

		t := cli.NewTable("ID", "NAME", "SLUG", "COLOR", "VM")
		for _, r := range roles {
			t.Row(strconv.Itoa(r.ID), r.Name, r.Slug, r.Color, strconv.FormatBool(r.VMRole))
		}
		t.Flush()
		return nil
	},
}

var roleAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a device role",
	Long: `Create a device role.

Unlike the other add commands this issues a plain create: a role that
already exists is the registry's conflict to report.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		r, err := c.AddDeviceRole(cmd.Context(), args[0], roleColor, roleVM)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(r)
		}
		fmt.Printf("device role %s (id %d, color %s)\n", cli.Bold(r.Name), r.ID, r.Color)
		return nil
	},
}

func init() {
	roleListCmd.Flags().StringVar(&roleListName, "name", "", "filter by exact name")
	roleListCmd.Flags().StringVar(&roleListSlug, "slug", "", "filter by slug")
	roleAddCmd.Flags().StringVar(&roleColor, "color", "", "hex color (default "+registry.DefaultRoleColor+")")
	roleAddCmd.Flags().BoolVar(&roleVM, "vm-role", false, "role applies to virtual machines")
	roleCmd.AddCommand(roleListCmd, roleAddCmd)
}
