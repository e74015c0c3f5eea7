package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/netreg-io/netreg/pkg/cli"
	"github.com/netreg-io/netreg/pkg/manifest"
)

var applyFile string

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply a declarative inventory manifest",
	Long: `Apply a YAML manifest of sites, hardware, devices, interfaces and
connections against the registry.

Entities that already exist are left untouched, so re-applying a manifest
is safe. A failure aborts the run; entities created before the failure
stay created and a re-run resumes where it left off.

Example manifest:

  sites:
    - name: New York
  devices:
    - name: leaf1-ny
      role: Leaf
      manufacturer: Juniper
      model: EX4300-48T
      site: New York
      interfaces:
        - name: xe-0/0/0
          mtu: 9100
  connections:
    - device_a: leaf1-ny
      interface_a: xe-0/0/48
      device_b: spine1-ny
      interface_b: et-0/0/1`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}

		m, err := manifest.Load(applyFile)
		if err != nil {
			return err
		}

		sum, err := manifest.Apply(cmd.Context(), c, m)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(sum)
		}

		kinds := make([]string, 0, len(sum.Created)+len(sum.Skipped))
		seen := map[string]bool{}
		for k := range sum.Created {
			kinds = append(kinds, k)
			seen[k] = true
		}
		for k := range sum.Skipped {
			if !seen[k] {
				kinds = append(kinds, k)
			}
		}
		sort.Strings(kinds)

		t := cli.NewTable("KIND", "CREATED", "EXISTING")
		for _, k := range kinds {
			t.Row(k, fmt.Sprint(sum.Created[k]), fmt.Sprint(sum.Skipped[k]))
		}
		t.Flush()

		if sum.Total() == 0 {
			fmt.Println(cli.Dim("nothing to do"))
		} else {
			fmt.Printf("%s %d entities created\n", cli.Green("applied:"), sum.Total())
		}
		return nil
	},
}

func init() {
	applyCmd.Flags().StringVarP(&applyFile, "file", "f", "", "manifest file (required)")
	applyCmd.MarkFlagRequired("file")
}
