// netreg - network inventory registry client
//
// A CLI for querying and populating a network-inventory registry over its
// REST API. "add" commands are upserts: they resolve the target's
// prerequisite entities (manufacturer, role, device type, site, device) and
// create any that are missing before creating the target itself.
//
// Connection settings are resolved in precedence order:
//
//	--url/--token flags > NETREG_URL/NETREG_TOKEN (.env supported) >
//	~/.netreg/settings.json
//
// Examples:
//
//	netreg device list
//	netreg device add leaf1-ny --role Leaf --manufacturer Juniper \
//	    --model EX4300-48T --site "New York"
//	netreg interface add xe-0/0/0 --device leaf1-ny --mtu 9100
//	netreg connection add leaf1-ny xe-0/0/48 spine1-ny et-0/0/1
//	netreg apply -f topology.yaml
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/netreg-io/netreg/pkg/registry"
	"github.com/netreg-io/netreg/pkg/settings"
	"github.com/netreg-io/netreg/pkg/util"
)

var (
	flagURL     string
	flagToken   string
	verbose     bool
	jsonOutput  bool
	appSettings *settings.Settings
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "netreg",
	Short:             "Network inventory registry client",
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	Long: `netreg is a client for a network-inventory registry's REST API.

List commands read the inventory; add commands are upserts that create
missing prerequisite entities on the fly.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			if err := util.SetLogLevel("debug"); err != nil {
				return err
			}
		}

		s, err := settings.Load()
		if err != nil {
			util.Warnf("Could not load settings: %v", err)
			s = &settings.Settings{}
		}
		s.FromEnv()
		if flagURL != "" {
			s.URL = flagURL
		}
		if flagToken != "" {
			s.Token = flagToken
		}
		if s.LogLevel != "" && !verbose {
			if err := util.SetLogLevel(s.LogLevel); err != nil {
				return err
			}
		}
		appSettings = s
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagURL, "url", "", "registry API root (e.g. https://netbox.example.net/api)")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "registry API token")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print results as JSON")

	rootCmd.AddCommand(
		manufacturerCmd,
		siteCmd,
		roleCmd,
		deviceTypeCmd,
		deviceCmd,
		interfaceCmd,
		connectionCmd,
		ipCmd,
		applyCmd,
		settingsCmd,
	)
}

// newClient builds a registry client from the resolved settings.
func newClient() (*registry.Client, error) {
	if appSettings == nil || appSettings.URL == "" {
		return nil, fmt.Errorf("no registry URL configured: pass --url, set %s, or run 'netreg settings set url <url>'", settings.EnvURL)
	}
	return registry.New(appSettings.URL, appSettings.Token)
}

// printJSON renders v as indented JSON on stdout.
func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
