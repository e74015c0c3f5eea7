package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/netreg-io/netreg/pkg/cli"
	"github.com/netreg-io/netreg/pkg/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage persistent settings",
	Long: `Manage persistent settings stored in ~/.netreg/settings.json.

Settings provide defaults for the connection flags:
  - url:       registry API root (--url default)
  - token:     API token (--token default)
  - log_level: default log level

Examples:
  netreg settings show
  netreg settings set url https://netbox.example.net/api
  netreg settings set token        # prompts without echo
  netreg settings clear`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load()
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}

		fmt.Printf("Settings file: %s\n\n", settings.DefaultSettingsPath())

		t := cli.NewTable("SETTING", "VALUE")
		printSetting := func(name, value string) {
			if value == "" {
				value = "(not set)"
			}
			t.Row(name, value)
		}
		printSetting("url", s.URL)
		printSetting("token", maskToken(s.Token))
		printSetting("log_level", s.LogLevel)
		t.Flush()
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <setting> [value]",
	Short: "Set a setting value",
	Long: `Set a persistent setting value.

Available settings:
  url       - Registry API root
  token     - API token; omit the value to be prompted without echo
  log_level - Default log level (debug, info, warn, error)

Examples:
  netreg settings set url https://netbox.example.net/api
  netreg settings set token
  netreg settings set log_level debug`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		setting := args[0]

		s, err := settings.Load()
		if err != nil {
			s = &settings.Settings{}
		}

		switch setting {
		case "url":
			if len(args) != 2 {
				return fmt.Errorf("url requires a value")
			}
			s.URL = strings.TrimRight(args[1], "/")
			fmt.Printf("Registry URL set to: %s\n", s.URL)
		case "token":
			token := ""
			if len(args) == 2 {
				token = args[1]
			} else {
				fmt.Fprint(os.Stderr, "Token: ")
				data, err := term.ReadPassword(int(os.Stdin.Fd()))
				fmt.Fprintln(os.Stderr)
				if err != nil {
					return fmt.Errorf("reading token: %w", err)
				}
				token = strings.TrimSpace(string(data))
			}
			s.Token = token
			fmt.Println("Token updated")
		case "log_level":
			if len(args) != 2 {
				return fmt.Errorf("log_level requires a value")
			}
			s.LogLevel = args[1]
			fmt.Printf("Log level set to: %s\n", s.LogLevel)
		default:
			return fmt.Errorf("unknown setting: %s (valid: url, token, log_level)", setting)
		}

		if err := s.Save(); err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}
		return nil
	},
}

var settingsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear all settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := &settings.Settings{}
		s.Clear()
		if err := s.Save(); err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}
		fmt.Println("Settings cleared")
		return nil
	},
}

// maskToken hides all but the last four characters.
func maskToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(token)-4) + token[len(token)-4:]
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd, settingsClearCmd)
}
