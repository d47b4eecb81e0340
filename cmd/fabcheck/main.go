// Fabcheck is a fabric interface reachability checker.
//
// fabcheck audits a switch fabric against its topology documents: every
// device with an identity in the document tree is contacted over SSH, its
// "show interface status" output is parsed, and interfaces that carry no
// policy assignment are compared against their declared enable state.
//
// Usage:
//
//	fabcheck check                  Run the fabric-wide audit
//	fabcheck serve                  Serve the HTTP trigger API
//	fabcheck mirror                 Refresh topology documents from git
//	fabcheck notify <message>       Send a chat message
//	fabcheck settings ...           Manage persistent settings
//	fabcheck version                Show version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fabricops/fabcheck/pkg/settings"
	"github.com/fabricops/fabcheck/pkg/util"
)

var (
	configRoot string
	username   string
	password   string
	verbose    bool

	userSettings *settings.Settings
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "fabcheck",
	Short:             "Fabric interface reachability checker",
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	Long: `Fabcheck verifies that the link state of a switch fabric matches its
topology documents. Devices are discovered from the document tree, contacted
over SSH, and their policy-free interfaces compared against the declared
enable state.

  fabcheck check --root network_configs/node`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			util.SetLogLevel("debug")
		}

		var err error
		userSettings, err = settings.Load()
		if err != nil {
			util.Warnf("Could not load settings: %v", err)
			userSettings = &settings.Settings{}
		}

		if configRoot == "" {
			configRoot = userSettings.GetConfigRoot()
		}
		if username == "" {
			username = userSettings.Username
		}
		if password == "" {
			password = userSettings.Password
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configRoot, "root", "", "topology document tree (default from settings)")
	rootCmd.PersistentFlags().StringVarP(&username, "username", "u", "", "device CLI username")
	rootCmd.PersistentFlags().StringVarP(&password, "password", "p", "", "device CLI password")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		checkCmd,
		serveCmd,
		mirrorCmd,
		notifyCmd,
		settingsCmd,
		versionCmd,
	)
}
