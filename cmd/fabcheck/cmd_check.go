package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fabricops/fabcheck/pkg/check"
	"github.com/fabricops/fabcheck/pkg/history"
	"github.com/fabricops/fabcheck/pkg/notify"
	"github.com/fabricops/fabcheck/pkg/remote"
	"github.com/fabricops/fabcheck/pkg/util"
)

var checkNotify bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the fabric-wide interface reachability audit",
	Long: `Discover every device in the topology document tree, connect to each
over SSH, and compare the link status of policy-free interfaces against
their declared enable state.

The command exits 0 when every device is reachable and every audited
interface matches, 1 otherwise.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := checkConfig()
		if err != nil {
			return err
		}

		report, err := check.NewChecker(cfg, nil).Run(context.Background())
		if err != nil {
			return err
		}

		check.Render(os.Stdout, report)

		if err := history.NewLog(history.DefaultPath()).Append(history.FromReport(report)); err != nil {
			util.Warnf("Recording run history: %v", err)
		}

		if checkNotify && userSettings.TelegramToken != "" {
			tg := notify.NewTelegram(userSettings.TelegramToken, userSettings.TelegramChatID)
			if err := tg.Send(cmd.Context(), check.Summary(report)); err != nil {
				util.Warnf("Sending notification: %v", err)
			}
		}

		if !report.Passed {
			// Distinct from usage errors: the audit ran and failed.
			os.Exit(1)
		}
		return nil
	},
}

// checkConfig assembles the run configuration from flags and settings,
// prompting for a password when none was supplied and stdin is a terminal.
func checkConfig() (check.Config, error) {
	if username == "" {
		return check.Config{}, fmt.Errorf("%w: device username not set (use -u or 'fabcheck settings set username')", util.ErrInvalidConfig)
	}
	if password == "" {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return check.Config{}, fmt.Errorf("%w: device password not set", util.ErrInvalidConfig)
		}
		fmt.Fprintf(os.Stderr, "Password for %s: ", username)
		pw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return check.Config{}, fmt.Errorf("reading password: %w", err)
		}
		password = string(pw)
	}

	return check.Config{
		ConfigRoot: configRoot,
		Session: remote.Config{
			Username: username,
			Password: password,
		},
	}, nil
}

func init() {
	checkCmd.Flags().BoolVar(&checkNotify, "notify", false, "send the run summary to the configured chat")
}
