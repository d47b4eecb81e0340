package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fabricops/fabcheck/pkg/notify"
	"github.com/fabricops/fabcheck/pkg/util"
)

var notifyCmd = &cobra.Command{
	Use:   "notify <message>...",
	Short: "Send a message to the configured chat",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if userSettings.TelegramToken == "" {
			return fmt.Errorf("%w: telegram token not set (use 'fabcheck settings set telegram_token')", util.ErrInvalidConfig)
		}
		tg := notify.NewTelegram(userSettings.TelegramToken, userSettings.TelegramChatID)
		return tg.Send(cmd.Context(), strings.Join(args, " "))
	},
}
