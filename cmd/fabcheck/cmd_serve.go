package main

import (
	"context"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/fabricops/fabcheck/pkg/check"
	"github.com/fabricops/fabcheck/pkg/notify"
	"github.com/fabricops/fabcheck/pkg/service"
	"github.com/fabricops/fabcheck/pkg/util"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP trigger service",
	Long: `Expose the reachability audit over HTTP. POST /build starts a run,
GET /report returns the rendered report of the last run, and GET /verdict
returns its pass/fail summary as JSON.

When a Redis address is configured the last report is also published
there for other tooling to consume.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := checkConfig()
		if err != nil {
			return err
		}

		srv := service.NewServer(check.NewChecker(cfg, nil))

		if userSettings.RedisAddr != "" {
			store := service.NewRedisStore(userSettings.RedisAddr)
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			err := store.Connect(ctx)
			cancel()
			if err != nil {
				util.Warnf("Redis unavailable, reports will not be published: %v", err)
			} else {
				defer store.Close()
				srv.SetStore(store)
			}
		}

		if userSettings.TelegramToken != "" {
			srv.SetNotifier(notify.NewTelegram(userSettings.TelegramToken, userSettings.TelegramChatID))
		}

		addr := serveAddr
		if addr == "" {
			addr = userSettings.GetListenAddr()
		}
		util.Infof("Listening on %s", addr)
		return http.ListenAndServe(addr, srv.Handler())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "listen", "", "listen address (default from settings)")
}
