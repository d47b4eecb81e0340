package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fabricops/fabcheck/pkg/cli"
	"github.com/fabricops/fabcheck/pkg/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage persistent settings",
	Long: `Manage persistent settings stored in ~/.fabcheck/settings.json.

Settings provide defaults for context flags and service wiring:
  - config_root: Topology document tree (--root default)
  - username:    Device CLI username (-u default)

Examples:
  fabcheck settings show
  fabcheck settings set config_root /srv/network_configs/node
  fabcheck settings set username admin
  fabcheck settings clear`,
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

		printSetting("config_root", s.ConfigRoot)
		printSetting("username", s.Username)
		printSetting("password", maskSecret(s.Password))
		printSetting("mirror_url", s.MirrorURL)
		printSetting("mirror_branch", s.MirrorBranch)
		printSetting("mirror_subdir", s.MirrorSubdir)
		printSetting("listen_addr", s.ListenAddr)
		printSetting("redis_addr", s.RedisAddr)
		printSetting("telegram_token", maskSecret(s.TelegramToken))
		printSetting("telegram_chat_id", s.TelegramChatID)

		t.Flush()
		return nil
	},
}

func maskSecret(v string) string {
	if v == "" {
		return ""
	}
	return "********"
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <setting> <value>",
	Short: "Set a setting value",
	Long: `Set a persistent setting value.

Available settings:
  config_root      - Topology document tree (--root flag default)
  username         - Device CLI username (-u flag default)
  password         - Device CLI password (stored in plain text, mode 0600)
  mirror_url       - Git repository holding the topology documents
  mirror_branch    - Branch checked out by mirror
  mirror_subdir    - Repository subtree copied over the config root
  listen_addr      - Bind address for serve
  redis_addr       - Redis address for publishing run reports
  telegram_token   - Bot token for chat notifications
  telegram_chat_id - Chat to notify

Examples:
  fabcheck settings set config_root /srv/network_configs/node
  fabcheck settings set mirror_url git@git.example.com:netops/configs.git`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		setting := args[0]
		value := args[1]

		s, err := settings.Load()
		if err != nil {
			s = &settings.Settings{}
		}

		switch setting {
		case "config_root", "root":
			s.ConfigRoot = value
			fmt.Printf("Config root set to: %s\n", value)
		case "username":
			s.Username = value
			fmt.Printf("Username set to: %s\n", value)
		case "password":
			s.Password = value
			fmt.Println("Password updated.")
		case "mirror_url":
			s.MirrorURL = value
			fmt.Printf("Mirror URL set to: %s\n", value)
		case "mirror_branch":
			s.MirrorBranch = value
			fmt.Printf("Mirror branch set to: %s\n", value)
		case "mirror_subdir":
			s.MirrorSubdir = value
			fmt.Printf("Mirror subtree set to: %s\n", value)
		case "listen_addr":
			s.ListenAddr = value
			fmt.Printf("Listen address set to: %s\n", value)
		case "redis_addr":
			s.RedisAddr = value
			fmt.Printf("Redis address set to: %s\n", value)
		case "telegram_token":
			s.TelegramToken = value
			fmt.Println("Telegram token updated.")
		case "telegram_chat_id":
			s.TelegramChatID = value
			fmt.Printf("Telegram chat set to: %s\n", value)
		default:
			return fmt.Errorf("unknown setting: %s (see 'fabcheck settings set --help')", setting)
		}

		if err := s.Save(); err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}

		return nil
	},
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <setting>",
	Short: "Get a setting value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setting := args[0]

		s, err := settings.Load()
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}

		var value string
		switch setting {
		case "config_root", "root":
			value = s.ConfigRoot
		case "username":
			value = s.Username
		case "mirror_url":
			value = s.MirrorURL
		case "mirror_branch":
			value = s.MirrorBranch
		case "mirror_subdir":
			value = s.MirrorSubdir
		case "listen_addr":
			value = s.ListenAddr
		case "redis_addr":
			value = s.RedisAddr
		case "telegram_chat_id":
			value = s.TelegramChatID
		default:
			return fmt.Errorf("unknown setting: %s (see 'fabcheck settings set --help')", setting)
		}

		if value == "" {
			fmt.Println("(not set)")
		} else {
			fmt.Println(value)
		}
		return nil
	},
}

var settingsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear all settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := &settings.Settings{}
		if err := s.Save(); err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}
		fmt.Println("All settings cleared.")
		return nil
	},
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show settings file path",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(settings.DefaultSettingsPath())
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsClearCmd)
	settingsCmd.AddCommand(settingsPathCmd)
}
