// Package settings manages persistent user settings for the fabcheck CLI.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds persistent user preferences
type Settings struct {
	// ConfigRoot is the topology document tree scanned for devices
	ConfigRoot string `json:"config_root,omitempty"`

	// Username and Password are the device CLI credentials
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`

	// MirrorURL is the git repository holding the topology documents
	MirrorURL string `json:"mirror_url,omitempty"`

	// MirrorBranch is the branch checked out by mirror (default main)
	MirrorBranch string `json:"mirror_branch,omitempty"`

	// MirrorSubdir is the repository subtree copied over the config root
	// (default network_configs)
	MirrorSubdir string `json:"mirror_subdir,omitempty"`

	// ListenAddr is the serve bind address (default :8080)
	ListenAddr string `json:"listen_addr,omitempty"`

	// RedisAddr enables publishing run reports to Redis when set
	RedisAddr string `json:"redis_addr,omitempty"`

	// TelegramToken and TelegramChatID enable chat notifications when set
	TelegramToken  string `json:"telegram_token,omitempty"`
	TelegramChatID string `json:"telegram_chat_id,omitempty"`
}

// DefaultSettingsPath returns the default path for the settings file
func DefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "fabcheck_settings.json"
	}
	return filepath.Join(home, ".fabcheck", "settings.json")
}

// Load reads settings from the default location
func Load() (*Settings, error) {
	return LoadFrom(DefaultSettingsPath())
}

// LoadFrom reads settings from a specific path
func LoadFrom(path string) (*Settings, error) {
	s := &Settings{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty settings if file doesn't exist
			return s, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}

	return s, nil
}

// Save writes settings to the default location
func (s *Settings) Save() error {
	return s.SaveTo(DefaultSettingsPath())
}

// SaveTo writes settings to a specific path
func (s *Settings) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// GetConfigRoot returns the config root (with fallback)
func (s *Settings) GetConfigRoot() string {
	if s.ConfigRoot != "" {
		return s.ConfigRoot
	}
	return filepath.Join("network_configs", "node")
}

// GetMirrorBranch returns the mirror branch (with fallback)
func (s *Settings) GetMirrorBranch() string {
	if s.MirrorBranch != "" {
		return s.MirrorBranch
	}
	return "main"
}

// GetMirrorSubdir returns the mirrored subtree (with fallback)
func (s *Settings) GetMirrorSubdir() string {
	if s.MirrorSubdir != "" {
		return s.MirrorSubdir
	}
	return "network_configs"
}

// GetListenAddr returns the serve bind address (with fallback)
func (s *Settings) GetListenAddr() string {
	if s.ListenAddr != "" {
		return s.ListenAddr
	}
	return ":8080"
}

// Clear resets all settings to defaults
func (s *Settings) Clear() {
	*s = Settings{}
}
