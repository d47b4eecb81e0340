package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSettings_Defaults(t *testing.T) {
	s := &Settings{}

	if got := s.GetConfigRoot(); got != filepath.Join("network_configs", "node") {
		t.Errorf("GetConfigRoot() default = %q", got)
	}
	if got := s.GetMirrorBranch(); got != "main" {
		t.Errorf("GetMirrorBranch() default = %q, want main", got)
	}
	if got := s.GetMirrorSubdir(); got != "network_configs" {
		t.Errorf("GetMirrorSubdir() default = %q, want network_configs", got)
	}
	if got := s.GetListenAddr(); got != ":8080" {
		t.Errorf("GetListenAddr() default = %q, want :8080", got)
	}
}

func TestSettings_Clear(t *testing.T) {
	s := &Settings{
		ConfigRoot: "/configs",
		Username:   "admin",
		Password:   "secret",
		RedisAddr:  "127.0.0.1:6379",
	}

	s.Clear()

	if s.ConfigRoot != "" || s.Username != "" || s.Password != "" || s.RedisAddr != "" {
		t.Error("Clear() should reset all fields to empty")
	}
}

func TestSettings_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	original := &Settings{
		ConfigRoot:     "/configs/node",
		Username:       "admin",
		MirrorURL:      "https://example.com/configs.git",
		TelegramChatID: "12345",
	}

	if err := original.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}

	if loaded.ConfigRoot != original.ConfigRoot {
		t.Errorf("ConfigRoot = %q, want %q", loaded.ConfigRoot, original.ConfigRoot)
	}
	if loaded.Username != original.Username {
		t.Errorf("Username = %q, want %q", loaded.Username, original.Username)
	}
	if loaded.MirrorURL != original.MirrorURL {
		t.Errorf("MirrorURL = %q, want %q", loaded.MirrorURL, original.MirrorURL)
	}
	if loaded.TelegramChatID != original.TelegramChatID {
		t.Errorf("TelegramChatID = %q, want %q", loaded.TelegramChatID, original.TelegramChatID)
	}
}

func TestSettings_LoadMissingFile(t *testing.T) {
	s, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadFrom(missing) = %v, want empty settings", err)
	}
	if *s != (Settings{}) {
		t.Errorf("LoadFrom(missing) = %+v, want zero value", s)
	}
}

func TestSettings_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom(corrupt) = nil error, want parse error")
	}
}
