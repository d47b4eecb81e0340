package mirror

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fabricops/fabcheck/pkg/util"
)

func TestReplaceTree(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()

	// Stale content that must disappear.
	if err := os.WriteFile(filepath.Join(dst, "stale.yaml"), []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := os.MkdirAll(filepath.Join(src, "node", "ny"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "node", "ny", "leaf1.yaml"), []byte("hostname: leaf1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := ReplaceTree(src, dst); err != nil {
		t.Fatalf("ReplaceTree() = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dst, "stale.yaml")); !os.IsNotExist(err) {
		t.Error("stale file survived the replace")
	}
	data, err := os.ReadFile(filepath.Join(dst, "node", "ny", "leaf1.yaml"))
	if err != nil {
		t.Fatalf("copied file missing: %v", err)
	}
	if string(data) != "hostname: leaf1\n" {
		t.Errorf("copied content = %q", data)
	}
}

func TestSync_RequiresRepoURL(t *testing.T) {
	m := &Mirror{Branch: "main", Subdir: "network_configs"}
	if err := m.Sync(context.Background()); err == nil {
		t.Error("Sync() without RepoURL = nil error")
	}
}

func TestSync_RequiresSubdir(t *testing.T) {
	// An unset subtree would make src the clone root and copy .git over Dest.
	m := &Mirror{RepoURL: "git@git.example.com:netops/configs.git", Branch: "main"}
	if err := m.Sync(context.Background()); err == nil {
		t.Error("Sync() without Subdir = nil error")
	}
	if !errors.Is(m.Sync(context.Background()), util.ErrInvalidConfig) {
		t.Error("Sync() without Subdir not tagged ErrInvalidConfig")
	}
}
