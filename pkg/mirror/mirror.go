// Package mirror refreshes the local topology documents from their git
// source of truth.
package mirror

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/fabricops/fabcheck/pkg/util"
)

// Mirror clones or updates a git repository and copies its configuration
// subtree over the local config root.
type Mirror struct {
	RepoURL string
	Branch  string
	WorkDir string // local clone location
	Subdir  string // subtree of the repo to copy, e.g. "network_configs"
	Dest    string // local destination replaced on each sync
}

// Sync brings WorkDir up to date with the remote branch and replaces Dest
// with the repo's Subdir.
func (m *Mirror) Sync(ctx context.Context) error {
	if m.RepoURL == "" {
		return fmt.Errorf("mirror: %w: repository URL not set", util.ErrInvalidConfig)
	}
	// An empty subtree would copy the whole clone, .git included, over Dest.
	if m.Subdir == "" {
		return fmt.Errorf("mirror: %w: repository subtree not set", util.ErrInvalidConfig)
	}

	if _, err := os.Stat(filepath.Join(m.WorkDir, ".git")); err == nil {
		util.Infof("Updating %s from %s", m.WorkDir, m.RepoURL)
		if err := m.git(ctx, "-C", m.WorkDir, "fetch", "origin", m.Branch); err != nil {
			return err
		}
		if err := m.git(ctx, "-C", m.WorkDir, "checkout", m.Branch); err != nil {
			return err
		}
		if err := m.git(ctx, "-C", m.WorkDir, "reset", "--hard", "origin/"+m.Branch); err != nil {
			return err
		}
	} else {
		util.Infof("Cloning %s into %s", m.RepoURL, m.WorkDir)
		if err := m.git(ctx, "clone", "--branch", m.Branch, m.RepoURL, m.WorkDir); err != nil {
			return err
		}
	}

	src := filepath.Join(m.WorkDir, m.Subdir)
	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("mirror: subtree %s: %w", m.Subdir, err)
	}

	util.Infof("Replacing %s with %s", m.Dest, src)
	return ReplaceTree(src, m.Dest)
}

// git runs one git command, surfacing stderr in the error.
func (m *Mirror) git(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, "git", args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git %v: %w: %s", args, err, bytes.TrimSpace(stderr.Bytes()))
	}
	return nil
}

// ReplaceTree removes dst and recreates it as a copy of src.
func ReplaceTree(src, dst string) error {
	if err := os.RemoveAll(dst); err != nil {
		return fmt.Errorf("removing %s: %w", dst, err)
	}
	return copyTree(src, dst)
}

func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if entry.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
