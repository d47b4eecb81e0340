package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fabricops/fabcheck/pkg/mirror"
	"github.com/fabricops/fabcheck/pkg/util"
)

var (
	mirrorURL    string
	mirrorBranch string
	mirrorSubdir string
)

var mirrorCmd = &cobra.Command{
	Use:   "mirror",
	Short: "Refresh the local topology documents from the git origin",
	Long: `Clone or update the topology document repository and replace the
local document tree with its contents. The repository URL and branch
default to the stored settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		url := mirrorURL
		if url == "" {
			url = userSettings.MirrorURL
		}
		if url == "" {
			return fmt.Errorf("%w: mirror url not set (use --url or 'fabcheck settings set mirror_url')", util.ErrInvalidConfig)
		}
		branch := mirrorBranch
		if branch == "" {
			branch = userSettings.GetMirrorBranch()
		}
		subdir := mirrorSubdir
		if subdir == "" {
			subdir = userSettings.GetMirrorSubdir()
		}

		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		m := &mirror.Mirror{
			RepoURL: url,
			Branch:  branch,
			WorkDir: filepath.Join(home, ".fabcheck", "mirror"),
			Subdir:  subdir,
			Dest:    configRoot,
		}
		if err := m.Sync(cmd.Context()); err != nil {
			return err
		}
		util.Infof("Mirrored %s (%s) into %s", url, branch, configRoot)
		return nil
	},
}

func init() {
	mirrorCmd.Flags().StringVar(&mirrorURL, "url", "", "git repository url")
	mirrorCmd.Flags().StringVar(&mirrorBranch, "branch", "", "git branch (default from settings)")
	mirrorCmd.Flags().StringVar(&mirrorSubdir, "subdir", "", "repository subtree holding the documents (default from settings)")
}
