package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fabricops/fabcheck/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fabcheck %s\n", version.Info())
	},
}
