/*
Copyright 2026 HirayClay. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tokenscripts.
package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/HirayClay/tokenScripts/cmd/generate"
	"github.com/HirayClay/tokenScripts/cmd/list"
	"github.com/HirayClay/tokenScripts/cmd/version"
	"github.com/HirayClay/tokenScripts/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "tokenscripts",
	Short: "Generate Android resources from design token documents",
	Long:  `tokenscripts converts a Figma design-tokens JSON export into flat Android resource files: day and night color resources, dimensions, and gradient drawables.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
			logger.SetOutput(io.Discard)
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress diagnostic output")

	rootCmd.AddCommand(generate.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
