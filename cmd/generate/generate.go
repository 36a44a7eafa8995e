/*
Copyright 2026 HirayClay. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate provides the generate command for tokenscripts.
package generate

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/HirayClay/tokenScripts/config"
	"github.com/HirayClay/tokenScripts/fs"
	"github.com/HirayClay/tokenScripts/internal/logger"
	"github.com/HirayClay/tokenScripts/parser"
	"github.com/HirayClay/tokenScripts/serializer"
	"github.com/HirayClay/tokenScripts/walker"
)

// Cmd is the generate cobra command.
var Cmd = &cobra.Command{
	Use:   "generate [input]",
	Short: "Generate Android resource files from a design tokens document",
	Long: `Generate Android resource files from a Figma design-tokens JSON export.

Produces values/ and values-night/ color and dimension resources plus one
gradient drawable per gradient token.

Examples:
  # Generate into the current directory
  tokenscripts generate design-tokens.tokens.json

  # Generate into an Android res/ directory
  tokenscripts generate -o app/src/main/res design-tokens.tokens.json

  # Input and output from config (.config/tokenscripts.yaml)
  tokenscripts generate`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "", "Output directory (default: current directory)")
	Cmd.Flags().String("prefix", "", "Prefix for generated resource names")
	_ = viper.BindPFlag("prefix", Cmd.Flags().Lookup("prefix"))
}

func run(cmd *cobra.Command, args []string) error {
	filesystem := fs.NewOSFileSystem()

	cfg, err := config.Load(filesystem, ".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg == nil {
		cfg = config.Default()
	}

	input := cfg.Input
	if len(args) > 0 {
		input = args[0]
	}
	input, err = config.ResolveInput(filesystem, ".", input)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = cfg.Output
	}
	if output == "" {
		output = "."
	}

	prefix := viper.GetString("prefix")
	if prefix == "" {
		prefix = cfg.Prefix
	}

	tree, err := parser.ParseFile(filesystem, input)
	if err != nil {
		return err
	}

	result, err := walker.Walk(tree)
	if err != nil {
		return err
	}
	report(result)

	ser := serializer.New(filesystem)
	ser.Prefix = prefix
	if err := ser.Write(result, output); err != nil {
		return err
	}

	logger.Info("Light primitive colors: %d", result.LightPrimitives.Len())
	logger.Info("Dark primitive colors: %d", result.DarkPrimitives.Len())
	logger.Info("Light semantic colors: %d", result.LightSemantic.Len())
	logger.Info("Dark semantic colors: %d", result.DarkSemantic.Len())
	logger.Info("Dimensions: %d", result.Dimensions.Len())
	logger.Info("Gradients: %d", result.Gradients.Len())
	logger.Info("Output directory: %s", output)
	return nil
}

// report relays walk diagnostics to the CLI logger.
func report(result *walker.Result) {
	for _, d := range result.Diagnostics.Entries() {
		if d.Severity == walker.SeverityWarning {
			logger.Warn("%s: %s", d.Code, d.Context)
		} else {
			logger.Info("%s: %s", d.Code, d.Context)
		}
	}
	if n := result.Diagnostics.Collisions(); n > 0 {
		logger.Warn("%d resource name collisions (last write wins)", n)
	}
}
