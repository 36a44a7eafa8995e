/*
Copyright 2026 HirayClay. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for tokenscripts.
package list

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/HirayClay/tokenScripts/fs"
	"github.com/HirayClay/tokenScripts/parser"
	"github.com/HirayClay/tokenScripts/walker"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [input]",
	Short: "List the resources a document would generate",
	Long:  `List the resolved resources a design tokens document would generate, without writing any files.`,
	Args:  cobra.ExactArgs(1),
	RunE:  run,
}

func init() {
	Cmd.Flags().String("section", "all", "Section to list: primitives, semantic, dimens, gradients, all")
}

func run(cmd *cobra.Command, args []string) error {
	section, _ := cmd.Flags().GetString("section")

	filesystem := fs.NewOSFileSystem()
	tree, err := parser.ParseFile(filesystem, args[0])
	if err != nil {
		return err
	}

	result, err := walker.Walk(tree)
	if err != nil {
		return err
	}

	all := section == "all"
	if all || section == "primitives" {
		printColorSection("primitive colors (light)", result.LightPrimitives)
		printColorSection("primitive colors (dark)", result.DarkPrimitives)
	}
	if all || section == "semantic" {
		printReferenceSection("semantic colors (light)", result.LightSemantic)
		printReferenceSection("semantic colors (dark)", result.DarkSemantic)
	}
	if all || section == "dimens" {
		printDimenSection(result)
	}
	if all || section == "gradients" {
		printGradientSection(result.Gradients)
	}
	return nil
}

var titler = cases.Title(language.English)

func printHeader(name string) {
	fmt.Printf("\n%s\n", titler.String(name))
}

func printColorSection(name string, set *walker.Set[string]) {
	if set.Len() == 0 {
		return
	}
	printHeader(name)
	set.Each(func(name, value string) bool {
		fmt.Printf("  %s%-40s %s\n", swatch(value), name, value)
		return true
	})
}

func printReferenceSection(name string, set *walker.Set[string]) {
	if set.Len() == 0 {
		return
	}
	printHeader(name)
	set.Each(func(name, value string) bool {
		display := value
		if display[0] != '#' {
			display = "@color/" + display
		}
		fmt.Printf("  %s%-40s %s\n", swatch(value), name, display)
		return true
	})
}

func printDimenSection(result *walker.Result) {
	if result.Dimensions.Len() > 0 {
		printHeader("dimensions")
		result.Dimensions.Each(func(name string, value int) bool {
			fmt.Printf("  %-40s %ddp\n", name, value)
			return true
		})
	}
	if result.SemanticDimensions.Len() > 0 {
		printHeader("semantic dimensions")
		result.SemanticDimensions.Each(func(name, ref string) bool {
			fmt.Printf("  %-40s @dimen/%s\n", name, ref)
			return true
		})
	}
}

func printGradientSection(set *walker.Set[walker.GradientSpec]) {
	if set.Len() == 0 {
		return
	}
	printHeader("gradients")
	set.Each(func(name string, spec walker.GradientSpec) bool {
		fmt.Printf("  %s%-40s %s -> %s (%d deg)\n",
			gradientSwatch(spec), name, spec.StartColor, spec.EndColor, spec.Rotation)
		return true
	})
}

// swatch returns a 24-bit ANSI color block for the given color value, or
// "" when the value is not a parseable color.
func swatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

// gradientSwatch previews a gradient as start, blended midpoint, end.
func gradientSwatch(spec walker.GradientSpec) string {
	start, err1 := colorful.Hex(spec.StartColor)
	end, err2 := colorful.Hex(spec.EndColor)
	if err1 != nil || err2 != nil {
		return ""
	}
	mid := start.BlendRgb(end, 0.5)
	return swatch(spec.StartColor) + swatch(mid.Hex()) + swatch(spec.EndColor)
}
