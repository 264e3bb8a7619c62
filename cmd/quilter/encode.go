// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/quilter-build/quilter/pkg/vfile"

	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Build virtual filenames from their parameters",
	Long: `Encode builds a virtual filename for each of the four shapes. The
resulting filename is self-describing: 'quilter decode' recovers the
parameters from the string alone.`,
}

var encodeExternalCmd = &cobra.Command{
	Use:   "external <module-name>",
	Short: "Encode an external-shim filename",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), vfile.EncodeExternal(args[0]))
		return nil
	},
}

var encodePairCmd = &cobra.Command{
	Use:   "pair <hbs-module> [js-module]",
	Short: "Encode a paired-component filename",
	Long: `Encode a filename combining a template module with its companion
behavior module. Omit the behavior module for a template-only
component.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsModule := ""
		if len(args) == 2 {
			jsModule = args[1]
		}
		fmt.Fprintln(cmd.OutOrStdout(), vfile.EncodePairedComponent(args[0], jsModule))
		return nil
	},
}

var (
	fastbootFromFile string
	fastbootNames    []string

	encodeFastbootCmd = &cobra.Command{
		Use:   "fastboot <specifier>",
		Short: "Encode a fastboot-switch filename",
		Long: `Encode a filename that re-exports bindings from one of two sibling
modules chosen by the fastboot environment flag. The specifier is
resolved against the directory of --from. Pass the literal name
"default" in --names to re-export the default export.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(fastbootFromFile) == "" {
				return fmt.Errorf("--from is required")
			}
			fmt.Fprintln(cmd.OutOrStdout(), vfile.EncodeFastbootSwitch(args[0], fastbootFromFile, fastbootNames))
			return nil
		},
	}
)

var (
	implicitTestKind bool

	encodeImplicitCmd = &cobra.Command{
		Use:   "implicit <from-file>",
		Short: "Encode an implicit-modules filename",
		Long: `Encode a filename aggregating the implicit modules declared by the
dependencies of the package owning the given file. Pass --test for
the test-suite flavor.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := vfile.ImplicitRuntime
			if implicitTestKind {
				kind = vfile.ImplicitTest
			}
			fmt.Fprintln(cmd.OutOrStdout(), vfile.ImplicitModulesFilename(args[0], kind))
			return nil
		},
	}
)

func init() {
	encodeFastbootCmd.Flags().StringVar(&fastbootFromFile, "from", "", "file the specifier is resolved against (required)")
	encodeFastbootCmd.Flags().StringSliceVar(&fastbootNames, "names", nil, "named bindings to re-export (\"default\" for the default export)")

	encodeImplicitCmd.Flags().BoolVar(&implicitTestKind, "test", false, "aggregate implicit-test-modules instead of implicit-modules")

	encodeCmd.AddCommand(encodeExternalCmd)
	encodeCmd.AddCommand(encodePairCmd)
	encodeCmd.AddCommand(encodeFastbootCmd)
	encodeCmd.AddCommand(encodeImplicitCmd)
}
