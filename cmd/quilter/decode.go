// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/quilter-build/quilter/pkg/vfile"

	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <filename>",
	Short: "Classify a filename against the virtual-file grammar",
	Long: `Decode classifies a filename against the four virtual-file shapes and
prints the decoded parameters. A filename that matches no shape is a
regular file; that is reported as such, with a non-zero exit code so
scripts can branch on it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]
		vf, ok := vfile.Decode(filename)
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), SubtitleStyle.Render("not a virtual file: ")+FilenameStyle.Render(filename))
			return &ExitError{Code: 1}
		}

		params, err := json.MarshalIndent(vf, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding decoded parameters: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render(variantName(vf)))
		fmt.Fprintln(cmd.OutOrStdout(), string(params))
		return nil
	},
}

// variantName returns the user-facing name of a decoded variant.
func variantName(vf vfile.VirtualFile) string {
	switch v := vf.(type) {
	case *vfile.ExternalShim:
		return "external-shim"
	case *vfile.PairedComponent:
		return "paired-component"
	case *vfile.FastbootSwitch:
		return "fastboot-switch"
	case *vfile.ImplicitModules:
		if v.Kind == vfile.ImplicitTest {
			return "implicit-test-modules"
		}
		return "implicit-modules"
	default:
		return "unknown"
	}
}
