// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/quilter-build/quilter/internal/issue"
	"github.com/quilter-build/quilter/internal/render"
	"github.com/quilter-build/quilter/pkg/pkggraph"
	"github.com/quilter-build/quilter/pkg/vfile"

	"github.com/spf13/cobra"
)

var (
	renderGraphRoot string

	renderCmd = &cobra.Command{
		Use:   "render <filename>",
		Short: "Generate the module source for a virtual filename",
		Long: `Render decodes a virtual filename and prints the module source a
resolver would serve for it. Implicit-modules filenames aggregate over
an installed npm tree; point --root at the directory holding the app's
package.json for those.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			renderer, err := render.NewTemplateRenderer()
			if err != nil {
				return fmt.Errorf("loading templates: %w", err)
			}

			var graph pkggraph.Graph
			if renderGraphRoot != "" {
				loaded, err := pkggraph.LoadTree(renderGraphRoot, logger)
				if err != nil {
					return issue.NewErrorContext().
						WithOperation("load dependency graph").
						WithResource(renderGraphRoot).
						WithSuggestion("Check the root directory contains a package.json").
						WithSuggestion("Run 'npm install' if node_modules is missing").
						Wrap(err).
						BuildError()
				}
				graph = loaded
			}

			s := &vfile.Synthesizer{
				Graph:                graph,
				Renderer:             renderer,
				ResolvableExtensions: cfg.ExtensionStrings(),
			}

			src, err := s.SourceFromFilename(filename)
			if err != nil {
				switch {
				case errors.Is(err, vfile.ErrUnrecognizedVirtualFile):
					fmt.Fprintln(cmd.ErrOrStderr(), ErrorStyle.Render("Error: ")+err.Error())
					fmt.Fprintln(cmd.ErrOrStderr(), SubtitleStyle.Render("Run 'quilter explain 1' for the filename grammar."))
					return &ExitError{Code: 1, Err: err}
				case errors.Is(err, vfile.ErrInvalidOwnerPackage):
					fmt.Fprintln(cmd.ErrOrStderr(), ErrorStyle.Render("Error: ")+err.Error())
					fmt.Fprintln(cmd.ErrOrStderr(), SubtitleStyle.Render("Run 'quilter explain 2' for likely causes."))
					return &ExitError{Code: 1, Err: err}
				default:
					return err
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), src)
			return nil
		},
	}
)

func init() {
	renderCmd.Flags().StringVar(&renderGraphRoot, "root", "", "directory holding the app's package.json (needed for implicit-modules filenames)")
}
