// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/quilter-build/quilter/internal/issue"

	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain [issue-id]",
	Short: "Explain a failure with remediation steps",
	Long: `Explain renders the guidance for a known failure. Without an argument
it lists every known issue id with its title.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			values := issue.Values()
			sort.Slice(values, func(i, j int) bool { return values[i].Id() < values[j].Id() })
			for _, i := range values {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n",
					SuccessStyle.Render(strconv.Itoa(int(i.Id()))),
					firstHeading(string(i.MarkdownMsg())))
			}
			return nil
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("issue id must be a number: %q", args[0])
		}
		found := issue.Get(issue.Id(id))
		if found == nil {
			return fmt.Errorf("unknown issue id %d", id)
		}

		rendered, err := found.Render("")
		if err != nil {
			return fmt.Errorf("rendering issue %d: %w", id, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), rendered)
		return nil
	},
}

// firstHeading extracts the first markdown heading line as a short title.
func firstHeading(md string) string {
	for _, line := range strings.Split(md, "\n") {
		if after, ok := strings.CutPrefix(line, "# "); ok {
			return after
		}
	}
	return "(untitled)"
}
