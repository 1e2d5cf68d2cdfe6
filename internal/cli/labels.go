package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"editorscan/internal/editors"
)

func newLabelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "labels",
		Short: "Print the supported editor labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			labels := editors.Labels()
			if outputJSON {
				return writeJSON(cmd, labels)
			}
			for _, label := range labels {
				fmt.Fprintln(cmd.OutOrStdout(), label)
			}
			return nil
		},
	}
}
