package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huepick/internal/colour"
)

func newNamesCmd(root *rootOptions) *cobra.Command {
	var preview bool

	cmd := &cobra.Command{
		Use:   "names [filter]",
		Short: "List CSS colour names",
		Long: `List the CSS colour keywords accepted by --from, parse and the pick session,
with their hex codes. An optional filter keeps names containing it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := ""
			if len(args) == 1 {
				filter = args[0]
			}

			names := colour.Names(filter)
			if len(names) == 0 {
				return fmt.Errorf("no colour names match %q", filter)
			}

			headers := []string{"Name", "Hex"}
			if preview {
				headers = append(headers, "Preview")
			}
			table := NewTable(headers)
			for _, name := range names {
				c, err := colour.LookupName(name)
				if err != nil {
					return err
				}
				row := []string{name, c.Hex()}
				if preview {
					row = []string{colour.ColourString(c, name), c.Hex(), colour.Swatch(c, root.cfg.PreviewWidth)}
				}
				table.AddRow(row)
			}

			fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&preview, "preview", "p", false, "show colour swatches")
	return cmd
}
