package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huepick/internal/colour"
	"github.com/jmylchreest/huepick/internal/config"
)

func newParseCmd(root *rootOptions) *cobra.Command {
	var (
		format  string
		preview bool
	)

	cmd := &cobra.Command{
		Use:   "parse <#RRGGBB[AA]|name>",
		Short: "Convert a hex code or colour name back to HSL",
		Long: `Parse a #RRGGBB or #RRGGBBAA hex code, or a CSS colour name, and print its
hue, saturation, lightness and opacity. Without an alpha pair the colour is
fully opaque.

Examples:
  huepick parse '#808080FF'
  huepick parse '#1E90FF80' -f json
  huepick parse dodgerblue -f table`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := colour.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid colour: %w", err)
			}

			m := colour.NewModel()
			m.SetFromRGB(c)
			root.logger.Debug("parsed colour", "input", args[0], "state", m.State().String())

			output, err := formatColour(m, format, preview, root.cfg.PreviewWidth)
			if err != nil {
				return fmt.Errorf("failed to format output: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", config.FormatHSL, "output format (hex, rgba, hsl, json, table)")
	cmd.Flags().BoolVarP(&preview, "preview", "p", false, "show a colour swatch in the terminal")

	return cmd
}
