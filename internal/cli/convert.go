package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huepick/internal/colour"
)

type convertOptions struct {
	hsl     hslFlags
	format  string
	preview bool
}

func newConvertCmd(root *rootOptions) *cobra.Command {
	o := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert an HSL colour to hex, rgba or JSON",
		Long: `Convert hue, saturation, lightness and opacity into equivalent colour
representations.

Unset channels come from the config file defaults (opaque red unless configured).
Values outside their range are clamped.

Examples:
  # Pure green as #RRGGBBAA
  huepick convert --hue 120

  # Half-transparent sky blue as a CSS rgba() value
  huepick convert --hue 200 -s 80 -l 60 -a 0.5 -f rgba

  # Darken a named colour and show every representation
  huepick convert --from teal -l 20 -f table --preview`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, root)
		},
	}

	o.hsl.register(cmd.Flags())
	cmd.Flags().StringVarP(&o.format, "format", "f", "", "output format (hex, rgba, hsl, json, table) (default from config: hex)")
	cmd.Flags().BoolVarP(&o.preview, "preview", "p", false, "show a colour swatch in the terminal")

	return cmd
}

func (o *convertOptions) run(cmd *cobra.Command, root *rootOptions) error {
	cfg := root.cfg
	format := o.format
	if format == "" {
		format = cfg.Format
	}
	preview := o.preview || (cfg.Preview && !cmd.Flags().Changed("preview"))

	m := colour.NewModel()
	o.hsl.apply(cmd.Flags(), cfg.Defaults, m)
	root.logger.Debug("converting colour", "state", m.State().String(), "format", format)

	output, err := formatColour(m, format, preview, cfg.PreviewWidth)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), output)
	return nil
}
