package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/huepick/internal/colour"
	"github.com/jmylchreest/huepick/internal/session"
)

const pickPrompt = "huepick> "

type pickOptions struct {
	hsl     hslFlags
	output  string
	preview bool
}

func newPickCmd(root *rootOptions) *cobra.Command {
	o := &pickOptions{}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Edit a colour interactively and emit rgba()",
		Long: `Start an editing session. Change hue, saturation, lightness and opacity, or
type a hex code or colour name; the preview, hex field and channel values are
refreshed after every change. 'save' prints the colour as a CSS
rgba(R, G, B, A) value (or writes it to --output) and ends the session.

When stdin is not a terminal, commands are read one per line, previews go to
stderr and only the saved value is written to stdout.

Examples:
  huepick pick
  huepick pick --from '#336699' --preview
  printf 'hue 200\nalpha 0.5\nsave\n' | huepick pick -o colour.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, root)
		},
	}

	o.hsl.register(cmd.Flags())
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "write the saved value to a file (default: stdout)")
	cmd.Flags().BoolVarP(&o.preview, "preview", "p", false, "show a colour swatch in the terminal")

	return cmd
}

func (o *pickOptions) run(cmd *cobra.Command, root *rootOptions) error {
	cfg := root.cfg

	start := colour.NewModel()
	o.hsl.apply(cmd.Flags(), cfg.Defaults, start)
	initial := start.State()

	opts := session.Options{
		Logger:       root.logger,
		Initial:      &initial,
		Preview:      o.preview || (cfg.Preview && !cmd.Flags().Changed("preview")),
		PreviewWidth: cfg.PreviewWidth,
		Quiet:        root.quiet,
	}
	if o.output != "" {
		opts.OnSave = func(value string) error {
			return os.WriteFile(o.output, []byte(value+"\n"), 0o644) // #nosec G306 - colour value, not sensitive
		}
	}

	restore, err := o.attachIO(cmd, &opts)
	if err != nil {
		return err
	}
	res, runErr := session.New(opts).Run(cmd.Context())
	restore()
	if runErr != nil {
		return fmt.Errorf("session failed: %w", runErr)
	}

	if res.Saved && o.output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), res.Value)
	}
	return nil
}

// attachIO wires the session to a raw-mode line editor when stdin is a
// terminal, and to plain line reading otherwise. The returned func restores
// the terminal.
func (o *pickOptions) attachIO(cmd *cobra.Command, opts *session.Options) (func(), error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return nil, fmt.Errorf("failed to enter raw mode: %w", err)
		}
		t := term.NewTerminal(struct {
			io.Reader
			io.Writer
		}{f, cmd.OutOrStdout()}, pickPrompt)
		opts.Input = t
		opts.Output = t
		return func() { _ = term.Restore(fd, oldState) }, nil
	}

	opts.Input = session.NewReader(in)
	opts.Output = cmd.ErrOrStderr()
	return func() {}, nil
}
