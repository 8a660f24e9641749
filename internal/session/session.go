// Package session implements the interactive colour editing session that
// drives a colour.Model from typed commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/huepick/internal/colour"
)

// LineReader yields one line of user input at a time. It returns io.EOF when
// input ends. *term.Terminal satisfies it.
type LineReader interface {
	ReadLine() (string, error)
}

// SaveFunc receives the final rgba(...) string when the user saves.
type SaveFunc func(value string) error

// Options configure a Session.
type Options struct {
	Input  LineReader
	Output io.Writer
	Logger hclog.Logger

	// Initial is the starting colour; zero value means colour.DefaultState.
	Initial *colour.HSLA
	// OnSave is called with the rgba(...) string before the session ends.
	// A failing OnSave keeps the session open.
	OnSave SaveFunc

	Preview      bool
	PreviewWidth int
	Quiet        bool
}

// Result describes how a session ended.
type Result struct {
	Saved bool
	// Value is the rgba(...) string emitted on save.
	Value string
	State colour.HSLA
}

// Session owns one colour.Model for the duration of an edit.
type Session struct {
	opts  Options
	model *colour.Model
	log   hclog.Logger
	done  bool
	res   Result
}

// ErrUnknownCommand is reported for input that is not a session command.
var ErrUnknownCommand = errors.New("unknown command")

// New creates a session. The preview line is rendered after every change to
// the model, so slider values and the hex field always reflect each other.
func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if opts.Output == nil {
		opts.Output = io.Discard
	}

	s := &Session{
		opts:  opts,
		model: colour.NewModel(),
		log:   logger.Named("session"),
	}
	if opts.Initial != nil {
		s.model.Set(*opts.Initial)
	}
	s.model.OnChange(s.render)
	return s
}

// Run reads commands until the user saves, cancels, input ends or ctx is done.
// Each ReadLine runs in its own goroutine so a cancelled ctx ends the session
// even while input is blocked; that pending read is abandoned, not interrupted.
// In raw terminal mode SIGINT is never raised: *term.Terminal reports Ctrl-C,
// and Ctrl-D on an empty line, as io.EOF, which ends the session unsaved.
func (s *Session) Run(ctx context.Context) (Result, error) {
	if !s.opts.Quiet {
		s.printf("Editing colour. Type 'help' for commands.\n")
	}
	s.render(s.model.State())

	for !s.done {
		if err := ctx.Err(); err != nil {
			return s.result(), err
		}

		line, err := s.readLine(ctx)
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			s.log.Debug("session interrupted while waiting for input")
			return s.result(), err
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debug("input closed, ending session without saving")
				return s.result(), nil
			}
			return s.result(), fmt.Errorf("failed to read input: %w", err)
		}

		if err := s.Exec(line); err != nil {
			s.log.Debug("command failed", "input", line, "error", err)
			s.printf("error: %v\n", err)
		}
	}
	return s.result(), nil
}

type readResult struct {
	line string
	err  error
}

// readLine waits for the next input line or for ctx to be done.
func (s *Session) readLine(ctx context.Context) (string, error) {
	ch := make(chan readResult, 1)
	go func() {
		line, err := s.opts.Input.ReadLine()
		ch <- readResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.line, r.err
	}
}

// Exec applies a single command line.
func (s *Session) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	cmd := strings.ToLower(fields[0])
	args := fields[1:]
	if strings.HasPrefix(cmd, "#") {
		cmd, args = "hex", fields
	}

	s.log.Debug("applying command", "command", cmd, "args", args)

	switch cmd {
	case "h", "hue":
		return s.setNumber(args, "hue", s.model.SetHue)
	case "s", "sat", "saturation":
		return s.setNumber(args, "saturation", s.model.SetSaturation)
	case "l", "light", "lightness":
		return s.setNumber(args, "lightness", s.model.SetLightness)
	case "a", "alpha", "opacity":
		return s.setNumber(args, "opacity", s.model.SetOpacity)
	case "hex":
		if len(args) != 1 {
			return errors.New("usage: hex #RRGGBB[AA]")
		}
		return s.model.SetFromHex(args[0])
	case "name":
		if len(args) == 0 {
			return errors.New("usage: name <css colour name>")
		}
		return s.model.SetFromName(strings.Join(args, ""))
	case "show":
		s.render(s.model.State())
		return nil
	case "save":
		return s.save()
	case "cancel", "quit", "exit", "q":
		s.log.Debug("session cancelled")
		s.done = true
		return nil
	case "help", "?":
		s.printf("%s", helpText)
		return nil
	default:
		return fmt.Errorf("%w: %q (type 'help')", ErrUnknownCommand, fields[0])
	}
}

func (s *Session) setNumber(args []string, field string, set func(float64)) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: %s <number>", field)
	}
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", field, args[0], err)
	}
	set(v)
	return nil
}

func (s *Session) save() error {
	value := s.model.RGB().String()
	if s.opts.OnSave != nil {
		if err := s.opts.OnSave(value); err != nil {
			return fmt.Errorf("failed to save colour: %w", err)
		}
	}

	s.log.Info("colour saved", "value", value)
	if !s.opts.Quiet {
		s.printf("Colour saved: %s\n", value)
	}
	s.res.Saved = true
	s.res.Value = value
	s.done = true
	return nil
}

func (s *Session) result() Result {
	s.res.State = s.model.State()
	return s.res
}

// render writes the preview line: swatch, hex field and slider values.
func (s *Session) render(c colour.HSLA) {
	rgb := c.RGB()
	line := fmt.Sprintf("%s  H %3s  S %3s%%  L %3s%%  A %s",
		rgb.Hex(), colour.FormatNumber(c.H), colour.FormatNumber(c.S), colour.FormatNumber(c.L), colour.FormatNumber(c.A))
	if s.opts.Preview {
		label := rgb.Hex()[:7]
		line = colour.SwatchWithText(rgb, label, max(s.opts.PreviewWidth, len(label)+2)) + " " + line
	}
	s.printf("%s\n", line)
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.opts.Output, format, args...)
}

const helpText = `Commands:
  hue <0-360>          set hue in degrees
  sat <0-100>          set saturation percent
  light <0-100>        set lightness percent
  alpha <0-1>          set opacity
  hex #RRGGBB[AA]      set from hex (a bare #RRGGBB[AA] also works)
  name <colour>        set from a CSS colour name
  show                 print the current colour
  save                 emit rgba(...) and finish
  cancel               finish without saving
`
