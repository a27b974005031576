// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"

	"github.com/ik5/voxedit"
	"github.com/ik5/voxedit/editor"
	"github.com/ik5/voxedit/internal/cli"
	"github.com/ik5/voxedit/internal/config"
)

var version = "0.1.0"

type versionFlag bool

func (versionFlag) BeforeReset(app *kong.Kong) error {
	cli.PrintVersion(version)
	app.Exit(0)

	return nil
}

// CLI defines the command-line interface
type CLI struct {
	Version versionFlag `short:"v" help:"Show version information"`
	Config  string      `short:"c" type:"path" help:"Path to JSON preset file (optional)"`
	Rate    int         `short:"r" help:"Editing sample rate in Hz, 0 uses the config value"`
	Verbose bool        `help:"Log every applied operation"`

	Info    InfoCmd    `cmd:"" help:"Describe a recording: format, levels, speech segments and waveform"`
	Fx      FxCmd      `cmd:"" help:"Apply effects and edits"`
	Gate    GateCmd    `cmd:"" help:"Attenuate sustained quiet stretches"`
	Compact CompactCmd `cmd:"" help:"Shorten pauses between speech segments"`
	Enhance EnhanceCmd `cmd:"" help:"Normalize, gate and compact in one pass"`
}

// app is what every command runs against.
type app struct {
	cfg  *config.Config
	log  *slog.Logger
	out  io.Writer
	rate int
}

func (a *app) open(path string) (*editor.Session, error) {
	buf, err := voxedit.DecodeFile(path, a.rate)
	if err != nil {
		return nil, err
	}

	s := editor.New(
		editor.WithLogger(a.log.With("file", path)),
		editor.WithHistoryCapacity(a.cfg.HistoryCapacity),
	)
	if err := s.Load(buf); err != nil {
		return nil, err
	}

	return s, nil
}

func (a *app) save(s *editor.Session, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	if err := s.Export(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	buf := s.Buffer()
	a.log.Info("written", "path", path, "duration", buf.Duration().Round(time.Millisecond))

	return nil
}

func run(args []string, stdout, stderr io.Writer) error {
	var c CLI
	parser, err := kong.New(&c,
		kong.Name("voxedit"),
		kong.Description("Speech recording editor and restoration tool"),
		kong.Writers(stdout, stderr),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		var parseErr *kong.ParseError
		if errors.As(err, &parseErr) && parseErr.Context != nil {
			_ = parseErr.Context.PrintUsage(true)
		}
		return err
	}

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))

	a := &app{cfg: cfg, log: logger, out: stdout, rate: cfg.SampleRate}
	if c.Rate > 0 {
		a.rate = c.Rate
	}

	return ctx.Run(a)
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}
