package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/daios-ai/lye"
	"github.com/daios-ai/lye/internal/debug"
)

type MainConfig struct {
	ConfigPath string `cli:"name=config desc='path to a YAML config file'"`
	Color      string `cli:"name=color desc='color output: auto, always or never'"`
	Lexical    bool   `cli:"name=lexical desc='use lexical instead of dynamic scoping for lambdas'"`

	// loaded by load()
	File *lye.Config
	Log  *slog.Logger

	Main *cli.Command
}

type ReplConfig struct {
	*MainConfig
	NoBanner bool `cli:"name=q aliases=quiet desc='do not print the banner'"`

	Repl *cli.Command
}

type RunConfig struct {
	*MainConfig
	Print bool `cli:"name=p aliases=print desc='print the result of each file'"`

	Run *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Expr string `cli:"name=e aliases=expr desc='expression to evaluate'"`

	Eval *cli.Command
}

type TestConfig struct {
	*MainConfig
	Verbose bool `cli:"name=v desc='also list passing files'"`

	Test *cli.Command
}

// load reads the config file and applies command line overrides. It is
// called by every subcommand after its own options are parsed.
func (cfg *MainConfig) load(w io.Writer) error {
	cfg.Log = debug.Logger()
	file, err := lye.LoadConfig(cfg.ConfigPath)
	if err != nil {
		return err
	}
	if file.Path != "" {
		cfg.Log.Debug("loaded config", "path", file.Path)
	}
	if cfg.Color != "" {
		switch cfg.Color {
		case lye.ColorAuto, lye.ColorAlways, lye.ColorNever:
			file.Color = cfg.Color
		default:
			return fmt.Errorf("%w: -color must be auto, always or never, got %q", cli.ErrUsage, cfg.Color)
		}
	}
	if cfg.Lexical {
		file.Scoping = lye.Lexical.String()
	}
	cfg.File = file
	setColor(file.Color, w)
	return nil
}

func (cfg *MainConfig) interpreterOpts(w io.Writer) []lye.Option {
	return []lye.Option{
		lye.WithConfig(cfg.File),
		lye.WithOutput(w),
		lye.WithLogger(cfg.Log),
	}
}

func setColor(mode string, w io.Writer) {
	switch mode {
	case lye.ColorAlways:
		color.NoColor = false
	case lye.ColorNever:
		color.NoColor = true
	default:
		f, ok := w.(*os.File)
		color.NoColor = !ok || !isatty.IsTerminal(f.Fd())
	}
}
