package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/daios-ai/lye"
	"github.com/daios-ai/lye/internal/golden"
)

// errFailed makes the process exit non-zero after the failure has already
// been reported.
var errFailed = errors.New("failed")

func run(cfg *RunConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Run.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: run needs at least one file", cli.ErrUsage)
	}
	if err := cfg.load(cc.Out); err != nil {
		return err
	}
	ip := lye.NewInterpreter(cfg.interpreterOpts(cc.Out)...)
	for _, file := range args {
		cfg.Log.Debug("run file", "path", file)
		v, err := ip.RunFile(file)
		if err != nil {
			return err
		}
		if v.IsError() {
			printValue(cc.Out, v)
			return errFailed
		}
		if cfg.Print {
			printValue(cc.Out, v)
		}
	}
	return nil
}

func eval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	src := cfg.Expr
	if src == "" {
		src = strings.Join(args, " ")
	}
	if strings.TrimSpace(src) == "" {
		return fmt.Errorf("%w: nothing to evaluate", cli.ErrUsage)
	}
	if err := cfg.load(cc.Out); err != nil {
		return err
	}
	ip := lye.NewInterpreter(cfg.interpreterOpts(cc.Out)...)
	v, err := ip.EvalSource(src)
	if err != nil {
		return err
	}
	printValue(cc.Out, v)
	if v.IsError() {
		return errFailed
	}
	return nil
}

func test(cfg *TestConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Test.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"."}
	}
	if err := cfg.load(cc.Out); err != nil {
		return err
	}
	var paths []string
	for _, a := range args {
		ps, err := golden.Discover(a)
		if err != nil {
			return err
		}
		paths = append(paths, ps...)
	}
	results := golden.RunAll(paths, lye.WithConfig(cfg.File), lye.WithLogger(cfg.Log))
	if golden.Report(cc.Out, results, cfg.Verbose) > 0 {
		return errFailed
	}
	return nil
}

var (
	errorColor = color.New(color.FgRed).SprintFunc()
	valueColor = color.New(color.FgHiBlue).SprintFunc()
)

func printValue(w io.Writer, v lye.Value) {
	s := lye.FormatValue(v)
	if v.IsError() {
		fmt.Fprintln(w, errorColor(s))
		return
	}
	fmt.Fprintln(w, valueColor(s))
}
