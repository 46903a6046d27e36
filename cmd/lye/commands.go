package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/daios-ai/lye"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "lye").
		WithSynopsis("lye [opts] command [opts]").
		WithDescription("lye runs programs written in the Lye lisp.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return lyeMain(cfg, cc, args)
		}).
		WithSubs(
			ReplCommand(cfg),
			RunCommand(cfg),
			EvalCommand(cfg),
			TestCommand(cfg),
			VersionCommand(cfg))
}

func lyeMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		// bare `lye` starts the REPL like the classic binary did
		args = []string{"repl"}
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	return sub.Run(cc, args[1:])
}

func ReplCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReplConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("repl").
		WithAliases("r").
		WithSynopsis("repl [-q]").
		WithDescription("start an interactive session; evaluate `quit` or press Ctrl+D to leave").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return repl(cfg, cc, args)
		})
	cfg.Repl = cmd
	return cmd
}

func RunCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RunConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("run").
		WithSynopsis("run [-p] file [files]").
		WithDescription("run Lye files in one shared environment").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
	cfg.Run = cmd
	return cmd
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("eval").
		WithAliases("e").
		WithSynopsis("eval -e expr | eval expr").
		WithDescription("evaluate one line the way the REPL does and print the result").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return eval(cfg, cc, args)
		})
	cfg.Eval = cmd
	return cmd
}

func TestCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TestConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("test").
		WithAliases("t").
		WithSynopsis("test [-v] [dir|file]...").
		WithDescription("run .lye files and compare their result with their '; expect' comment").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return test(cfg, cc, args)
		})
	cfg.Test = cmd
	return cmd
}

func VersionCommand(mainCfg *MainConfig) *cli.Command {
	return cli.NewCommand("version").
		WithSynopsis("version").
		WithDescription("print the version").
		WithRun(func(cc *cli.Context, args []string) error {
			fmt.Fprintf(cc.Out, "Lye Version %s\n", lye.Version)
			return nil
		})
}
