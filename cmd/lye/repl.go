package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/scott-cotton/cli"

	"github.com/daios-ai/lye"
)

const quitSymbol = "quit"

var bannerColor = color.New(color.FgHiCyan).SprintfFunc()

func repl(cfg *ReplConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Repl.Parse(cc, args); err != nil {
		return err
	}
	if err := cfg.load(cc.Out); err != nil {
		return err
	}
	file := cfg.File
	if file.ShowBanner() && !cfg.NoBanner {
		fmt.Fprintln(cc.Out, bannerColor("Lye Version %s", lye.Version))
		fmt.Fprintln(cc.Out, "Press Ctrl+C to cancel a line, Ctrl+D or `quit` to exit.")
		fmt.Fprintln(cc.Out)
	}

	ip := lye.NewInterpreter(cfg.interpreterOpts(cc.Out)...)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetWordCompleter(completer(ip))

	if file.History != "" {
		if f, err := os.Open(file.History); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(file.History); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	for {
		code, ok := readByParseProbe(ln, file.Prompt, file.Continuation)
		if !ok {
			fmt.Fprintln(cc.Out)
			return nil
		}
		if strings.TrimSpace(code) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))

		v, err := ip.EvalSource(code)
		if err != nil {
			fmt.Fprintln(cc.Out, errorColor(err.Error()))
			continue
		}
		if v.Tag == lye.VTSym && v.Symbol() == quitSymbol {
			return nil
		}
		printValue(cc.Out, v)
	}
}

// readByParseProbe keeps reading lines while the accumulated text is an
// incomplete parse. Any other outcome, including a hard parse error, is
// returned for evaluation so the error gets reported.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder
	for {
		p := prompt
		if b.Len() > 0 {
			p = cont
		}
		line, err := ln.Prompt(p)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			// Ctrl+C drops the pending input
			b.Reset()
			continue
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if _, perr := lye.Parse("<repl>", src); lye.IsIncomplete(perr) {
			continue
		}
		return src, true
	}
}

// completer completes the symbol under the cursor from the names bound in
// the interpreter.
func completer(ip *lye.Interpreter) liner.WordCompleter {
	return func(line string, pos int) (string, []string, string) {
		start := pos
		for start > 0 && !isDelim(line[start-1]) {
			start--
		}
		head, word, tail := line[:start], line[start:pos], line[pos:]
		var out []string
		for _, name := range ip.Global.Visible() {
			if strings.HasPrefix(name, word) {
				out = append(out, name)
			}
		}
		return head, out, tail
	}
}

func isDelim(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '(', ')', '{', '}':
		return true
	}
	return false
}
