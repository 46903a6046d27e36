// Package golden runs .lye files that declare their expected result in a
// comment:
//
//	; expect 6
//	(def {x} 3)
//	(+ x x x)
//
// Each file is evaluated in a fresh interpreter in file mode and the printed
// form of the final result is compared with the text after "; expect".
package golden

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/daios-ai/lye"
)

// Ext is the file extension of golden files.
const Ext = ".lye"

// ErrNoExpect is returned for files without an "; expect" comment.
var ErrNoExpect = errors.New("no '; expect' comment")

// Result is the outcome of one golden file.
type Result struct {
	Path string
	Want string
	Got  string
	Err  error
}

// Passed reports whether the file ran and printed the expected value.
func (r *Result) Passed() bool {
	return r.Err == nil && r.Got == r.Want
}

// Discover returns the .lye files under root, sorted. root may also name a
// single file.
func Discover(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}
	var paths []string
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(p) == Ext {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking %s: %w", root, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// Expect returns the expected value declared by the first comment of the
// form "; expect VALUE" in src.
func Expect(src string) (string, bool) {
	for _, line := range strings.Split(src, "\n") {
		i := strings.IndexByte(line, ';')
		if i < 0 {
			continue
		}
		rest := strings.TrimLeft(line[i:], "; \t")
		word, val, ok := strings.Cut(rest, " ")
		if !ok || word != "expect" {
			continue
		}
		return strings.TrimSpace(val), true
	}
	return "", false
}

// RunFile evaluates one golden file. print-env output is discarded.
func RunFile(path string, opts ...lye.Option) *Result {
	r := &Result{Path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		r.Err = err
		return r
	}
	return runSource(r, string(data), opts)
}

// RunSource evaluates src as if it were the golden file name.
func RunSource(name, src string, opts ...lye.Option) *Result {
	return runSource(&Result{Path: name}, src, opts)
}

func runSource(r *Result, src string, opts []lye.Option) *Result {
	want, ok := Expect(src)
	if !ok {
		r.Err = ErrNoExpect
		return r
	}
	r.Want = want

	opts = append([]lye.Option{lye.WithOutput(io.Discard)}, opts...)
	ip := lye.NewInterpreter(opts...)
	v, err := ip.RunSource(r.Path, src)
	if err != nil {
		r.Err = err
		return r
	}
	r.Got = lye.FormatValue(v)
	return r
}

// RunAll runs every file in paths in order.
func RunAll(paths []string, opts ...lye.Option) []*Result {
	res := make([]*Result, 0, len(paths))
	for _, p := range paths {
		res = append(res, RunFile(p, opts...))
	}
	return res
}

// Diff renders the character diff from want to got: deletions in red,
// insertions in green. Colors follow color.NoColor.
func Diff(want, got string) string {
	del := color.New(color.FgRed, color.CrossedOut).SprintFunc()
	ins := color.New(color.FgGreen, color.Underline).SprintFunc()

	dmp := diffpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(want, got, false))
	var b strings.Builder
	for i := range diffs {
		d := &diffs[i]
		switch d.Type {
		case diffpatch.DiffDelete:
			b.WriteString(del(d.Text))
		case diffpatch.DiffInsert:
			b.WriteString(ins(d.Text))
		case diffpatch.DiffEqual:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

// Report writes one line per failing result (and per passing one when
// verbose is set) followed by a summary. It returns the number of failures.
func Report(w io.Writer, results []*Result, verbose bool) int {
	pass := color.New(color.FgGreen).SprintFunc()
	fail := color.New(color.FgRed, color.Bold).SprintFunc()

	failed := 0
	for _, r := range results {
		switch {
		case r.Err != nil:
			failed++
			fmt.Fprintf(w, "%s %s: %v\n", fail("FAIL"), r.Path, r.Err)
		case !r.Passed():
			failed++
			fmt.Fprintf(w, "%s %s: expected %s but got %s\n", fail("FAIL"), r.Path, r.Want, r.Got)
			fmt.Fprintf(w, "     diff: %s\n", Diff(r.Want, r.Got))
		case verbose:
			fmt.Fprintf(w, "%s %s\n", pass("ok  "), r.Path)
		}
	}
	fmt.Fprintf(w, "%d passed, %d failed\n", len(results)-failed, failed)
	return failed
}
