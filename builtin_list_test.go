package lye

import (
	"testing"
)

func Test_Builtin_List_Laws(t *testing.T) {
	wantPrinted(t, evalSrc(t, "(join {1 2} {3 4})"), "{1 2 3 4}")
	wantPrinted(t, evalSrc(t, "(join {1 {2}} {} {(+ 3 4)})"), "{1 {2} (+ 3 4)}")
	wantNum(t, evalSrc(t, "(length {1 2 3})"), 3)
	wantNum(t, evalSrc(t, "(length {})"), 0)
	wantPrinted(t, evalSrc(t, "(init {1 2 3})"), "{1 2}")
	wantPrinted(t, evalSrc(t, "(init {1})"), "{}")
	wantPrinted(t, evalSrc(t, "(reverse {1 2 3})"), "{3 2 1}")
	wantPrinted(t, evalSrc(t, "(reverse {})"), "{}")
}

func Test_Builtin_List_ReverseRoundTrip(t *testing.T) {
	for _, l := range []string{"{}", "{1}", "{1 2}", "{a {b c} 3 (d)}"} {
		wantPrinted(t, evalSrc(t, "(reverse (reverse "+l+"))"), l)
	}
}

func Test_Builtin_List_HeadTailCons(t *testing.T) {
	for _, c := range []struct{ x, l string }{
		{"1", "{2 3}"},
		{"{a}", "{}"},
		{"7", "{{1} 2}"},
	} {
		wantPrinted(t, evalSrc(t, "(head (cons "+c.x+" "+c.l+"))"), c.x)
		wantPrinted(t, evalSrc(t, "(tail (cons "+c.x+" "+c.l+"))"), c.l)
	}
	wantNum(t, evalSrc(t, "(head {1 2})"), 1)
	wantPrinted(t, evalSrc(t, "(tail {1 2 3})"), "{2 3}")
	wantPrinted(t, evalSrc(t, "(tail {1})"), "{}")
}

func Test_Builtin_List_ListAndEval(t *testing.T) {
	wantPrinted(t, evalSrc(t, "(list 1 (+ 1 1) {3})"), "{1 2 {3}}")
	wantPrinted(t, evalSrc(t, "(list)"), "list")
	wantNum(t, evalSrc(t, "(eval {+ 1 2 3})"), 6)
	wantNum(t, evalSrc(t, "(eval (tail {ignored + 4 5}))"), 9)
	wantPrinted(t, evalSrc(t, "(eval {})"), "()")
}

func Test_Builtin_List_EvalUsesCallingEnv(t *testing.T) {
	wantNum(t, evalSrc(t, `((\ {x} {eval {* x 10}}) 4)`), 40)
}

func Test_Builtin_List_TypeGuards(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"(head 5)", "incorrect type"},
		{"(head 5)", "function 'head' passed incorrect type: expected Q-Expression (List), found type Number."},
		{"(head {})", "empty"},
		{"(tail {})", "function 'tail' passed invalid empty list."},
		{"(init {})", "empty"},
		{"(head {1} {2})", "function 'head' must be passed 1 argument, but got 2 instead."},
		{"(cons 1)", "function 'cons' must be passed 2 arguments, but got 1 instead."},
		{"(cons 1 2)", "found type Number."},
		{"(join {1} 2)", "function 'join' passed incorrect type"},
		{"(eval 1)", "function 'eval' passed incorrect type"},
		{"(length 1 2)", "must be passed 1 argument"},
		{"(reverse x)", "unbound symbol 'x'."},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			wantErrContains(t, evalSrc(t, c.src), c.want)
		})
	}
}

func Test_Builtin_List_JoinNeedsArgument(t *testing.T) {
	wantErrContains(t, builtinJoin(nil, nil), "function 'join' must be passed at least 1 argument")
}
