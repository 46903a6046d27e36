package lye

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func Test_Config_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Prompt != "lye> " || cfg.Color != ColorAuto || cfg.Scoping != "dynamic" || !cfg.ShowBanner() {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func Test_Config_Parse(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
prompt: "λ> "
color: never
scoping: lexical
banner: false
history: /tmp/lye_hist
`))
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultConfig()
	want.Prompt = "λ> "
	want.Color = ColorNever
	want.Scoping = "lexical"
	banner := false
	want.Banner = &banner
	want.History = "/tmp/lye_hist"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config (-want +got):\n%s", diff)
	}
	if cfg.ShowBanner() {
		t.Fatal("banner: false must hide the banner")
	}
}

func Test_Config_PartialKeepsDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("prompt: \"> \"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Prompt != "> " || cfg.Continuation != DefaultConfig().Continuation || !cfg.ShowBanner() {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func Test_Config_Invalid(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"color: sometimes\n", "wrong value for color"},
		{"scoping: static\n", "unknown scoping"},
		{"prompt: [\n", "error decoding config"},
	}
	for _, c := range cases {
		_, err := ParseConfig([]byte(c.src))
		if err == nil || !strings.Contains(err.Error(), c.want) {
			t.Fatalf("%q: expected error containing %q, got %v", c.src, c.want, err)
		}
	}
}

func Test_Config_HistoryHomeExpansion(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	cfg, err := ParseConfig([]byte("history: ~/hist\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.History != filepath.Join(home, "hist") {
		t.Fatalf("history = %q", cfg.History)
	}
}

func Test_Config_Load(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "lye.yaml")
	if err := os.WriteFile(p, []byte("scoping: lexical\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(p)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Path != p || cfg.Scoping != "lexical" {
		t.Fatalf("loaded %+v", cfg)
	}

	t.Setenv(ConfigEnvVar, p)
	cfg, err = LoadConfig("")
	if err != nil || cfg.Path != p {
		t.Fatalf("env config not used: %+v, %v", cfg, err)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("an explicit missing config is an error")
	}
}

func Test_Config_LoadFallsBackToDefaults(t *testing.T) {
	t.Setenv(ConfigEnvVar, "")
	t.Setenv("HOME", t.TempDir())
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Path != "" || cfg.Prompt != DefaultConfig().Prompt {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}
