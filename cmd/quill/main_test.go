package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"omibyte.io/quill/rtio"
)

var hostEnv = []string{"QUILL_STDOUT", "QUILL_STDERR", "QUILL_STRICT", "QUILL_VERBOSITY", "QUILL_CONFIG"}

// execute runs the root command with fresh flag state and captured streams.
func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	for _, k := range hostEnv {
		t.Setenv(k, "")
	}
	prev := rtio.Default()
	t.Cleanup(func() { rtio.SetDefault(prev) })

	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	envCmd.Flags().VisitAll(reset)

	var outBuf, errBuf bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestPrintlnCommand(t *testing.T) {
	tests := []struct {
		name   string
		stdin  string
		args   []string
		stdout string
	}{
		{"single", "", []string{"println", "hello"}, "hello"},
		{"multiple", "", []string{"println", "a", "b", "c"}, "abc"},
		{"escaped", "", []string{"println", "-e", `hello\n`}, "hello\n"},
		{"raw", "", []string{"println", `hello\n`}, `hello\n`},
		{"stdin", "from stdin\n", []string{"println"}, "from stdin\n"},
		{"stdinDash", "dash", []string{"println", "-"}, "dash"},
		{"emptyArg", "", []string{"println", ""}, ""},
		{"emptyStdin", "", []string{"println"}, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, tc.stdin, tc.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if stdout != tc.stdout {
				t.Errorf("expected stdout %q, got %q", tc.stdout, stdout)
			}
			if stderr != "" {
				t.Errorf("expected empty stderr, got %q", stderr)
			}
		})
	}
}

func TestPanicCommand(t *testing.T) {
	stdout, stderr, err := execute(t, "", "panic", "out of memory")
	if !rtio.IsFatal(err) {
		t.Fatalf("expected a fatal error, got %v", err)
	}
	if stderr != "out of memory" {
		t.Errorf("expected stderr %q, got %q", "out of memory", stderr)
	}
	if stdout != "" {
		t.Errorf("expected empty stdout, got %q", stdout)
	}
}

func TestPanicCommandTooManyArgs(t *testing.T) {
	_, stderr, err := execute(t, "", "panic", "a", "b")
	if err == nil || rtio.IsFatal(err) {
		t.Errorf("expected a usage error, got %v", err)
	}
	if stderr != "" {
		t.Errorf("expected nothing written, got %q", stderr)
	}
}

func TestFileTargets(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.log")
	errLog := filepath.Join(dir, "err.log")

	if _, _, err := execute(t, "", "--stdout", out, "println", "-e", `A\n`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := execute(t, "", "--stderr", errLog, "panic", "B"); !errors.Is(err, rtio.ErrFatal) {
		t.Fatalf("expected rtio.ErrFatal, got %v", err)
	}

	for path, want := range map[string]string{out: "A\n", errLog: "B"} {
		b, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(b) != want {
			t.Errorf("%s: expected %q, got %q", filepath.Base(path), want, b)
		}
	}
}

func TestBadVerbosity(t *testing.T) {
	_, _, err := execute(t, "", "-v", "loud", "println", "x")
	if !errors.Is(err, rtio.ErrUnknownVerbosity) {
		t.Errorf("expected rtio.ErrUnknownVerbosity, got %v", err)
	}
}

func TestEnvCommand(t *testing.T) {
	stdout, _, err := execute(t, "", "env")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(stdout, "set QUILL_CONFIG=\n") || !strings.Contains(stdout, "set QUILL_VERBOSITY=\n") {
		t.Errorf("unexpected env output %q", stdout)
	}

	stdout, _, err = execute(t, "", "env", "--profile")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"strict: false", "verbosity: quiet"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in %q", want, stdout)
		}
	}
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  error
	}{
		{`hello\n`, "hello\n", nil},
		{`tab\there`, "tab\there", nil},
		{`nul\x00byte`, "nul\x00byte", nil},
		{`high\xff`, "high\xff", nil},
		{`é`, "é", nil},
		{`say "hi"`, `say "hi"`, nil},
		{`quote\"`, `quote"`, nil},
		{"raw\xfe", "raw\xfe", nil},
		{`bad\q`, "", ErrBadEscape},
		{`trailing\`, "", ErrBadEscape},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := unescape(tc.in)
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected error %v, got %v", tc.err, err)
			}
			if err == nil && string(got) != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
