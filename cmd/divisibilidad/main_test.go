package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	color.NoColor = true
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if args == nil {
		args = []string{} // otherwise cobra falls back to os.Args
	}
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

const usageLine = "divisibilidad [-d|--directo] <divisor> <base> <coeficientes>"

func TestMinimalRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blocks")
	defer teardown()
	//
	stdout, _, err := execute(t, "-d", "--minima", "11", "10", "2")
	if err != nil {
		t.Fatal(err)
	}
	want := "Reglas de divisibilidad para 11 en base 10:\n" +
		"  11|10: (1, -1)  peso 2, periódica\n"
	if diff := cmp.Diff(want, stdout); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestAllRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blocks")
	defer teardown()
	//
	stdout, _, err := execute(t, "--directo", "7", "10", "6")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 65 {
		t.Fatalf("expected header and 64 rules, got %d lines", len(lines))
	}
	if lines[1] != "  7|10: (1, 3, 2, 6, 4, 5)  peso 21, periódica" {
		t.Errorf("unexpected first rule %q", lines[1])
	}
}

func TestHTMLReport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blocks")
	defer teardown()
	//
	stdout, _, err := execute(t, "-d", "--formato", "html", "11", "10", "2")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stdout, `<table class="reglas"><caption>Reglas de divisibilidad para 11 en base 10</caption>`) {
		t.Errorf("unexpected table start: %s", stdout)
	}
	if n := strings.Count(stdout, "<tr>"); n != 5 {
		t.Errorf("expected 5 table rows, got %d", n)
	}
	if !strings.Contains(stdout, "<td><code>1</code> <code>-1</code></td><td>2</td><td>sí</td>") {
		t.Errorf("minimal rule missing from table: %s", stdout)
	}
}

func TestMalformedArguments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blocks")
	defer teardown()
	//
	stdout, stderr, err := execute(t, "-d", "7", "diez", "6")
	if !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if stdout != "" {
		t.Errorf("expected no output on stdout, got %q", stdout)
	}
	if !strings.HasPrefix(stderr, msgNotIntegers+"\n") {
		t.Errorf("expected error message first, got %q", stderr)
	}
	if !strings.Contains(stderr, usageLine) {
		t.Errorf("expected short help after error message, got %q", stderr)
	}
}

func TestHelp(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blocks")
	defer teardown()
	//
	tests := []struct {
		name string
		args []string
		long bool
	}{
		{"no arguments", nil, false},
		{"help flag", []string{"--ayuda"}, true},
		{"cobra help flag", []string{"-h"}, true},
		{"cobra long help flag", []string{"--help"}, true},
		{"help flag with rules", []string{"-h", "-d", "7", "10", "6"}, true},
		{"missing argument", []string{"-d", "7", "10"}, false},
		{"too many arguments", []string{"-d", "7", "10", "6", "1"}, false},
		{"not direct", []string{"7", "10", "6"}, true},
		{"divisor out of range", []string{"-d", "1", "10", "6"}, true},
		{"base out of range", []string{"-d", "7", "0", "6"}, true},
		{"no coefficients", []string{"-d", "7", "10", "0"}, true},
		{"too many rules", []string{"-d", "7", "10", "20"}, true},
	}
	for _, tt := range tests {
		stdout, stderr, err := execute(t, tt.args...)
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
			continue
		}
		if stderr != "" {
			t.Errorf("%s: expected nothing on stderr, got %q", tt.name, stderr)
		}
		if !strings.Contains(stdout, usageLine) {
			t.Errorf("%s: expected usage in help, got %q", tt.name, stdout)
		}
		if isLong := strings.Contains(stdout, "Argumentos"); isLong != tt.long {
			t.Errorf("%s: long help = %v, expected %v", tt.name, isLong, tt.long)
		}
	}
}

func TestIllegalOptions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blocks")
	defer teardown()
	//
	for _, args := range [][]string{
		{"--traza", "verbose", "-d", "7", "10", "6"},
		{"--formato", "pdf", "-d", "7", "10", "6"},
		{"--desconocida"},
	} {
		if _, stderr, err := execute(t, args...); !errors.Is(err, errUsage) || !strings.HasPrefix(stderr, "Error") {
			t.Errorf("%v: expected usage error, got %v, %q", args, err, stderr)
		}
	}
}
