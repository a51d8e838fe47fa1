package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.Contains(out, version) {
		t.Fatalf("output %q missing version", out)
	}
}

func TestPatternsCmd(t *testing.T) {
	out, err := execute(t, "", "patterns")
	if err != nil {
		t.Fatalf("patterns error = %v", err)
	}
	for _, name := range []string{"block", "blinker", "glider", "pulsar"} {
		if !strings.Contains(out, name) {
			t.Errorf("patterns output missing %q", name)
		}
	}
}

func TestRunHeadlessFromStdin(t *testing.T) {
	blinker := `
0 0 0 0 0
0 0 0 0 0
0 1 1 1 0
0 0 0 0 0
0 0 0 0 0
`
	out, err := execute(t, blinker, "run", "--ui", "headless", "--width", "5", "--height", "5", "--frame-unit", "0")
	if err != nil {
		t.Fatalf("run error = %v", err)
	}
	if !strings.Contains(out, "halted at generation 2: oscillating (population 3)") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRunHeadlessEmptyHaltsAtOne(t *testing.T) {
	out, err := execute(t, "", "run", "--ui", "headless", "--width", "8", "--height", "4", "--frame-unit", "0")
	if err != nil {
		t.Fatalf("run error = %v", err)
	}
	if !strings.Contains(out, "halted at generation 1: still life") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRunHeadlessMaxGenWithJournal(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	out, err := execute(t, "", "run", "--ui", "headless", "--pattern", "glider",
		"--width", "12", "--height", "12", "--frame-unit", "0", "--max-gen", "15", "--journal", dbPath)
	if err != nil {
		t.Fatalf("run error = %v", err)
	}
	if !strings.Contains(out, "halted at generation 15: quit") {
		t.Fatalf("unexpected output %q", out)
	}

	out, err = execute(t, "", "history", "--journal", dbPath)
	if err != nil {
		t.Fatalf("history error = %v", err)
	}
	if !strings.Contains(out, "pattern:glider") || !strings.Contains(out, "15") {
		t.Fatalf("history missing run: %q", out)
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown pattern", []string{"run", "--ui", "headless", "--pattern", "nope"}},
		{"unknown ui", []string{"run", "--ui", "hologram"}},
		{"invalid speed", []string{"run", "--ui", "headless", "--speed", "11"}},
		{"missing input file", []string{"run", "--ui", "headless", "--input", "/does/not/exist"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, "", tt.args...); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestHistoryRequiresJournal(t *testing.T) {
	t.Setenv("TERMLIFE_JOURNAL", "")
	if _, err := execute(t, "", "history"); err == nil {
		t.Fatal("expected error without a journal")
	}
}

func TestRunRandomIsDeterministic(t *testing.T) {
	args := []string{"run", "--ui", "headless", "--random", "7", "--width", "16", "--height", "16", "--frame-unit", "0", "--max-gen", "30"}
	a, err := execute(t, "", args...)
	if err != nil {
		t.Fatal(err)
	}
	b, err := execute(t, "", args...)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("same seed gave different results:\n%s\n%s", a, b)
	}
}
