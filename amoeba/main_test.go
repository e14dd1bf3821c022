// =============================================================================
// main_test.go - Tests for Entry Point Helpers (main.go)
// =============================================================================
//
// Tests for version strings, the greeting banner, input mode names and
// command-line flag handling.
//
// Flags are applied on top of builtinArguments rather than the environment
// defaults, so the results do not depend on AMOEBA_* variables set on the
// machine running the tests.
//
// =============================================================================

package main

import (
	"strings"
	"sync"
	"testing"

	"github.com/esynr3z/amoeba-cli/amoebacli"
)

// =============================================================================
// Version and Banner Tests
// =============================================================================

func TestFullTitle(t *testing.T) {
	got := fullTitle()
	expected := "amoeba-cli v0.3.0"
	if got != expected {
		t.Errorf("fullTitle() = %q, want %q", got, expected)
	}
}

func TestGreeting(t *testing.T) {
	banner := greeting()

	checks := []struct {
		name     string
		contains string
	}{
		{"title", "@@@@ amoeba-cli @@@@"},
		{"enter hint", "press 'Enter'"},
		{"help hint", "'help'"},
		{"topic hint", "'help foobar'"},
	}

	for _, tc := range checks {
		t.Run(tc.name, func(t *testing.T) {
			if !strings.Contains(banner, tc.contains) {
				t.Errorf("greeting() missing %q:\n%s", tc.contains, banner)
			}
		})
	}

	if !strings.HasSuffix(banner, "\n") {
		t.Error("greeting() should end with a newline")
	}
}

// =============================================================================
// Input Mode Tests
// =============================================================================

func TestInputModeRoundTrip(t *testing.T) {
	for _, mode := range []inputMode{modeLine, modeChar, modeScreen} {
		got, err := parseInputMode(mode.String())
		if err != nil {
			t.Errorf("parseInputMode(%q): %v", mode.String(), err)
			continue
		}
		if got != mode {
			t.Errorf("parseInputMode(%q) = %v, want %v", mode.String(), got, mode)
		}
	}

	if _, err := parseInputMode("curses"); err == nil {
		t.Error("parseInputMode(curses) should fail")
	}
}

// =============================================================================
// Argument Parsing Tests
// =============================================================================

func TestBuiltinArguments(t *testing.T) {
	args := builtinArguments()

	if args.mode != modeLine {
		t.Errorf("mode = %v, want line", args.mode)
	}
	if args.prompt != "> " {
		t.Errorf("prompt = %q, want %q", args.prompt, "> ")
	}
	if args.lineCap != amoebacli.DefaultLineCap {
		t.Errorf("lineCap = %d, want %d", args.lineCap, amoebacli.DefaultLineCap)
	}
	if args.responseCap != amoebacli.DefaultResponseCap {
		t.Errorf("responseCap = %d, want %d", args.responseCap, amoebacli.DefaultResponseCap)
	}
	if args.exec != "" || args.showHelp || args.showVersion {
		t.Errorf("unexpected flags set: %+v", args)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name  string
		argv  []string
		check func(arguments) bool
	}{
		{"char", []string{"--char"}, func(a arguments) bool { return a.mode == modeChar }},
		{"screen", []string{"--screen"}, func(a arguments) bool { return a.mode == modeScreen }},
		{"last mode wins", []string{"--screen", "--line"}, func(a arguments) bool { return a.mode == modeLine }},
		{"prompt", []string{"--prompt", "$ "}, func(a arguments) bool { return a.prompt == "$ " }},
		{"line cap", []string{"--line-cap", "16"}, func(a arguments) bool { return a.lineCap == 16 }},
		{"response cap", []string{"--response-cap", "4096"}, func(a arguments) bool { return a.responseCap == 4096 }},
		{"exec long", []string{"--exec", "led on"}, func(a arguments) bool { return a.exec == "led on" }},
		{"exec short", []string{"-e", "id 7"}, func(a arguments) bool { return a.exec == "id 7" }},
		{"help long", []string{"--help"}, func(a arguments) bool { return a.showHelp }},
		{"help short", []string{"-h"}, func(a arguments) bool { return a.showHelp }},
		{"version long", []string{"--version"}, func(a arguments) bool { return a.showVersion }},
		{"version short", []string{"-v"}, func(a arguments) bool { return a.showVersion }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			args, err := applyFlags(builtinArguments(), tc.argv)
			if err != nil {
				t.Fatalf("applyFlags(%q): %v", tc.argv, err)
			}
			if !tc.check(args) {
				t.Errorf("applyFlags(%q) = %+v", tc.argv, args)
			}
		})
	}
}

func TestApplyFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		argv []string
	}{
		{"unknown flag", []string{"--silent"}},
		{"missing prompt", []string{"--prompt"}},
		{"missing exec", []string{"--exec"}},
		{"non-numeric cap", []string{"--line-cap", "lots"}},
		{"zero cap", []string{"--response-cap", "0"}},
		{"negative cap", []string{"--line-cap", "-1"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := applyFlags(builtinArguments(), tc.argv); err == nil {
				t.Errorf("applyFlags(%q) should fail", tc.argv)
			}
		})
	}
}

func TestApplyFlagsKeepsDefaults(t *testing.T) {
	base := builtinArguments()
	base.prompt = "uart> "
	base.lineCap = 32

	args, err := applyFlags(base, []string{"--char"})
	if err != nil {
		t.Fatal(err)
	}
	if args.prompt != "uart> " || args.lineCap != 32 {
		t.Errorf("defaults not kept: %+v", args)
	}
	if args.mode != modeChar {
		t.Errorf("mode = %v, want char", args.mode)
	}
}

// =============================================================================
// Cleanup Tests
// =============================================================================

func TestCleanupHookRunsOnce(t *testing.T) {
	var hook cleanupHook
	hook.Run() // nothing installed yet

	calls := 0
	hook.Set(func() { calls++ })

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hook.Run()
		}()
	}
	wg.Wait()
	hook.Run()

	if calls != 1 {
		t.Errorf("cleanup ran %d times, want 1", calls)
	}
}

func TestCleanupHookSetReplaces(t *testing.T) {
	var hook cleanupHook
	var ran []string
	hook.Set(func() { ran = append(ran, "first") })
	hook.Set(func() { ran = append(ran, "second") })
	hook.Run()

	if len(ran) != 1 || ran[0] != "second" {
		t.Errorf("ran = %q, want [second]", ran)
	}
}
