// =============================================================================
// main.go - amoeba Demo CLI Entry Point
// =============================================================================
//
// This is the entry point for the amoeba demo, a small device console built
// on the amoebacli interpreter engine. It registers a handful of pretend
// device commands (led, rgb, id, exit) and feeds the interpreter from one of
// three input sources:
//
//	amoeba                  Line mode (readline on a TTY, plain stdin otherwise)
//	amoeba --char           Character mode (raw terminal, one byte at a time)
//	amoeba --screen         Full-screen character mode (tcell)
//	amoeba --exec "led on"  Run one line and exit
//
// Character mode imitates a microcontroller console where characters arrive
// one by one over a UART: nothing is dispatched until Enter is pressed, and
// characters typed past the line capacity are dropped.
//
// =============================================================================

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	"github.com/esynr3z/amoeba-cli/amoebacli"
	"github.com/xyproto/env/v2"
)

// =============================================================================
// Version Information
// =============================================================================

const (
	// version is the current version of the demo CLI.
	version = "0.3.0"

	// appName is the application name.
	appName = "amoeba-cli"
)

// fullTitle returns the application name with version.
func fullTitle() string {
	return fmt.Sprintf("%s v%s", appName, version)
}

// greeting returns the banner the interpreter prints when a session starts.
func greeting() string {
	return `@@@@ amoeba-cli @@@@
Type command and press 'Enter'. Use 'help' to list all available commands
or 'help foobar' to get more details about specific command.
`
}

// =============================================================================
// Command-Line Arguments
// =============================================================================

// inputMode selects where characters come from.
type inputMode int

const (
	// modeLine reads whole lines (readline or bufio.Scanner).
	modeLine inputMode = iota
	// modeChar reads single bytes from a terminal in raw mode.
	modeChar
	// modeScreen reads key events from a full-screen tcell session.
	modeScreen
)

// String returns the name used for the mode on the command line and in
// AMOEBA_MODE.
func (m inputMode) String() string {
	switch m {
	case modeLine:
		return "line"
	case modeChar:
		return "char"
	case modeScreen:
		return "screen"
	default:
		return "unknown"
	}
}

// parseInputMode converts a mode name back to an inputMode.
func parseInputMode(name string) (inputMode, error) {
	switch name {
	case "line":
		return modeLine, nil
	case "char":
		return modeChar, nil
	case "screen":
		return modeScreen, nil
	default:
		return modeLine, fmt.Errorf("unknown input mode %q (want line, char or screen)", name)
	}
}

// arguments holds the parsed command-line options.
type arguments struct {
	// mode selects the input source.
	mode inputMode

	// prompt is printed before each line of input.
	prompt string

	// lineCap is the capacity of the line buffer in bytes.
	lineCap int

	// responseCap is the capacity of the response buffer in bytes.
	responseCap int

	// exec, when non-empty, is run as a single line instead of a session.
	exec string

	// showHelp causes usage information to be printed and the program to exit.
	showHelp bool

	// showVersion causes version information to be printed and the program to exit.
	showVersion bool
}

// GO CONCEPT: Environment Defaults
// --------------------------------
// Defaults come from the environment first and command-line flags override
// them. github.com/xyproto/env/v2 wraps os.Getenv with typed accessors that
// fall back to a default when a variable is unset or malformed, so there is
// no need for a strconv.Atoi + error check per variable.
//
// Compare with Python: `int(os.environ.get("AMOEBA_LINE_CAP", 256))` does
// the same, except that it raises on a malformed value.

// builtinArguments returns the options used when neither the environment
// nor the command line says otherwise.
func builtinArguments() arguments {
	return arguments{
		mode:        modeLine,
		prompt:      "> ",
		lineCap:     amoebacli.DefaultLineCap,
		responseCap: amoebacli.DefaultResponseCap,
	}
}

// defaultArguments returns the options in effect before flags are applied.
func defaultArguments() (arguments, error) {
	args := builtinArguments()
	mode, err := parseInputMode(env.Str("AMOEBA_MODE", args.mode.String()))
	if err != nil {
		return args, err
	}
	args.mode = mode
	args.prompt = env.Str("AMOEBA_PROMPT", args.prompt)
	args.lineCap = env.Int("AMOEBA_LINE_CAP", args.lineCap)
	args.responseCap = env.Int("AMOEBA_RESPONSE_CAP", args.responseCap)
	return args, nil
}

// parseArguments parses argv (without the program name) on top of the
// environment defaults.
func parseArguments(argv []string) (arguments, error) {
	args, err := defaultArguments()
	if err != nil {
		return args, err
	}
	return applyFlags(args, argv)
}

// applyFlags overrides args with the flags in argv.
func applyFlags(args arguments, argv []string) (arguments, error) {
	var err error
	remaining := argv
	// value consumes the argument following a flag.
	value := func(flag string) (string, error) {
		if len(remaining) == 0 {
			return "", fmt.Errorf("%s requires a value", flag)
		}
		v := remaining[0]
		remaining = remaining[1:]
		return v, nil
	}
	// size consumes a positive integer argument.
	size := func(flag string) (int, error) {
		v, err := value(flag)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("%s requires a positive number, got %q", flag, v)
		}
		return n, nil
	}

	for len(remaining) > 0 {
		arg := remaining[0]
		remaining = remaining[1:]

		switch arg {
		case "--line":
			args.mode = modeLine

		case "--char":
			args.mode = modeChar

		case "--screen":
			args.mode = modeScreen

		case "--prompt":
			if args.prompt, err = value(arg); err != nil {
				return args, err
			}

		case "--line-cap":
			if args.lineCap, err = size(arg); err != nil {
				return args, err
			}

		case "--response-cap":
			if args.responseCap, err = size(arg); err != nil {
				return args, err
			}

		case "--exec", "-e":
			if args.exec, err = value(arg); err != nil {
				return args, err
			}

		case "--help", "-h":
			args.showHelp = true

		case "--version", "-v":
			args.showVersion = true

		default:
			return args, fmt.Errorf("unknown argument: %s", arg)
		}
	}

	return args, nil
}

// printUsage displays command-line usage information.
func printUsage() {
	fmt.Print(`USAGE: amoeba [options]

OPTIONS:
  --line                Line input (default; readline on a terminal)
  --char                Character input from a raw terminal
  --screen              Full-screen character input
  --prompt <text>       Prompt shown before each line (default: "> ")
  --line-cap <bytes>    Line buffer capacity (default: 256)
  --response-cap <n>    Response buffer capacity (default: 1024)
  --exec, -e <line>     Run a single command line and exit
  --help, -h            Show this help
  --version, -v         Show version

ENVIRONMENT:
  AMOEBA_MODE           line, char or screen
  AMOEBA_PROMPT         Default prompt
  AMOEBA_LINE_CAP       Default line buffer capacity
  AMOEBA_RESPONSE_CAP   Default response buffer capacity

Type 'help' at the prompt to list device commands.
`)
}

func printVersion() {
	fmt.Println(fullTitle())
}

// printError prints an error message to stderr.
func printError(message string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
}

// =============================================================================
// Signal Handling
// =============================================================================

// cleanupHook holds the function that restores the terminal. The session
// sets it from the main goroutine; the signal handler and the exit command
// run it, possibly concurrently. The function runs at most once, and a
// second caller waits until the first has finished.
type cleanupHook struct {
	mu sync.Mutex
	fn func()
}

// Set installs fn, replacing any previous function.
func (h *cleanupHook) Set(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fn = fn
}

// Run calls the installed function, if any, and clears it.
func (h *cleanupHook) Run() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.fn != nil {
		h.fn()
		h.fn = nil
	}
}

// setupSignalHandler runs cleanup and exits when SIGINT or SIGTERM arrives.
// In raw and screen modes the terminal must be restored before the process
// goes away, or the user's shell is left without echo.
func setupSignalHandler(cleanup func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		cleanup()
		fmt.Println()
		os.Exit(0)
	}()
}

// =============================================================================
// Main Entry Point
// =============================================================================

func main() {
	args, err := parseArguments(os.Args[1:])
	if err != nil {
		printError(err.Error())
		printUsage()
		os.Exit(1)
	}

	if args.showHelp {
		printUsage()
		return
	}
	if args.showVersion {
		printVersion()
		return
	}

	// The session installs its terminal cleanup here once it knows which
	// input source is active.
	var cleanup cleanupHook
	setupSignalHandler(cleanup.Run)

	reg, err := newRegistry(func() {
		cleanup.Run()
		os.Exit(0)
	})
	if err != nil {
		printError(err.Error())
		os.Exit(1)
	}

	if args.exec != "" {
		os.Exit(execOnce(reg, args, os.Stdout, os.Stderr))
	}

	if err := runSession(reg, args, cleanup.Set); err != nil {
		cleanup.Run()
		printError(err.Error())
		os.Exit(1)
	}
	cleanup.Run()
}
