// Package amoebacli provides a small command-line interpreter engine for
// environments where input arrives slowly and memory is fixed up front,
// such as a serial console on a microcontroller.
//
// Text is fed in a character at a time (or a line at a time), collected in a
// fixed-capacity line buffer, and on newline matched against a static table
// of commands. The matching command's callback receives the remaining tokens
// and renders its result into a fixed-capacity response buffer, which the
// interpreter then writes to an io.Writer.
//
// # Basic Usage
//
// Build the command table once, then create an interpreter around it:
//
//	reg, err := amoebacli.NewRegistry(
//	    amoebacli.Command{
//	        Name:        "led",
//	        Description: "led control",
//	        Help:        "Use 'led on' or 'led off' to control the state of the led.",
//	        Callback: func(args *amoebacli.Args, out *amoebacli.StrBuf) error {
//	            on, err := amoebacli.ParseBool(args.Next())
//	            if err != nil {
//	                return err
//	            }
//	            if on {
//	                return out.Append("Led is ON now")
//	            }
//	            return out.Append("Led is OFF now")
//	        },
//	    },
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	interp, err := amoebacli.New(reg, amoebacli.Config{
//	    Greeting: "hello\n",
//	    Prompt:   "> ",
//	    Output:   os.Stdout,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	interp.Start()
//	for ch := range uartChars {
//	    interp.FeedChar(ch)
//	}
//
// # Help
//
// The name "help" is reserved. A bare "help" lists every command with its
// description; "help <name>" prints that command's detailed help text.
//
// # Errors
//
// Everything that can go wrong while handling a line is one of a closed set
// of ErrorKind values. Each kind renders as a fixed line of text; the
// session always continues. Characters typed past the line capacity are
// dropped without an error.
//
// # Thread Safety
//
// Registry is immutable and may be shared. Interpreter holds per-session
// state and must be driven from one goroutine.
package amoebacli
