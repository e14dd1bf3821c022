// =============================================================================
// commands.go - Demo Device Commands
// =============================================================================
//
// The command table of the demo console. On a real board these callbacks
// would drive GPIO pins and PWM channels; here they only report what they
// would have done.
//
//	led <on|off>             Switch the LED (any bool alias works)
//	rgb <red> <green> <blue> Set the RGB LED, 0..255 per channel
//	rgb <#rrggbb>            Same, from a CSS-style hex color
//	id <val>                 Set the device id
//	exit                     Terminate the program
//
// Arguments are parsed with the amoebacli helpers, so "rgb 0xFF 0b1010 7"
// and "led enable" both work.
//
// =============================================================================

package main

import (
	"fmt"
	"strings"

	"github.com/esynr3z/amoeba-cli/amoebacli"
	"github.com/lucasb-eyer/go-colorful"
)

// newRegistry builds the demo command table. exit is called by the exit
// command and is expected not to return.
func newRegistry(exit func()) (*amoebacli.Registry, error) {
	return amoebacli.NewRegistry(
		amoebacli.Command{
			Name:        "led",
			Description: "led control",
			Help:        "Use 'led on' or 'led off' to control the state of the led.",
			Callback:    cmdLed,
		},
		amoebacli.Command{
			Name:        "rgb",
			Description: "RGB led control",
			Help:        "rgb <red> <green> <blue>\nUse values from 0 to 255 to specify channel brightness.\nrgb <#rrggbb> sets all three channels from a hex color.",
			Callback:    cmdRGB,
		},
		amoebacli.Command{
			Name:        "id",
			Description: "set device id",
			Help:        "id <val>\nID have to be a string value.",
			Callback:    cmdID,
		},
		amoebacli.Command{
			Name:        "exit",
			Description: "exit CLI",
			Help:        "Yep, no jokes, program will be terminated.",
			Callback: func(*amoebacli.Args, *amoebacli.StrBuf) error {
				exit()
				return nil
			},
		},
	)
}

func cmdLed(args *amoebacli.Args, out *amoebacli.StrBuf) error {
	on, err := amoebacli.ParseBool(args.Next())
	if err != nil {
		return err
	}
	if on {
		return out.Append("Led is ON now")
	}
	return out.Append("Led is OFF now")
}

// cmdRGB reports the three channel values and the equivalent hex color.
// The channels are given either as three integers or as one "#rrggbb" (or
// "#rgb") token.
func cmdRGB(args *amoebacli.Args, out *amoebacli.StrBuf) error {
	first, err := amoebacli.Require(args.Next())
	if err != nil {
		return err
	}

	var r, g, b uint8
	if strings.HasPrefix(first, "#") {
		c, err := colorful.Hex(first)
		if err != nil {
			return amoebacli.InvalidArgType
		}
		r, g, b = c.RGB255()
	} else {
		if r, err = amoebacli.ParseInt[uint8](first, true); err != nil {
			return err
		}
		if g, err = amoebacli.ParseInt[uint8](args.Next()); err != nil {
			return err
		}
		if b, err = amoebacli.ParseInt[uint8](args.Next()); err != nil {
			return err
		}
	}

	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	_, err = fmt.Fprintf(out, "Ok, R=%d, G=%d, B=%d (%s)", r, g, b, c.Hex())
	return err
}

func cmdID(args *amoebacli.Args, out *amoebacli.StrBuf) error {
	id, err := amoebacli.Require(args.Next())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Ok, id='%s'", id)
	return err
}
