package commands

import (
	"errors"

	"github.com/calvinmclean/rangefinder"
)

// Command is a single-byte Flag followed by InputSize bytes of input
type Command struct {
	Flag        byte
	InputSize   uint
	Run         func(Controller, []byte) error
	Description string
}

// Controller is used to control a range finder
type Controller interface {
	Tick()
	Measure()
	Continuous(bool)
	SetUnit(rangefinder.Unit)
	NextUnit()
	Reset()
	Debug()
	Verbose()

	// I/O
	ReadByte() (byte, error)
	Println(...any)
	Raw(...any)
}

var (
	MeasureCommand = &Command{
		Flag:      'M',
		InputSize: 0,
		Run: func(c Controller, _ []byte) error {
			c.Measure()
			return nil
		},
		Description: "Measure the distance once.",
	}
	ContinuousCommand = &Command{
		Flag:      'C',
		InputSize: 1,
		Run: func(c Controller, input []byte) error {
			switch in := input[0]; in {
			case '1':
				c.Continuous(true)
			case '0':
				c.Continuous(false)
			default:
				return errors.New("invalid input: " + string(input))
			}
			return nil
		},
		Description: "Turn continuous measurement on or off. Input: '1' (on), '0' (off).",
	}
	SetUnitCommand = &Command{
		Flag:      'U',
		InputSize: 1,
		Run: func(c Controller, input []byte) error {
			switch in := input[0]; in {
			case 'M':
				c.SetUnit(rangefinder.UnitMeters)
			case 'C':
				c.SetUnit(rangefinder.UnitCentimeters)
			case 'm':
				c.SetUnit(rangefinder.UnitMillimeters)
			default:
				return errors.New("invalid input: " + string(input))
			}
			return nil
		},
		Description: "Set the display unit. Input: 'M' (meters), 'C' (centimeters), 'm' (millimeters).",
	}
	NextUnitCommand = &Command{
		Flag:      'N',
		InputSize: 0,
		Run: func(c Controller, _ []byte) error {
			c.NextUnit()
			return nil
		},
		Description: "Switch to the next display unit.",
	}
	ResetCommand = &Command{
		Flag:      'R',
		InputSize: 0,
		Run: func(c Controller, _ []byte) error {
			c.Reset()
			return nil
		},
		Description: "Abandon the current measurement and stop continuous mode.",
	}
	DebugCommand = &Command{
		Flag:      'D',
		InputSize: 0,
		Run: func(c Controller, _ []byte) error {
			c.Debug()
			return nil
		},
		Description: "Print the current state.",
	}
	VerboseCommand = &Command{
		Flag:      'V',
		InputSize: 0,
		Run: func(c Controller, _ []byte) error {
			c.Verbose()
			return nil
		},
		Description: "Enable verbose output.",
	}
	HelpCommand = &Command{
		Flag:        'H',
		InputSize:   0,
		Description: "Show all available commands and their descriptions.",
		Run: func(c Controller, _ []byte) error {
			c.Raw("Available Commands:")
			for _, cmd := range commands {
				c.Raw(string(cmd.Flag) + ": " + cmd.Description)
			}
			return nil
		},
	}
)

var commands = []*Command{
	MeasureCommand,
	ContinuousCommand,
	SetUnitCommand,
	NextUnitCommand,
	ResetCommand,
	DebugCommand,
	VerboseCommand,
}

// Map returns all commands by Flag, including HelpCommand
func Map() map[byte]*Command {
	cmdMap := map[byte]*Command{
		HelpCommand.Flag: HelpCommand,
	}

	for _, cmd := range commands {
		cmdMap[cmd.Flag] = cmd
	}
	return cmdMap
}

// Run ticks the Controller forever, running commands as they arrive
func Run(c Controller) {
	cmdMap := Map()
	for {
		c.Tick()
		Step(c, cmdMap)
	}
}

// Step runs at most one command. It returns immediately when no byte is available or the byte is
// not a command. While waiting for a command's input it keeps ticking the Controller so a
// measurement in progress is not missed.
func Step(c Controller, cmdMap map[byte]*Command) {
	cmdIn, err := c.ReadByte()
	if err != nil {
		return
	}

	cmd, ok := cmdMap[cmdIn]
	if !ok {
		return
	}

	in := make([]byte, cmd.InputSize)
	for i := 0; i < int(cmd.InputSize); {
		b, err := c.ReadByte()
		if err != nil {
			c.Tick()
			continue
		}

		in[i] = b
		i++
	}

	err = cmd.Run(c, in)
	if err != nil {
		c.Println("error:", err.Error())
	}
}
