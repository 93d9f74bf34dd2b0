package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

var (
	errArgCount = errors.New("wrong number of arguments")
	errBadOctal = errors.New("bad octal value")
)

// rimLoader is the low speed paper tape RIM loader, resident at 7756.
var rimLoader = [...]uint16{
	06032, 06031, 05357, 06036,
	07106, 07006, 07510, 05357,
	07006, 06031, 05367, 06034,
	07420, 03776, 03376, 05356,
}

// Console is the front panel prompt: deposit and examine core, poke
// registers, attach tapes, step or run the processor.
type Console struct {
	cpu *PDP8
	in  *bufio.Scanner
	out io.Writer
	fs  afero.Fs
}

func NewConsole(cpu *PDP8, in io.Reader, out io.Writer, fs afero.Fs) *Console {
	return &Console{
		cpu: cpu,
		in:  bufio.NewScanner(in),
		out: out,
		fs:  fs,
	}
}

func (con *Console) Run() error {
	for {
		con.cpu.printstate(con.out)
		fmt.Fprint(con.out, "> ")
		if !con.in.Scan() {
			return con.in.Err()
		}
		tokens := strings.Fields(con.in.Text())
		if len(tokens) == 0 {
			continue
		}
		if tokens[0] == "q" {
			return nil
		}
		if err := con.dispatch(tokens[0], tokens[1:]); err != nil {
			fmt.Fprintf(con.out, "? %v\n", err)
		}
	}
}

func (con *Console) dispatch(cmd string, args []string) error {
	switch cmd {
	case "s": // single step
		con.cpu.step()
		return nil

	case "r": // run until halt
		return con.run()

	case "st": // status is printed before every prompt anyway
		return nil

	case "d": // d <addr> <value>
		if len(args) != 2 {
			return errArgCount
		}
		addr, err := octal(args[0])
		if err != nil {
			return err
		}
		v, err := octal(args[1])
		if err != nil {
			return err
		}
		return con.cpu.Deposit(int(addr), v)

	case "e": // e <addr>
		if len(args) != 1 {
			return errArgCount
		}
		addr, err := octal(args[0])
		if err != nil {
			return err
		}
		v, err := con.cpu.Examine(int(addr))
		if err != nil {
			return err
		}
		fmt.Fprintf(con.out, "%04o : %04o\n", addr, v)
		return nil

	case "ac":
		return con.setreg(args, con.cpu.SetAC)
	case "l":
		return con.setreg(args, con.cpu.SetL)
	case "pc":
		return con.setreg(args, con.cpu.SetPC)
	case "sw":
		return con.setreg(args, con.cpu.SetSR)

	case "rim": // deposit the RIM loader at 7756
		if len(args) != 0 {
			return errArgCount
		}
		con.cpu.Load(07756, rimLoader[:]...)
		return nil

	case "pt": // pt <image> attaches, bare pt detaches
		switch len(args) {
		case 0:
			return con.cpu.tti.DetachTape()
		case 1:
			tape, err := con.fs.Open(args[0])
			if err != nil {
				return err
			}
			con.cpu.tti.AttachTape(tape)
			return nil
		default:
			return errArgCount
		}

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (con *Console) setreg(args []string, set func(uint16)) error {
	if len(args) != 1 {
		return errArgCount
	}
	v, err := octal(args[0])
	if err != nil {
		return err
	}
	set(v)
	return nil
}

// run executes until the program halts or the operator types ctrl-c.
// The host terminal is held in raw mode for the duration so keystrokes
// reach the simulated keyboard one at a time; the terminal is restored
// on every way out. The interrupt only sets the halt flag, which the
// loop checks between steps.
func (con *Console) run() error {
	restore, err := rawMode(os.Stdin)
	if err != nil {
		return err
	}
	defer restore()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)

	con.cpu.halted = false
	for !con.cpu.halted {
		con.cpu.step()
		select {
		case <-sig:
			fmt.Fprintln(con.out, "ctrl-c halt")
			con.cpu.Halt()
		default:
		}
	}
	return nil
}

func octal(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 8, 16)
	if err != nil {
		return 0, fmt.Errorf("%w %q", errBadOctal, s)
	}
	return uint16(v), nil
}
