// pdp8 emulates a 4KW PDP-8 with a console teletype.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/spf13/afero"
)

func main() {
	var cli struct {
		Run runCmd `cmd:"" default:"1" help:"start the front panel console"`
	}

	ctx := kong.Parse(&cli)
	err := ctx.Run(&kong.Context{})
	ctx.FatalIfErrorf(err)
}

type runCmd struct {
	StartAddr string `name:"startaddr" default:"0200" help:"initial program counter, octal"`
	Image     string `name:"image" type:"existingfile" help:"path to a core image"`
	Tape      string `name:"tape" type:"existingfile" help:"paper tape image to attach"`
}

func (r *runCmd) Run(ctx *kong.Context) error {
	fs := afero.NewOsFs()

	cpu := new(PDP8)
	cpu.Reset()

	pc, err := octal(r.StartAddr)
	if err != nil {
		return err
	}
	cpu.SetPC(pc)

	if r.Image != "" {
		if err := loadImage(fs, r.Image, cpu); err != nil {
			return err
		}
	}
	if r.Tape != "" {
		tape, err := fs.Open(r.Tape)
		if err != nil {
			return err
		}
		cpu.tti.AttachTape(tape)
	}

	fmt.Println("PDP-8 simulator")
	return NewConsole(cpu, os.Stdin, os.Stdout, fs).Run()
}

// loadImage fills core from a big endian word image, starting at zero.
func loadImage(fs afero.Fs, path string, cpu *PDP8) error {
	buf, err := afero.ReadFile(fs, path)
	if err != nil {
		return err
	}
	for i := 0; i+1 < len(buf) && i/2 < 4096; i += 2 {
		cpu.mem[i/2] = (uint16(buf[i])<<8 | uint16(buf[i+1])) & 07777
	}
	return nil
}
