package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// pollInterval is the number of instructions between device clock
// ticks. Interrupts are only delivered on these boundaries, so the
// threshold is part of the machine's observable behaviour.
const pollInterval = 100

// PDP8 is a 4KW PDP-8 with no EAE and a console teletype.
type PDP8 struct {
	mem [4096]uint16

	pc uint16 // program counter
	ac uint16 // accumulator
	l  uint16 // link, the 13th bit of the accumulator
	mq uint16 // multiplier-quotient
	sr uint16 // front panel switch register

	ie      bool // interrupt system on
	iedelay int  // ION countdown, see iot()
	halted  bool

	poll int // instructions since the last device clock

	tti TTI
	tto TTO

	iots    map[uint16]device
	devices []device
}

// Reset restores the power on state and rewires the console teletype
// to the host terminal.
func (c *PDP8) Reset() {
	*c = PDP8{
		halted: true,
		tti:    TTI{host: pollReader{os.Stdin}, notice: os.Stdout},
		tto:    TTO{flag: true, out: os.Stdout},
	}
	c.devices = []device{&c.tti, &c.tto}
	c.iots = iotMap(&c.tti, &c.tto)
}

// step executes one instruction. Every pollInterval+1 instructions the
// devices are clocked and a pending interrupt, if enabled, is taken
// through location 0.
func (c *PDP8) step() {
	instr := c.mem[c.pc]

	switch instr >> 9 {
	case 0: // AND
		c.ac &= c.mem[c.ea(instr)]
	case 1: // TAD
		c.ac += c.mem[c.ea(instr)]
		if c.ac > 07777 {
			c.l ^= 1
		}
		c.ac &= 07777
	case 2: // ISZ
		ea := c.ea(instr)
		v := (c.mem[ea] + 1) & 07777
		c.mem[ea] = v
		if v == 0 {
			c.pc = (c.pc + 1) & 07777
		}
	case 3: // DCA
		c.mem[c.ea(instr)] = c.ac
		c.ac = 0
	case 4: // JMS
		ea := c.ea(instr)
		c.mem[ea] = (c.pc + 1) & 07777
		c.pc = ea
	case 5: // JMP
		c.pc = (c.ea(instr) - 1) & 07777
	case 6: // IOT
		c.iot(instr)
	case 7: // OPR
		c.opr(instr)
	}
	c.pc = (c.pc + 1) & 07777

	c.poll++
	if c.poll > pollInterval {
		c.poll = 0
		for _, d := range c.devices {
			d.clock()
		}
		if c.ie && c.interrupting() {
			c.mem[0] = c.pc
			c.ie = false
			c.pc = 1
		}
	}

	if c.iedelay > 0 {
		c.iedelay--
		if c.iedelay == 0 {
			c.ie = true
		}
	}
}

// ea computes the effective address of a memory reference instruction.
// Indirection through an auto-index register (0010-0017) increments the
// stored pointer first, so call this at most once per instruction.
func (c *PDP8) ea(instr uint16) uint16 {
	addr := instr & 0177
	if instr&0200 > 0 {
		// current page, not page zero
		addr |= c.pc & 07600
	}
	if instr&0400 > 0 {
		if addr >= 010 && addr < 020 {
			c.mem[addr] = (c.mem[addr] + 1) & 07777
		}
		return c.mem[addr]
	}
	return addr
}

// iot dispatches an I/O transfer to the owning device, or handles the
// three processor IOTs. Codes for devices that aren't fitted float the
// bus and execute as no-ops.
func (c *PDP8) iot(instr uint16) {
	if dev, ok := c.iots[instr]; ok {
		skip, clear, data := dev.iot(instr, c.ac)
		if skip {
			c.pc = (c.pc + 1) & 07777
		}
		if clear {
			c.ac = 0
		}
		c.ac |= data
		return
	}
	switch instr {
	case 06000: // SKON
		if c.ie {
			c.pc = (c.pc + 1) & 07777
		}
	case 06001: // ION
		// The interrupt system turns on only after the instruction
		// following ION completes, so a return from an interrupt
		// handler can't itself be interrupted.
		c.iedelay = 2
	case 06002: // IOF
		c.ie = false
	}
}

// opr executes the microcoded operate class. Group 1 micro ops apply
// in a fixed order as later ones see the results of earlier ones.
func (c *PDP8) opr(instr uint16) {
	switch {
	case instr&0400 == 0: // group 1
		if instr&0200 > 0 { // CLA
			c.ac = 0
		}
		if instr&0100 > 0 { // CLL
			c.l = 0
		}
		if instr&040 > 0 { // CMA
			c.ac = ^c.ac & 07777
		}
		if instr&020 > 0 { // CML
			c.l ^= 1
		}
		if instr&01 > 0 { // IAC
			c.ac++
			if c.ac > 07777 {
				c.l ^= 1
				c.ac = 0
			}
		}
		if instr&010 > 0 { // RAR
			c.rar()
		}
		if instr&04 > 0 { // RAL
			c.ral()
		}
		if instr&02 > 0 {
			switch instr & 014 {
			case 010: // RTR
				c.rar()
			case 04: // RTL
				c.ral()
			case 0: // BSW
				c.ac = (c.ac<<6 | c.ac>>6) & 07777
			}
		}
	case instr&07411 == 07400: // group 2, OR skips
		skip := false
		if instr&020 > 0 && c.l != 0 { // SNL
			skip = true
		}
		if instr&040 > 0 && c.ac == 0 { // SZA
			skip = true
		}
		if instr&0100 > 0 && c.ac&04000 > 0 { // SMA
			skip = true
		}
		if instr&0200 > 0 { // CLA
			c.ac = 0
		}
		if instr&04 > 0 { // OSR
			c.ac |= c.sr
		}
		if instr&02 > 0 { // HLT
			c.halted = true
		}
		if skip {
			c.pc = (c.pc + 1) & 07777
		}
	case instr&07411 == 07410: // group 2, AND skips
		skip := true
		if instr&020 > 0 { // SZL
			skip = skip && c.l == 0
		}
		if instr&040 > 0 { // SNA
			skip = skip && c.ac != 0
		}
		if instr&0100 > 0 { // SPA
			skip = skip && c.ac&04000 == 0
		}
		if instr&0200 > 0 { // CLA
			c.ac = 0
		}
		if skip {
			c.pc = (c.pc + 1) & 07777
		}
	case instr&07401 == 07401: // group 3
		// No EAE fitted, but MQA and MQL work without one.
		if instr&0200 > 0 { // CLA
			c.ac = 0
		}
		if instr&0120 == 0120 { // SWP
			c.ac, c.mq = c.mq, c.ac
		} else {
			if instr&0100 > 0 { // MQA
				c.ac |= c.mq
			}
			if instr&020 > 0 { // MQL
				c.mq = c.ac
				c.ac = 0
			}
		}
	}
}

// rar rotates the 13 bits of L and AC right one place.
func (c *PDP8) rar() {
	l := c.l
	c.l = c.ac & 1
	c.ac = (c.ac>>1 | l<<11) & 07777
}

// ral rotates the 13 bits of L and AC left one place.
func (c *PDP8) ral() {
	l := c.l
	c.l = c.ac >> 11 & 1
	c.ac = (c.ac<<1 | l) & 07777
}

func (c *PDP8) interrupting() bool {
	for _, d := range c.devices {
		if d.interrupt() {
			return true
		}
	}
	return false
}

// Halt requests a cooperative stop. The run loop observes the flag
// between steps; nothing interrupts a step in progress.
func (c *PDP8) Halt() {
	c.halted = true
}

var errAddress = errors.New("address out of range")

// Deposit stores a 12 bit word at addr.
func (c *PDP8) Deposit(addr int, v uint16) error {
	if addr < 0 || addr >= len(c.mem) {
		return errAddress
	}
	c.mem[addr] = v & 07777
	return nil
}

// Examine returns the word at addr.
func (c *PDP8) Examine(addr int) (uint16, error) {
	if addr < 0 || addr >= len(c.mem) {
		return 0, errAddress
	}
	return c.mem[addr], nil
}

func (c *PDP8) SetAC(v uint16) { c.ac = v & 07777 }
func (c *PDP8) SetL(v uint16)  { c.l = v & 1 }
func (c *PDP8) SetPC(v uint16) { c.pc = v & 07777 }
func (c *PDP8) SetSR(v uint16) { c.sr = v & 07777 }

// Load copies words into core starting at addr.
func (c *PDP8) Load(addr uint16, words ...uint16) {
	copy(c.mem[addr:], words)
}

func (c *PDP8) printstate(w io.Writer) {
	ie := 0
	if c.ie {
		ie = 1
	}
	fmt.Fprintf(w, "PC %04o AC %04o MQ %04o L %o SW %04o IE %o\t%s\n",
		c.pc, c.ac, c.mq, c.l, c.sr, ie, c.disasm(c.pc))
}
