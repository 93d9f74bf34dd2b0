package main

import "io"

// TTO is the teletype printer. Characters are emitted to the output
// stream as soon as they are written; the ready flag follows a poll
// tick later, which is when the printer raises its interrupt.
type TTO struct {
	flag    bool // ready for another character
	pending bool // a character is still being "printed"
	irq     bool

	out io.Writer
}

func (t *TTO) iot(instr, ac uint16) (skip, clear bool, data uint16) {
	switch instr & 07 {
	case 0: // TFL
		t.flag = true
	case 1: // TSF
		skip = t.flag
	case 2: // TCF
		t.flag = false
		t.irq = false
	case 4, 5: // TPC
		t.print(ac)
	case 6: // TLS
		t.flag = false
		t.irq = false
		t.print(ac)
	}
	return skip, false, 0
}

func (t *TTO) print(ac uint16) {
	t.pending = true
	t.out.Write([]byte{byte(ac & 0177)})
}

func (t *TTO) clock() {
	if !t.flag && t.pending {
		t.flag = true
		t.irq = true
		t.pending = false
	}
}

func (t *TTO) interrupt() bool { return t.irq }
