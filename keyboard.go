package main

import (
	"fmt"
	"io"
)

// TTI is the teletype keyboard. Host keystrokes are latched one at a
// time; an attached paper tape image replaces the keyboard until it
// runs out.
type TTI struct {
	flag  bool   // a character is ready for the processor
	char  uint16 // latched character
	ready bool   // an unlatched host character is waiting

	tape   io.ReadCloser // attached paper tape image, nil when detached
	host   io.Reader     // non-blocking host keyboard
	notice io.Writer     // operator messages
}

func (t *TTI) iot(instr, ac uint16) (skip, clear bool, data uint16) {
	switch instr & 07 {
	case 0: // KCF
		t.flag = false
	case 1: // KSF
		skip = t.flag
	case 2: // KCC
		t.flag = false
		clear = true
	case 4, 5: // KRS
		data = t.char
	case 6: // KRB
		t.flag = false
		clear = true
		data = t.char
	}
	return skip, clear, data
}

func (t *TTI) interrupt() bool { return t.flag }

// clock latches the next character, from the paper tape if one is
// attached, otherwise from the host keyboard. A finished tape detaches
// itself and tells the operator once.
func (t *TTI) clock() {
	if t.tape != nil {
		if t.flag {
			return
		}
		var b [1]byte
		if n, err := t.tape.Read(b[:]); n == 1 {
			t.char = uint16(b[0])
			t.flag = true
		} else if err != nil {
			t.DetachTape()
			t.char = 0
			fmt.Fprintln(t.notice, " ** end of paper tape **")
		}
		return
	}

	t.pollHost()
	if !t.flag && t.ready {
		t.flag = true
		t.ready = false
	}
}

// pollHost grabs a waiting host keystroke, if any. The reader must not
// block; a read of zero bytes means no key is pending.
func (t *TTI) pollHost() {
	if t.ready || t.host == nil {
		return
	}
	var b [1]byte
	if n, _ := t.host.Read(b[:]); n == 1 {
		if b[0] == '\n' {
			b[0] = '\r'
		}
		t.char = uint16(b[0]) & 0177
		t.ready = true
	}
}

// AttachTape replaces keyboard input with a paper tape image.
func (t *TTI) AttachTape(r io.ReadCloser) {
	if t.tape != nil {
		t.tape.Close()
	}
	t.tape = r
}

// DetachTape closes and removes the attached tape image.
func (t *TTI) DetachTape() error {
	if t.tape == nil {
		return nil
	}
	err := t.tape.Close()
	t.tape = nil
	return err
}
