package main

import (
	"io"
	"strings"
	"testing"

	"github.com/matryer/is"
)

type fakeTape struct {
	io.Reader
	closed bool
}

func (f *fakeTape) Close() error {
	f.closed = true
	return nil
}

func TestKeyboardRoundTrip(t *testing.T) {
	is := is.New(t)
	tti := TTI{host: strings.NewReader("A"), notice: io.Discard}

	tti.clock()
	is.True(tti.flag)
	is.Equal(tti.char, uint16(0101))

	// KSF skips while the flag is up
	skip, clear, data := tti.iot(06031, 0)
	is.True(skip)
	is.Equal(clear, false)
	is.Equal(data, uint16(0))

	// KRB: destructive read
	skip, clear, data = tti.iot(06036, 0)
	is.Equal(skip, false)
	is.True(clear)
	is.Equal(data, uint16(0101))
	is.Equal(tti.flag, false)
}

func TestKeyboardNewlineBecomesReturn(t *testing.T) {
	is := is.New(t)
	tti := TTI{host: strings.NewReader("\n"), notice: io.Discard}

	tti.clock()
	is.Equal(tti.char, uint16(015))
}

func TestKeyboardNonDestructiveRead(t *testing.T) {
	is := is.New(t)
	tti := TTI{flag: true, char: 0102}

	// KRS leaves the flag and character alone
	for _, instr := range []uint16{06034, 06035} {
		skip, clear, data := tti.iot(instr, 0)
		is.Equal(skip, false)
		is.Equal(clear, false)
		is.Equal(data, uint16(0102))
		is.True(tti.flag)
	}
}

func TestKeyboardClearFunctions(t *testing.T) {
	is := is.New(t)
	tti := TTI{flag: true}

	_, clear, _ := tti.iot(06030, 0) // KCF
	is.Equal(tti.flag, false)
	is.Equal(clear, false)

	tti.flag = true
	_, clear, _ = tti.iot(06032, 0) // KCC
	is.Equal(tti.flag, false)
	is.True(clear)
}

func TestPaperTape(t *testing.T) {
	is := is.New(t)
	notice := &strings.Builder{}
	tape := &fakeTape{Reader: strings.NewReader("AB")}
	tti := TTI{host: strings.NewReader("x"), notice: notice}
	tti.AttachTape(tape)

	tti.clock()
	is.True(tti.flag)
	is.Equal(tti.char, uint16('A'))

	// the tape holds while a character is pending
	tti.clock()
	is.Equal(tti.char, uint16('A'))

	tti.iot(06036, 0) // KRB
	tti.clock()
	is.Equal(tti.char, uint16('B'))

	tti.iot(06036, 0)
	tti.clock() // end of tape: detach, notify once
	is.True(tape.closed)
	is.Equal(tti.tape, nil)
	is.Equal(tti.char, uint16(0))
	is.Equal(notice.String(), " ** end of paper tape **\n")

	// back on the host keyboard now
	tti.clock()
	is.True(tti.flag)
	is.Equal(tti.char, uint16('x'))
	is.Equal(notice.String(), " ** end of paper tape **\n")
}

func TestDetachClosesTape(t *testing.T) {
	is := is.New(t)
	tape := &fakeTape{Reader: strings.NewReader("A")}
	tti := TTI{}
	tti.AttachTape(tape)

	is.NoErr(tti.DetachTape())
	is.True(tape.closed)
	is.NoErr(tti.DetachTape()) // detaching twice is fine
}
