package main

import (
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestPrinterRoundTrip(t *testing.T) {
	is := is.New(t)
	out := &strings.Builder{}
	tto := TTO{flag: true, out: out}

	// TLS: emit immediately, busy until the next poll tick
	tto.iot(06046, 0102)
	is.Equal(out.String(), "B")
	is.Equal(tto.flag, false)
	is.True(tto.pending)
	is.Equal(tto.irq, false)

	tto.clock()
	is.True(tto.flag)
	is.True(tto.irq)
	is.Equal(tto.pending, false)

	// a further tick with nothing pending changes nothing
	tto.clock()
	is.True(tto.flag)
}

func TestPrinterSkipAndClear(t *testing.T) {
	is := is.New(t)
	tto := TTO{flag: true, irq: true, out: &strings.Builder{}}

	skip, clear, data := tto.iot(06041, 0) // TSF
	is.True(skip)
	is.Equal(clear, false)
	is.Equal(data, uint16(0))

	tto.iot(06042, 0) // TCF
	is.Equal(tto.flag, false)
	is.Equal(tto.irq, false)

	skip, _, _ = tto.iot(06041, 0)
	is.Equal(skip, false)

	tto.iot(06040, 0) // TFL
	is.True(tto.flag)
}

func TestPrinterTPCKeepsFlag(t *testing.T) {
	is := is.New(t)
	out := &strings.Builder{}
	tto := TTO{flag: true, out: out}

	// TPC echoes without clearing the ready flag
	for _, instr := range []uint16{06044, 06045} {
		tto.iot(instr, 0101)
	}
	is.Equal(out.String(), "AA")
	is.True(tto.flag)
	is.True(tto.pending)
}

func TestPrinterMasksTo7Bits(t *testing.T) {
	is := is.New(t)
	out := &strings.Builder{}
	tto := TTO{flag: true, out: out}

	tto.iot(06046, 07502) // 'B' with high bits set
	is.Equal(out.String(), "B")
}
