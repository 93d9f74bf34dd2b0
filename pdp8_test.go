package main

import (
	"testing"

	"github.com/matryer/is"
	"github.com/spf13/afero"
)

func TestLoadImage(t *testing.T) {
	is := is.New(t)
	fs := afero.NewMemMapFs()
	// two big endian words, high bits masked off on the way in
	is.NoErr(afero.WriteFile(fs, "core.img", []byte{0x0f, 0x01, 0xff, 0xff}, 0644))

	cpu := testCPU()
	is.NoErr(loadImage(fs, "core.img", cpu))
	is.Equal(cpu.mem[0], uint16(07401))
	is.Equal(cpu.mem[1], uint16(07777))
	is.Equal(cpu.mem[2], uint16(0))
}

func TestLoadImageMissing(t *testing.T) {
	is := is.New(t)
	fs := afero.NewMemMapFs()
	cpu := testCPU()
	is.True(loadImage(fs, "nope.img", cpu) != nil)
}
