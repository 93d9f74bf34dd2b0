package main

import (
	"fmt"
	"strings"
)

var mrops = [...]string{"AND", "TAD", "ISZ", "DCA", "JMS", "JMP"}

var iotNames = map[uint16]string{
	06000: "SKON",
	06001: "ION",
	06002: "IOF",
	06030: "KCF",
	06031: "KSF",
	06032: "KCC",
	06034: "KRS",
	06036: "KRB",
	06040: "TFL",
	06041: "TSF",
	06042: "TCF",
	06044: "TPC",
	06046: "TLS",
}

// disasm renders the instruction at addr. Microcoded words are spelled
// out one micro op at a time rather than matched against the usual
// composite mnemonics.
func (c *PDP8) disasm(addr uint16) string {
	instr := c.mem[addr]
	switch op := instr >> 9; {
	case op < 6:
		name := mrops[op]
		if instr&0400 > 0 {
			name += " I"
		}
		if instr&0200 > 0 {
			return fmt.Sprintf("%s %04o", name, addr&07600|instr&0177)
		}
		return fmt.Sprintf("%s Z %04o", name, instr&0177)
	case op == 6:
		if name, ok := iotNames[instr]; ok {
			return name
		}
		return fmt.Sprintf("IOT %02o,%o", (instr>>3)&077, instr&07)
	default:
		return disasmOperate(instr)
	}
}

func disasmOperate(instr uint16) string {
	var ops []string
	add := func(bit uint16, name string) {
		if instr&bit > 0 {
			ops = append(ops, name)
		}
	}

	switch {
	case instr&0400 == 0: // group 1
		add(0200, "CLA")
		add(0100, "CLL")
		add(040, "CMA")
		add(020, "CML")
		add(01, "IAC")
		if instr&02 > 0 {
			switch instr & 014 {
			case 010:
				ops = append(ops, "RTR")
			case 04:
				ops = append(ops, "RTL")
			case 0:
				ops = append(ops, "BSW")
			}
		} else {
			add(010, "RAR")
			add(04, "RAL")
		}
	case instr&07411 == 07400: // group 2, OR skips
		add(0100, "SMA")
		add(040, "SZA")
		add(020, "SNL")
		add(0200, "CLA")
		add(04, "OSR")
		add(02, "HLT")
	case instr&07411 == 07410: // group 2, AND skips
		add(0100, "SPA")
		add(040, "SNA")
		add(020, "SZL")
		if instr == 07410 {
			ops = append(ops, "SKP")
		}
		add(0200, "CLA")
	default: // group 3
		add(0200, "CLA")
		if instr&0120 == 0120 {
			ops = append(ops, "SWP")
		} else {
			add(0100, "MQA")
			add(020, "MQL")
		}
	}
	if len(ops) == 0 {
		return "NOP"
	}
	return strings.Join(ops, " ")
}
