package main

// A device answers the IOT codes assigned to it and advances its state
// once per poll tick. Devices never initiate anything between clocks.
type device interface {
	// iot executes one I/O transfer. skip asks for the next
	// instruction to be skipped, clear asks for AC to be zeroed
	// before data is ORed in.
	iot(instr, ac uint16) (skip, clear bool, data uint16)
	// clock advances the device by one poll tick.
	clock()
	// interrupt reports whether the device wants the processor's
	// attention.
	interrupt() bool
}

// iotMap wires the console teletype to its fixed IOT codes. 6030-6036
// belong to the keyboard, 6040-6046 to the printer; everything else is
// either a processor IOT or an empty slot on the bus.
func iotMap(tti *TTI, tto *TTO) map[uint16]device {
	return map[uint16]device{
		06030: tti,
		06031: tti,
		06032: tti,
		06034: tti,
		06035: tti,
		06036: tti,
		06040: tto,
		06041: tto,
		06042: tto,
		06044: tto,
		06045: tto,
		06046: tto,
	}
}
