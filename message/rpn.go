package message

// Registered controller indices in bank 0, for use with
// NewMidi2RegisteredControl.
const (
	RegisteredPitchBendRange        uint8 = 0x00
	RegisteredCoarseTuning          uint8 = 0x02
	RegisteredTuningProgramChange   uint8 = 0x03
	RegisteredTuningBankSelect      uint8 = 0x04
	RegisteredMPEConfiguration      uint8 = 0x06
	RegisteredPerNotePitchBendRange uint8 = 0x07
)

// Registered per-note controller indices, for use with
// NewMidi2RegisteredPerNote.
const (
	PerNoteModulation uint8 = 1
	PerNoteBreath     uint8 = 2
	PerNotePitch725   uint8 = 3
	PerNoteVolume     uint8 = 7
	PerNoteBalance    uint8 = 8
	PerNotePan        uint8 = 10
	PerNoteExpression uint8 = 11
	PerNoteSound1     uint8 = 70
	PerNoteSound2     uint8 = 71
	PerNoteSound3     uint8 = 72
	PerNoteSound4     uint8 = 73
	PerNoteSound5     uint8 = 74
	PerNoteFX1Depth   uint8 = 91
	PerNoteFX2Depth   uint8 = 92
	PerNoteFX3Depth   uint8 = 93
	PerNoteFX4Depth   uint8 = 94
	PerNoteFX5Depth   uint8 = 95
)

// PerNoteControllerName names a registered per-note controller index for
// diagnostics.
func PerNoteControllerName(index uint8) string {
	switch index {
	case PerNoteModulation:
		return "modulation"
	case PerNoteBreath:
		return "breath"
	case PerNotePitch725:
		return "pitch-7.25"
	case PerNoteVolume:
		return "volume"
	case PerNoteBalance:
		return "balance"
	case PerNotePan:
		return "pan"
	case PerNoteExpression:
		return "expression"
	case PerNoteSound1, PerNoteSound2, PerNoteSound3, PerNoteSound4, PerNoteSound5:
		return "sound-controller"
	case PerNoteFX1Depth, PerNoteFX2Depth, PerNoteFX3Depth, PerNoteFX4Depth, PerNoteFX5Depth:
		return "fx-depth"
	}
	return "other"
}
