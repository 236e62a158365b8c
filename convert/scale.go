package convert

// scaleUp widens a control value from srcBits to dstBits using the UMP
// min-center-max algorithm: 0 maps to 0, the source maximum to the
// destination maximum, the source center to the destination center, and
// the mapping is monotonic. Values above center have the source's
// significant bits repeated into the freed low bits.
func scaleUp(value uint32, srcBits, dstBits uint) uint32 {
	scaleBits := dstBits - srcBits
	shifted := value << scaleBits

	srcCenter := uint32(1) << (srcBits - 1)
	if value <= srcCenter {
		return shifted
	}

	repeatBits := srcBits - 1
	repeat := value & (1<<repeatBits - 1)
	if scaleBits > repeatBits {
		repeat <<= scaleBits - repeatBits
	} else {
		repeat >>= repeatBits - scaleBits
	}
	for repeat != 0 {
		shifted |= repeat
		repeat >>= repeatBits
	}
	return shifted
}

// Scale7To16 widens a 7-bit value to 16 bits.
func Scale7To16(value uint8) uint16 {
	return uint16(scaleUp(uint32(value&0x7F), 7, 16))
}

// Scale7To32 widens a 7-bit value to 32 bits.
func Scale7To32(value uint8) uint32 {
	return scaleUp(uint32(value&0x7F), 7, 32)
}

// Scale14To32 widens a 14-bit value to 32 bits, preserving the center
// value 0x2000 at 0x80000000.
func Scale14To32(value uint16) uint32 {
	return scaleUp(uint32(value&0x3FFF), 14, 32)
}
