package conv

const hexd = "0123456789ABCDEF"

// Hex8 writes "0x" and two uppercase hex digits of b into buf.
// buf must hold at least 4 bytes; a shorter buf yields an empty slice.
func Hex8(buf []byte, b uint8) []byte {
	if len(buf) < 4 {
		return buf[:0]
	}
	buf[0] = '0'
	buf[1] = 'x'
	buf[2] = hexd[b>>4]
	buf[3] = hexd[b&0xF]
	return buf[:4]
}

// Bin8 writes the 8 bits of b, MSB first, as '0'/'1' into buf.
func Bin8(buf []byte, b uint8) []byte {
	if len(buf) < 8 {
		return buf[:0]
	}
	for i := 0; i < 8; i++ {
		if b&(0x80>>i) != 0 {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return buf[:8]
}

// Hex8String is Hex8 for log lines that can afford one allocation.
func Hex8String(b uint8) string {
	var buf [4]byte
	return string(Hex8(buf[:], b))
}

// Bin8String is Bin8 for log lines that can afford one allocation.
func Bin8String(b uint8) string {
	var buf [8]byte
	return string(Bin8(buf[:], b))
}
