// Package hex formats machine words as fixed-width hexadecimal text, the
// way a trace or disassembly listing wants them: no "0x" prefix, no sign,
// always padded to full width.
package hex

import "strings"

var hexDigits = "0123456789ABCDEF"

// FormatWord appends the 16-bit words in half, each as 4 hex digits
// followed by a space, to str.
func FormatWord(str *strings.Builder, half []uint16) {
	for _, word := range half {
		shift := 12
		for range 4 {
			str.WriteByte(hexDigits[(word>>shift)&0xf])
			shift -= 4
		}
		str.WriteByte(' ')
	}
}

// FormatByte appends a single byte as 2 hex digits to str.
func FormatByte(str *strings.Builder, b byte) {
	str.WriteByte(hexDigits[(b>>4)&0xf])
	str.WriteByte(hexDigits[b&0xf])
}
