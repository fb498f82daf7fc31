package nfc

import (
	"fmt"
	"strings"
)

// FormatUID renders raw tag UID bytes as uppercase hex with no separators,
// e.g. []byte{0x04, 0xA1, 0xB2, 0xC3} -> "04A1B2C3". The result always has
// an even number of characters.
func FormatUID(raw []byte) string {
	var b strings.Builder
	b.Grow(len(raw) * 2)
	for _, x := range raw {
		fmt.Fprintf(&b, "%02X", x)
	}
	return b.String()
}
