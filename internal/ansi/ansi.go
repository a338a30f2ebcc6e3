// Package ansi removes ANSI terminal escape sequences from rendered text
// before it is embedded in another rendered output.
package ansi

import "strings"

// Strip returns s with every ANSI escape sequence removed, preserving all
// other characters in order. The scan keeps a single boolean state: an ESC
// (0x1B) turns output off, and everything up to and including the next 'm'
// (the SGR final byte) is dropped. An escape with no terminating 'm' drops
// the remainder of the string. Non-SGR sequences are not recognized
// specially, their content is dropped up to the next literal 'm'.
func Strip(s string) string {
	if !strings.ContainsRune(s, 0x1B) {
		return s
	}

	b := strings.Builder{}
	b.Grow(len(s))

	keep := true
	for _, r := range s {
		switch {
		case r == 0x1B:
			keep = false
		case !keep:
			if r == 'm' {
				keep = true
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
