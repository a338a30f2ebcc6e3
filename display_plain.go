//go:build noframetrace

package spanreport

import "fmt"

// Display renders the error's plain text. The frame trace suffix is
// compiled out under the noframetrace tag; the captured frame remains
// available through Span() and Emit().
func (h *Handler) Display(err error, s fmt.State, verb rune) {
	fmt.Fprintf(s, "%v", err)
}
