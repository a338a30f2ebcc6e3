//go:build !noframetrace

package spanreport

import (
	"fmt"

	"github.com/tracekit/spanreport/internal/ansi"
)

// Display renders the error's plain text. In the alternate form it appends
// the captured frame chain, innermost first, one line per frame including
// frames without fields. Field text is scrubbed of terminal escapes before
// it is embedded.
func (h *Handler) Display(err error, s fmt.State, verb rune) {
	fmt.Fprintf(s, "%v", err)

	if !s.Flag('+') {
		return
	}

	h.frame.Walk(func(target, name, fields string) bool {
		fmt.Fprintf(s, "\n• %s::%s", target, name)
		if fields != "" {
			fmt.Fprintf(s, "{%s}", ansi.Strip(fields))
		}
		return true
	})
}
