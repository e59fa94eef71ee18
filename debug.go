package cairn

import (
	"fmt"
	"io"
	"os"
)

// debugOutput receives debug traces and warnings.
var debugOutput io.Writer = os.Stderr

// SetDebugOutput redirects debug traces and warnings, which go to stderr by
// default. Passing nil restores stderr.
func SetDebugOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	debugOutput = w
}

// debugf prints a "[cairn]"-prefixed line when debug mode is on.
func debugf(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(debugOutput, "[cairn] "+format+"\n", args...)
}

// debugCheckDisposed panics with a descriptive message when a disposed marker
// is used in a tree operation. Only called in debug mode; in release mode
// callers skip this entirely.
func debugCheckDisposed(m *Marker, op string) {
	if m.disposed {
		panic(fmt.Sprintf("cairn debug: %s on disposed marker %q (ID %s)", op, m.description, m.id))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(m *Marker) {
	depth := 0
	for p := m; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(debugOutput, "[cairn] warning: tree depth %d exceeds %d (marker %q)\n",
			depth, debugMaxTreeDepth, m.description)
	}
}

// debugCheckChildCount warns if a marker has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(m *Marker) {
	if len(m.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(debugOutput, "[cairn] warning: marker %q has %d children (threshold %d)\n",
			m.description, len(m.children), debugMaxChildCount)
	}
}
