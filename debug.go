package polyclip

import (
	"fmt"
	"io"
	"os"
)

// Debug enables detailed tracing of the scanbeam loop to DebugOutput.
// It is a package-level switch rather than a per-Clipper64 field so
// that it can be flipped from a failing test without threading a
// logger through every constructor; production code leaves it false,
// where every debug* call below is a single branch.
var (
	Debug       = false
	DebugOutput io.Writer = os.Stdout
)

func debugf(format string, args ...interface{}) {
	if Debug {
		fmt.Fprintf(DebugOutput, "[polyclip] "+format+"\n", args...)
	}
}

func debugPhase(phase string) {
	if Debug {
		fmt.Fprintf(DebugOutput, "\n=== %s ===\n", phase)
	}
}

func debugAEL(head *Active) {
	if !Debug {
		return
	}
	fmt.Fprintf(DebugOutput, "  AEL:")
	for e := head; e != nil; e = e.NextInAEL {
		fmt.Fprintf(DebugOutput, " [x=%d dx=%.3f wd=%d wc=%d/%d %s]", e.CurrX, e.Dx, e.WindDx, e.WindCount, e.WindCount2, e.LocalMin.PolyType)
	}
	fmt.Fprintln(DebugOutput)
}

func debugOutRec(label string, or *OutRec) {
	if !Debug || or == nil {
		return
	}
	fmt.Fprintf(DebugOutput, "  %s (OutRec #%d, state=%v):", label, or.Idx, or.State)
	if or.Pts == nil {
		fmt.Fprintln(DebugOutput, " (empty)")
		return
	}
	start := or.Pts
	op := start
	n := 0
	for {
		fmt.Fprintf(DebugOutput, " %v", op.Pt)
		op = op.Next
		n++
		if op == start || n > 200 {
			break
		}
	}
	fmt.Fprintln(DebugOutput)
}
