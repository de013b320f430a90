package interlinked

import (
	"fmt"
	"os"
)

// warnf reports a non-fatal problem to stderr. Used for one-shot
// configuration warnings at construction time; per-frame paths never warn.
func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[interlinked] warning: "+format+"\n", args...)
}
