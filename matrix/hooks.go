package matrix

import (
	"fmt"
	"os"
)

// DieFunc is the signature of the engine's "die with message" hook (spec
// ??6). The default implementation prints to stderr and aborts the
// process; install a recovering override with SetDieHook for tests or for
// callers that translate fatal engine errors into a panic/recover or a
// thread-local error flag.
type DieFunc func(format string, args ...any)

var dieHook DieFunc = defaultDie

func defaultDie(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "gf2ri: fatal: "+format+"\n", args...)
	os.Exit(1)
}

// SetDieHook installs f as the engine's die hook. Passing nil restores the
// default stderr+exit behavior.
func SetDieHook(f DieFunc) {
	if f == nil {
		f = defaultDie
	}
	dieHook = f
}

// die invokes the installed die hook. No routine in this module calls it:
// mmc falls back to a plain allocation when an mmap fails, and dimension
// mismatches are returned as sentinel errors. It never returns under the
// default hook, but a caller-installed hook may choose to longjmp/panic
// instead, so a call site must not assume control flow stops here.
func die(format string, args ...any) {
	dieHook(format, args...)
}
