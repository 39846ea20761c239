package propcell

import "fmt"

// DebugMode enables debug logging of alert dispatch and binding changes.
// This should be set at startup and not changed during runtime.
var DebugMode bool

func debugf(format string, args ...any) {
	if DebugMode {
		fmt.Printf(format+"\n", args...)
	}
}
