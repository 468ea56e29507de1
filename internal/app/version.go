package app

import (
	"fmt"
	"io"
	"runtime"
)

// Build information, set with -ldflags "-X".
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// HasVersionFlag reports whether args request the version banner.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--version", "-version", "-V":
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner to out.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "stencilcalc %s\n", Version)
	fmt.Fprintf(out, "  commit:  %s\n", Commit)
	fmt.Fprintf(out, "  built:   %s\n", BuildDate)
	fmt.Fprintf(out, "  go:      %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
