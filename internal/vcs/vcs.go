package vcs

import (
	"fmt"
	"runtime/debug"
)

// Version reports the module version, falling back to the VCS revision for
// builds made from a checkout.
func Version() string {
	var (
		revision string
		modified bool
	)

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}

	if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if revision == "" {
		return bi.Main.Version
	}

	if modified {
		return fmt.Sprintf("%s-dirty", revision)
	}

	return revision
}
