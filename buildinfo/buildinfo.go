package buildinfo

import (
	"fmt"
	"strconv"
	"time"
)

var (
	Version       = "head" // set by command-line on CI release builds
	BuiltAt       = ""     // set by command-line on CI release builds
	Commit        = ""     // set by command-line on CI release builds
	VersionString = ""     // formatted on boot from 'version' and 'builtAt'
)

func init() {
	buildVersionString()
}

// BuildTime parses the build timestamp stamped in at link time.
// It returns nil for dev builds (no timestamp) and for garbage input.
func BuildTime() *time.Time {
	if BuiltAt == "" {
		return nil
	}

	epoch, err := strconv.ParseInt(BuiltAt, 10, 64)
	if err != nil {
		return nil
	}

	t := time.Unix(epoch, 0)
	return &t
}

func buildVersionString() {
	switch {
	case BuiltAt == "":
		VersionString = fmt.Sprintf("%s, no build date", Version)
	case BuildTime() == nil:
		VersionString = fmt.Sprintf("%s, invalid build date", Version)
	default:
		VersionString = fmt.Sprintf("%s, built on %s", Version, BuildTime().Format("Jan _2 2006 @ 15:04:05"))
	}

	if Commit != "" {
		VersionString = fmt.Sprintf("%s, ref %s", VersionString, Commit)
	}
}
