// Package version reports what this build of dogewifi is and
// which tool dialects it can drive.
package version

import (
	"runtime"

	"github.com/carlmjohnson/versioninfo"
	dogewifi "github.com/dogeorg/dogewifi/pkg"
)

// set with -ldflags "-X github.com/dogeorg/dogewifi/pkg/version.release=..."
var release string

type Build struct {
	Commit string `json:"commit"`
	Dirty  bool   `json:"dirty"`
	GoOS   string `json:"goos"`
}

type Info struct {
	Release string          `json:"release"`
	Build   Build           `json:"build"`
	Drivers []dogewifi.Kind `json:"drivers"`

	// Detected is filled by callers that probed the host.
	Detected dogewifi.Kind `json:"detected,omitempty"`
}

func Get() Info {
	r := release
	if r == "" {
		r = "unknown"
	}

	return Info{
		Release: r,
		Build: Build{
			Commit: versioninfo.Revision,
			Dirty:  versioninfo.DirtyBuild,
			GoOS:   runtime.GOOS,
		},
		Drivers: dogewifi.Kinds(),
	}
}

// WithDetected records the dialect probing picked, or "none".
func (i Info) WithDetected(kind dogewifi.Kind, err error) Info {
	if err != nil || kind == "" {
		i.Detected = "none"
		return i
	}
	i.Detected = kind
	return i
}
