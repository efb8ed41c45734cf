// This file is part of Pokeycore.
//
// Pokeycore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Pokeycore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Pokeycore.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the version and vcs revision of the pokeycore
// binary. The version number is injected at link time:
//
//	go build -ldflags "-X github.com/jetsetilly/pokeycore/version.number=v0.1.0"
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application
const ApplicationName = "Pokeycore"

// set by the linker. if number is empty then the binary was not built with
// the release ldflags
var number string

// vcs revision. suffixed with "+dirty" if the source has uncommitted changes
var revision string

// "unreleased" if built from a checkout without a version number. "local" if
// there is no version number and no vcs information (eg. "go run .")
var version string

// Version returns the version string, the revision string and whether this is a
// numbered "release" version.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// Banner returns a single line describing the application and its version,
// suitable for the first line of command line output.
func Banner() string {
	ver, rev, rel := Version()
	if rel {
		return fmt.Sprintf("%s %s", ApplicationName, ver)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, ver, rev)
}

func init() {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	switch {
	case vcsRevision == "":
		revision = "no revision information"
	case vcsModified:
		revision = fmt.Sprintf("%s+dirty", vcsRevision)
	default:
		revision = vcsRevision
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
