package smartkeys

import (
	_ "embed"
	"strings"

	"golang.org/x/mod/semver"
)

//go:embed VERSION
var embeddedVersion string

// Version returns the library version without the leading `v`.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag for Version.
func VersionTag() string {
	return "v" + Version()
}

// VersionIsCanonical reports whether the embedded version is a canonical
// SemVer tag: all three components present, no build metadata.
func VersionIsCanonical() bool {
	tag := VersionTag()
	return semver.IsValid(tag) && semver.Canonical(tag) == tag
}

// IsPrerelease reports whether the embedded version carries a prerelease
// suffix, as in 0.2.0-rc.1.
func IsPrerelease() bool {
	return semver.Prerelease(VersionTag()) != ""
}

// Compatible reports whether a host built against tag can load this
// version: same major and not newer. Pre-1.0 versions must match the minor
// version as well.
func Compatible(tag string) bool {
	cur := VersionTag()
	if !semver.IsValid(tag) || semver.Compare(tag, cur) > 0 {
		return false
	}
	if semver.Major(cur) == "v0" {
		return semver.MajorMinor(tag) == semver.MajorMinor(cur)
	}
	return semver.Major(tag) == semver.Major(cur)
}
