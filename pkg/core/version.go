package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Level is the granularity of a version bump.
type Level int

const (
	LevelMajor Level = iota
	LevelMinor
	LevelPatch
)

// ParseLevel maps a textual level name to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "major":
		return LevelMajor, nil
	case "minor":
		return LevelMinor, nil
	case "patch":
		return LevelPatch, nil
	}
	return 0, fmt.Errorf("unknown change level: %q", s)
}

func (l Level) String() string {
	switch l {
	case LevelMajor:
		return "major"
	case LevelMinor:
		return "minor"
	case LevelPatch:
		return "patch"
	}
	return "unknown"
}

// Version is a three-component ordinal (major.minor.patch).
// It is a value type; derivation always produces a new value.
type Version struct {
	Major uint16
	Minor uint16
	Patch uint16
}

// ParseVersion parses the canonical dot form "M.m.p".
func ParseVersion(s string) (Version, error) {
	return parseVersionFields(s, ".")
}

// ParseFileSafeVersion parses the dash form "M-m-p" used inside file name
// tokens, where dots would collide with extension separators.
func ParseFileSafeVersion(s string) (Version, error) {
	return parseVersionFields(s, "-")
}

func parseVersionFields(s, sep string) (Version, error) {
	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	fields := make([]uint16, 3)
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 16)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
		}
		fields[i] = uint16(n)
	}

	return Version{Major: fields[0], Minor: fields[1], Patch: fields[2]}, nil
}

// String renders the canonical dot form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// FileSafe renders the dash form used inside file name tokens.
func (v Version) FileSafe() string {
	return fmt.Sprintf("%d-%d-%d", v.Major, v.Minor, v.Patch)
}

// Bump increments the receiver in place. Incrementing a level resets all
// lower levels to zero.
func (v *Version) Bump(level Level) {
	switch level {
	case LevelMajor:
		v.Major++
		v.Minor = 0
		v.Patch = 0
	case LevelMinor:
		v.Minor++
		v.Patch = 0
	case LevelPatch:
		v.Patch++
	}
}

// Next derives the child version for the given change level without
// mutating the receiver.
func (v Version) Next(level Level) Version {
	child := v
	child.Bump(level)
	return child
}

// Compare orders versions lexicographically by (major, minor, patch).
// It returns -1, 0 or 1.
func (v Version) Compare(o Version) int {
	switch {
	case v.Major != o.Major:
		return cmpUint16(v.Major, o.Major)
	case v.Minor != o.Minor:
		return cmpUint16(v.Minor, o.Minor)
	default:
		return cmpUint16(v.Patch, o.Patch)
	}
}

func cmpUint16(a, b uint16) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
