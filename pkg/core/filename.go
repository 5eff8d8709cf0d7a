package core

import (
	"fmt"
	"strings"
	"time"
)

// The token timestamp is YYYY-MM-DD-HH-MM-SS-ffffff±HHMM: microsecond
// precision with a numeric UTC offset, so tokens sort chronologically as
// plain strings. The literal "+" of a positive offset is unsafe in some
// filesystem and URL contexts, so it is substituted on encode.
const (
	tokenStampLen   = 31 // len("2006-01-02-15-04-05-000000-0700")
	tokenStampParse = "2006-01-02-15-04-05.000000-0700"
	plusPlaceholder = "-PLUS-"
)

// FileName is the sortable, filesystem-safe identifier of one snapshot:
// a (timestamp, version) pair with a lossless string encoding.
type FileName struct {
	Time    time.Time
	Version Version
}

// NewFileName stamps a file name with "now" from the given clock.
// A nil clock falls back to the system clock.
func NewFileName(version Version, clock Clock) FileName {
	if clock == nil {
		clock = SystemClock
	}
	return FileName{Time: clock.Now().Truncate(time.Microsecond), Version: version}
}

// ParseFileName decodes a token back to its (timestamp, version) pair.
func ParseFileName(token string) (FileName, error) {
	stamp, version, ok := strings.Cut(token, "_")
	if !ok || stamp == "" || version == "" {
		return FileName{}, fmt.Errorf("%w: %q", ErrMalformedToken, token)
	}

	stamp = strings.ReplaceAll(stamp, plusPlaceholder, "+")
	t, err := parseTokenStamp(stamp)
	if err != nil {
		return FileName{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, token)
	}

	v, err := ParseFileSafeVersion(version)
	if err != nil {
		return FileName{}, fmt.Errorf("file name version: %w", err)
	}

	return FileName{Time: t, Version: v}, nil
}

func parseTokenStamp(s string) (time.Time, error) {
	if len(s) != tokenStampLen || s[19] != '-' {
		return time.Time{}, fmt.Errorf("timestamp does not match pattern: %q", s)
	}
	// The pattern separates seconds from microseconds with a dash, which the
	// stdlib layout cannot express; rewrite it to a fractional second.
	return time.Parse(tokenStampParse, s[:19]+"."+s[20:])
}

// String encodes the token: "<timestamp>_<M-m-p>".
func (f FileName) String() string {
	stamp := f.Time.Format("2006-01-02-15-04-05") +
		fmt.Sprintf("-%06d", f.Time.Nanosecond()/1000) +
		f.Time.Format("-0700")
	stamp = strings.ReplaceAll(stamp, "+", plusPlaceholder)
	return stamp + "_" + f.Version.FileSafe()
}

// Path builds the storage path "<folder>/<token>.<extension>".
// Folder validation (no trailing separator) is the entity layer's job.
func (f FileName) Path(folder, extension string) string {
	return fmt.Sprintf("%s/%s.%s", folder, f.String(), extension)
}
