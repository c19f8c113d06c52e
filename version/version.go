package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a parsed semantic version identifier. Major and minor are always
// present; the patch level and pre-release tag are optional. An absent patch
// level is equivalent to 0 in every comparison (never "undefined"), and a
// present pre-release tag is a non-empty sequence of dot-separated identifiers.
type Version struct {
	Raw        string
	Major      uint64
	Minor      uint64
	Patch      *uint64
	PreRelease string
}

// NewVersion parses a dotted version string of the form
// "major.minor[.patch][-preRelease]". A leading "v" is tolerated and build
// metadata after "+" is ignored, since it never participates in precedence.
func NewVersion(raw string) (*Version, error) {
	version := &Version{
		Raw: raw,
	}

	if err := version.parse(); err != nil {
		return nil, invalidVersionError(raw, err)
	}

	return version, nil
}

// MustVersion is meant for testing and for synthesizing versions from trusted
// input, do not use it on anything user-provided.
func MustVersion(raw string) *Version {
	version, err := NewVersion(raw)
	if err != nil {
		panic(err)
	}
	return version
}

func (v *Version) parse() error {
	remaining := strings.TrimPrefix(strings.TrimSpace(v.Raw), "v")
	if remaining == "" {
		return fmt.Errorf("empty version")
	}

	if idx := strings.Index(remaining, "+"); idx != -1 {
		remaining = remaining[:idx]
	}

	if idx := strings.Index(remaining, "-"); idx != -1 {
		v.PreRelease = remaining[idx+1:]
		remaining = remaining[:idx]
		if v.PreRelease == "" {
			return fmt.Errorf("empty pre-release tag")
		}
	}

	fields := strings.Split(remaining, ".")
	if len(fields) < 2 || len(fields) > 3 {
		return fmt.Errorf("expected 2 or 3 numeric fields, found %d", len(fields))
	}

	values := make([]uint64, len(fields))
	for i, field := range fields {
		value, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return fmt.Errorf("non-numeric field %q: %w", field, err)
		}
		values[i] = value
	}

	v.Major = values[0]
	v.Minor = values[1]
	if len(values) == 3 {
		v.Patch = &values[2]
	}

	return nil
}

// PatchLevel returns the effective patch level, defaulting to 0 when absent.
func (v *Version) PatchLevel() uint64 {
	if v.Patch == nil {
		return 0
	}
	return *v.Patch
}

func (v *Version) HasPreRelease() bool {
	return v.PreRelease != ""
}

func (v Version) String() string {
	return v.Raw
}
