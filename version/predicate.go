package version

import "fmt"

// The two-argument predicates below follow the reference/candidate calling
// convention used throughout range evaluation: the first argument is the fixed
// reference bound and the second is the candidate under test, so the predicate
// name describes where the candidate sits relative to the reference.
// IsGreaterThan(a, b) answers "is b greater than a", not the other way
// around. Call sites and the constraint layer depend on this exact polarity.

// Equals reports whether candidate b has the same precedence as reference a.
func Equals(a, b *Version) bool {
	return a.Compare(b) == Equal
}

// IsGreaterThan reports whether candidate b is strictly greater than reference a.
func IsGreaterThan(a, b *Version) bool {
	return a.Compare(b) == Less
}

// IsGreaterThanOrEqualTo reports whether candidate b is at least reference a.
func IsGreaterThanOrEqualTo(a, b *Version) bool {
	return a.Compare(b) != Greater
}

// IsLessThan reports whether candidate b is strictly smaller than reference a.
func IsLessThan(a, b *Version) bool {
	return a.Compare(b) == Greater
}

// IsLessThanOrEqualTo reports whether candidate b is at most reference a.
func IsLessThanOrEqualTo(a, b *Version) bool {
	return a.Compare(b) != Less
}

// Avoid reports whether candidate b is anything other than reference a.
func Avoid(a, b *Version) bool {
	return !Equals(a, b)
}

// IsApproximately implements the tilde range: candidate b satisfies ~a when it
// is at least a and below the next minor release (or the next major release
// when a carries no positive patch level). A pre-release landing on the
// excluded boundary never satisfies the range, even though pre-releases sort
// below their release and would pass the raw comparison.
func IsApproximately(a, b *Version) bool {
	if !IsGreaterThanOrEqualTo(a, b) {
		return false
	}

	var bound *Version
	if a.PatchLevel() > 0 {
		bound = newBoundary(a.Major, a.Minor+1)
		if b.HasPreRelease() && b.Major == bound.Major && b.Minor == bound.Minor {
			return false
		}
	} else {
		bound = newBoundary(a.Major+1, 0)
		if b.HasPreRelease() && b.Major == bound.Major {
			return false
		}
	}

	return IsLessThan(bound, b)
}

// IsCompatible implements the caret range: candidate b satisfies ^a when it is
// at least a and below the next major release. The boundary pre-release
// exclusion is the same as in IsApproximately, keyed on the major alone.
func IsCompatible(a, b *Version) bool {
	if !IsGreaterThanOrEqualTo(a, b) {
		return false
	}

	bound := newBoundary(a.Major+1, 0)
	if b.HasPreRelease() && b.Major == bound.Major {
		return false
	}

	return IsLessThan(bound, b)
}

// EqualNonVersion compares two opaque pin identifiers (e.g. commit hashes) for
// exact, case-sensitive equality, bypassing all semantic comparison.
func EqualNonVersion(a, b string) bool {
	return a == b
}

// newBoundary synthesizes the exclusive upper bound of a range from its
// numeric fields. Every string generated here is a well-formed dotted pair, so
// a parse failure is an invariant violation rather than a recoverable error.
func newBoundary(major, minor uint64) *Version {
	return MustVersion(fmt.Sprintf("%d.%d", major, minor))
}
