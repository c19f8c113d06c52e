package version

// Result is the outcome of comparing two versions. The underlying values keep
// the usual comparator sign convention: negative when the left operand is
// smaller, positive when it is larger.
type Result int

const (
	Less    Result = -1
	Equal   Result = 0
	Greater Result = 1
)

func (r Result) String() string {
	switch r {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	}
	return "unknown"
}

// Compare compares this version to another version following semver.org
// precedence. This returns Less, Equal, or Greater if this version is smaller,
// equal, or larger than the other version, respectively.
func (v *Version) Compare(other *Version) Result {
	if result := v.compareCore(other); result != Equal {
		return result
	}

	// identical numeric triples: a version carrying a pre-release tag sorts
	// strictly below its corresponding release
	switch {
	case v.HasPreRelease() && !other.HasPreRelease():
		return Less
	case !v.HasPreRelease() && other.HasPreRelease():
		return Greater
	case !v.HasPreRelease() && !other.HasPreRelease():
		return Equal
	}

	return comparePreRelease(v.PreRelease, other.PreRelease)
}

// compareCore orders the (major, minor, patch) triple lexicographically,
// ignoring any pre-release tags. A missing patch level counts as 0.
func (v *Version) compareCore(other *Version) Result {
	if result := compareUint(v.Major, other.Major); result != Equal {
		return result
	}
	if result := compareUint(v.Minor, other.Minor); result != Equal {
		return result
	}
	return compareUint(v.PatchLevel(), other.PatchLevel())
}

func compareUint(a, b uint64) Result {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	}
	return Equal
}
