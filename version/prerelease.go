package version

import "strings"

// comparePreRelease orders two pre-release tags per semver.org: both tags are
// split on "." and walked identifier by identifier. Numeric identifiers
// compare as integers and always sort below alphanumeric ones, alphanumeric
// identifiers compare ASCII byte-wise, and a tag extending a fully-matching
// prefix with additional identifiers is the greater one. Single linear pass.
func comparePreRelease(a, b string) Result {
	aIdentifiers := strings.Split(a, ".")
	bIdentifiers := strings.Split(b, ".")

	for i, aIdent := range aIdentifiers {
		if i >= len(bIdentifiers) {
			return Greater
		}
		bIdent := bIdentifiers[i]

		aNumeric := isNumericIdentifier(aIdent)
		bNumeric := isNumericIdentifier(bIdent)

		var result Result
		switch {
		case aNumeric && bNumeric:
			result = compareNumericIdentifiers(aIdent, bIdent)
		case aNumeric:
			result = Less
		case bNumeric:
			result = Greater
		default:
			result = Result(strings.Compare(aIdent, bIdent))
		}

		if result != Equal {
			return result
		}
	}

	if len(aIdentifiers) < len(bIdentifiers) {
		return Less
	}
	return Equal
}

// isNumericIdentifier reports whether every character of the identifier is an
// ASCII digit. An empty identifier, or one carrying a sign or decimal point,
// is alphanumeric, not numeric.
func isNumericIdentifier(identifier string) bool {
	if identifier == "" {
		return false
	}
	for i := 0; i < len(identifier); i++ {
		if identifier[i] < '0' || identifier[i] > '9' {
			return false
		}
	}
	return true
}

// compareNumericIdentifiers compares two all-digit identifiers as integers
// without parsing them into machine words, so arbitrarily long digit runs
// cannot overflow: after stripping leading zeros the longer run is the larger
// value, and equal-length runs compare byte-wise.
func compareNumericIdentifiers(a, b string) Result {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")

	if len(a) != len(b) {
		if len(a) < len(b) {
			return Less
		}
		return Greater
	}
	return Result(strings.Compare(a, b))
}
