package version

import (
	"fmt"
	"regexp"
	"strings"
)

// operator group only matches on range operators (relational, tilde, caret, pin)
// version group matches on everything except for whitespace and operators
var constraintPartPattern = regexp.MustCompile(`(?P<operator>[~^@><=]*)\s*(?P<version>[^<>=~@^\s,|]+)`)

type constraintUnit struct {
	rangeOperator Operator
	version       string

	// ref is the parsed form of version; nil for pin units, which stay opaque
	ref *Version
}

func splitConstraintPhrase(phrase string) ([]constraintUnit, error) {
	// this implies that the returned set of constraint parts should be ANDed together
	if strings.Contains(phrase, "(") || strings.Contains(phrase, ")") {
		return nil, fmt.Errorf("version constraint groups are unsupported (use of parentheses)")
	}

	if strings.Contains(phrase, "||") {
		return nil, fmt.Errorf("version constraint part should not have an OR")
	}

	matches := constraintPartPattern.FindAllStringSubmatch(phrase, -1)
	result := make([]constraintUnit, 0, len(matches))
	for _, match := range matches {
		pair := make(map[string]string)
		for i, name := range constraintPartPattern.SubexpNames() {
			if i != 0 && name != "" {
				pair[name] = match[i]
			}
		}

		op, err := parseOperator(pair["operator"])
		if err != nil {
			return nil, fmt.Errorf("unable to parse constraint operator from %q: %w", phrase, err)
		}
		result = append(result, constraintUnit{
			rangeOperator: op,
			version:       trimQuotes(strings.TrimSpace(pair["version"])),
		})
	}

	return result, nil
}

// trimQuotes removes surrounding single or double quotes, if both are present.
func trimQuotes(s string) string {
	if len(s) >= 2 {
		if c := s[len(s)-1]; s[0] == c && (c == '"' || c == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// satisfies reports whether the candidate version meets this unit.
func (c *constraintUnit) satisfies(candidate *Version) bool {
	switch c.rangeOperator {
	case Pin:
		// pins are opaque identifiers, never semantically compared
		return EqualNonVersion(c.version, candidate.Raw)
	case Tilde:
		return IsApproximately(c.ref, candidate)
	case Caret:
		return IsCompatible(c.ref, candidate)
	}
	return c.Satisfied(candidate.Compare(c.ref))
}

// Satisfied interprets a comparison of a candidate against this unit's version
// under the unit's relational operator.
func (c *constraintUnit) Satisfied(comparison Result) bool {
	switch c.rangeOperator {
	case EQ:
		return comparison == Equal
	case GT:
		return comparison == Greater
	case GTE:
		return comparison != Less
	case LT:
		return comparison == Less
	case LTE:
		return comparison != Greater
	default:
		panic(fmt.Errorf("unknown relational operator: %s", c.rangeOperator))
	}
}
