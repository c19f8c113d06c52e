package version

import (
	"fmt"

	"github.com/pinrange/pinrange/internal/log"
)

// Constraint is a dependency constraint phrase that candidate versions can be
// checked against. Phrases combine operator/version units (e.g. ">=1.2.3",
// "~1.2", "^2.0.1", "@8f3c0b1") with "," for AND and "||" for OR.
type Constraint interface {
	fmt.Stringer
	Satisfied(*Version) (bool, error)
}

type constraint struct {
	raw        string
	expression rangeExpression
}

func GetConstraint(phrase string) (Constraint, error) {
	if phrase == "" {
		// an empty constraint is always satisfied
		return constraint{}, nil
	}

	expression, err := parseRangeExpression(phrase)
	if err != nil {
		return nil, fmt.Errorf("could not create constraint: %w", err)
	}

	log.Tracef("parsed constraint %q into %d OR group(s)", phrase, len(expression.units))

	return constraint{
		raw:        phrase,
		expression: expression,
	}, nil
}

// MustGetConstraint is meant for testing only, do not use within the library
func MustGetConstraint(phrase string) Constraint {
	c, err := GetConstraint(phrase)
	if err != nil {
		panic(err)
	}
	return c
}

func (c constraint) Satisfied(version *Version) (bool, error) {
	if c.raw == "" {
		// an empty constraint is always satisfied
		return true, nil
	}
	if version == nil {
		return false, ErrNoVersionProvided
	}
	return c.expression.satisfied(version), nil
}

func (c constraint) String() string {
	if c.raw == "" {
		return "none"
	}
	return c.raw
}
