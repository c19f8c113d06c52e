package version

import (
	"bytes"
	"fmt"
	"strings"
	"text/scanner"

	"github.com/hashicorp/go-multierror"
)

type rangeExpression struct {
	units [][]constraintUnit // only supports or'ing a group of and'ed units
}

func parseRangeExpression(phrase string) (rangeExpression, error) {
	orParts, err := scanExpression(phrase)
	if err != nil {
		return rangeExpression{}, fmt.Errorf("unable to scan constraint expression from=%q : %w", phrase, err)
	}

	var errs error
	orUnits := make([][]constraintUnit, 0, len(orParts))
	for _, andParts := range orParts {
		andUnits := make([]constraintUnit, 0, len(andParts))
		for _, part := range andParts {
			units, err := splitConstraintPhrase(part)
			if err != nil {
				errs = multierror.Append(errs, err)
				continue
			}
			if len(units) == 0 {
				// e.g. a bare operator with no version; dropping it would make
				// the constraint match more than the author wrote
				errs = multierror.Append(errs, fmt.Errorf("unable to parse constraint unit: %q", part))
				continue
			}
			for _, unit := range units {
				if unit.rangeOperator != Pin {
					ref, err := NewVersion(unit.version)
					if err != nil {
						errs = multierror.Append(errs, fmt.Errorf("unable to parse constraint version from %q: %w", part, err))
						continue
					}
					unit.ref = ref
				}
				andUnits = append(andUnits, unit)
			}
		}
		orUnits = append(orUnits, andUnits)
	}

	if errs != nil {
		return rangeExpression{}, errs
	}

	if len(orUnits) == 0 {
		return rangeExpression{}, fmt.Errorf("no constraint units found in %q", phrase)
	}

	return rangeExpression{
		units: orUnits,
	}, nil
}

func (e rangeExpression) satisfied(version *Version) bool {
	oneSatisfied := false
	for _, andUnits := range e.units {
		allSatisfied := true
		for i := range andUnits {
			if !andUnits[i].satisfies(version) {
				allSatisfied = false
			}
		}
		oneSatisfied = oneSatisfied || allSatisfied
	}
	return oneSatisfied
}

func scanExpression(phrase string) ([][]string, error) {
	var scnr scanner.Scanner
	var orGroups [][]string // all units of a group of and'd groups or'd together
	var andGroup []string   // most current group of and'd units
	var buf bytes.Buffer    // most current single unit value
	var lastToken string

	captureUnit := func() {
		if buf.Len() > 0 {
			andGroup = append(andGroup, buf.String())
			buf.Reset()
		}
	}

	captureAndGroup := func() {
		if len(andGroup) > 0 {
			orGroups = append(orGroups, andGroup)
			andGroup = nil
		}
	}

	scnr.Init(strings.NewReader(phrase))

	scnr.Error = func(*scanner.Scanner, string) {
		// the scanner invokes this callback on tokenization errors and by default
		// prints them to stdout. All tokens are still seen by the loop below and
		// accumulated into the current unit value, so input that is invalid for
		// the scanner's Go-like token set (e.g. "3.e") is fine here and the
		// errors are deliberately swallowed.
	}

	tokenRune := scnr.Scan()
	for tokenRune != scanner.EOF {
		currentToken := scnr.TokenText()
		switch {
		case currentToken == ",":
			captureUnit()
		case currentToken == "|" && lastToken == "|":
			captureUnit()
			captureAndGroup()
		case currentToken == "(" || currentToken == ")":
			return nil, fmt.Errorf("parenthetical expressions are not supported yet")
		case currentToken != "|":
			buf.Write([]byte(currentToken))
		}
		lastToken = currentToken
		tokenRune = scnr.Scan()
	}
	captureUnit()
	captureAndGroup()

	return orGroups, nil
}
