package version

import "fmt"

const (
	EQ  Operator = "="
	GT  Operator = ">"
	LT  Operator = "<"
	GTE Operator = ">="
	LTE Operator = "<="

	// Tilde approximately matches the given version: at least the version
	// itself and below the next minor (or major, when no patch level is given).
	Tilde Operator = "~"

	// Caret matches versions compatible with the given version: at least the
	// version itself and below the next major.
	Caret Operator = "^"

	// Pin matches an opaque non-semantic identifier (e.g. a commit hash)
	// exactly.
	Pin Operator = "@"
)

type Operator string

func parseOperator(op string) (Operator, error) {
	switch op {
	case string(EQ), "":
		return EQ, nil
	case string(GT):
		return GT, nil
	case string(GTE):
		return GTE, nil
	case string(LT):
		return LT, nil
	case string(LTE):
		return LTE, nil
	case string(Tilde):
		return Tilde, nil
	case string(Caret):
		return Caret, nil
	case string(Pin):
		return Pin, nil
	}
	return "", fmt.Errorf("unknown operator: '%s'", op)
}
