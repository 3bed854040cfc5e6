package infinitelist

import (
	"fmt"
	"math"
)

// Domain restricts the indices a List accepts.
type Domain int

// Supported domains.
const (
	// Unbounded lists accept every int.
	Unbounded Domain = iota
	// LeftBounded lists accept indices <= 0.
	LeftBounded
	// RightBounded lists accept indices >= 0.
	RightBounded
)

// Contains reports whether index belongs to the domain.
func (domain Domain) Contains(index int) bool {
	switch domain {
	case LeftBounded:
		return index <= 0
	case RightBounded:
		return index >= 0
	default:
		return true
	}
}

// Valid reports whether domain is one of the declared constants.
func (domain Domain) Valid() bool {
	return domain >= Unbounded && domain <= RightBounded
}

func (domain Domain) String() string {
	switch domain {
	case Unbounded:
		return "unbounded"
	case LeftBounded:
		return "left"
	case RightBounded:
		return "right"
	default:
		return fmt.Sprintf("Domain(%d)", int(domain))
	}
}

// ParseDomain maps a domain name back to its constant.
func ParseDomain(name string) (Domain, error) {
	switch name {
	case "", "unbounded":
		return Unbounded, nil
	case "left":
		return LeftBounded, nil
	case "right":
		return RightBounded, nil
	default:
		return Unbounded, fmt.Errorf("%w: unknown domain %q", ErrDomain, name)
	}
}

// check is the single entry point for the domain guard.
func (domain Domain) check(index int) error {
	if domain.Contains(index) {
		return nil
	}

	return fmt.Errorf("%w: index %d is outside the %s domain", ErrOutOfBounds, index, domain)
}

// checkRange guards every index of the half-open interval [start, stop).
func (domain Domain) checkRange(start, stop int) error {
	if start >= stop {
		return nil
	}

	err := domain.check(start)
	if err != nil {
		return err
	}

	return domain.check(stop - 1)
}

// bounds returns the smallest and largest index of the domain.
func (domain Domain) bounds() (lo, hi int) {
	switch domain {
	case LeftBounded:
		return math.MinInt, 0
	case RightBounded:
		return 0, math.MaxInt
	default:
		return math.MinInt, math.MaxInt
	}
}
