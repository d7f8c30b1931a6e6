package langtour

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSize is returned by ParseSize for names outside the enumeration.
var ErrUnknownSize = errors.New("unknown size")

// Size enumerates three size categories.
type Size int

const (
	Small  Size = iota + 1 // 1
	Medium                 // 2
	Large                  // 3
)

// Sizes lists every member of the enumeration in declaration order.
var Sizes = []Size{Small, Medium, Large}

func (s Size) String() string {
	return ToString(s)
}

// ToString maps each size to its display name.
// The default arm is reached only by values outside the enumeration.
func ToString(s Size) string {
	switch s {
	case Small:
		return "Small"
	case Medium:
		return "Medium"
	case Large:
		return "Large"
	default:
		return "Default"
	}
}

// ToString2 examines Small only; every other value falls to the wildcard.
func ToString2(s Size) string {
	switch s {
	case Small:
		return "Small"
	default:
		return "Default"
	}
}

// ParseSize is the case-insensitive inverse of ToString.
func ParseSize(name string) (Size, error) {
	for _, s := range Sizes {
		if strings.EqualFold(name, ToString(s)) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSize, name)
}
