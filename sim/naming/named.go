// Package naming defines how simulation objects are named.
package naming

import (
	"strings"
)

// Named describes an object that has a name.
type Named interface {
	// Name returns the name of the object.
	Name() string
}

// NamedBase is a base implementation of Named.
type NamedBase struct {
	name string
}

// Name returns the name of the object.
func (b *NamedBase) Name() string {
	return b.name
}

// MakeNamedBase creates a new NamedBase
func MakeNamedBase(name string) NamedBase {
	NameMustBeValid(name)

	return NamedBase{name: name}
}

// NameMustBeValid panics if the name does not follow the naming rules. A name
// is a dot-separated list of elements, e.g. "TankA.FuelLine". Each element
// must start with a capital letter and must not contain whitespace, quotes,
// underscores or dashes.
func NameMustBeValid(name string) {
	if err := ValidateName(name); err != nil {
		panic("Name " + name + " is not valid: " + err.Error())
	}
}

// ValidateName returns an error describing why the name is invalid, or nil.
func ValidateName(name string) error {
	for _, elem := range strings.Split(name, ".") {
		if err := validateElement(elem); err != nil {
			return err
		}
	}

	return nil
}

type nameError string

func (e nameError) Error() string {
	return string(e)
}

func validateElement(elem string) error {
	if elem == "" {
		return nameError("name element must not be empty")
	}

	if strings.ContainsAny(elem, "_\"'- \t\n") {
		return nameError("name element must not contain " +
			"underscores, dashes, quotes or whitespace")
	}

	if elem[0] < 'A' || elem[0] > 'Z' {
		return nameError("name element must start with a capital letter")
	}

	return nil
}
