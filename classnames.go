package bem

import (
	"slices"
	"strings"
)

// Separators of the BEM class name format.
const (
	ModifierSeparator = "--"
	ElementSeparator  = "__"
	extensionJoiner   = "-"
)

// ClassNames is an immutable BEM block with an ordered list of active modifiers.
// The zero value is not valid; use Block.
type ClassNames struct {
	block     string
	modifiers []string
}

// Block returns the class names for block with the given modifiers.
// Each modifier is given without the block prefix and without the "--" separator.
// Modifier order is kept and duplicates are not removed.
func Block(block string, modifiers ...string) (ClassNames, error) {
	if block == "" {
		return ClassNames{}, validationError(ErrEmptyBlock, "")
	}
	if err := validateModifiers(modifiers); err != nil {
		return ClassNames{}, err
	}
	return ClassNames{block: block, modifiers: slices.Clone(modifiers)}, nil
}

// MustBlock is like Block but panics on invalid input.
// It is intended for package-level values built from constants.
func MustBlock(block string, modifiers ...string) ClassNames {
	c, err := Block(block, modifiers...)
	if err != nil {
		panic(err)
	}
	return c
}

func validateModifiers(modifiers []string) error {
	for _, m := range modifiers {
		if m == "" {
			return validationError(ErrEmptyModifier, m)
		}
		if strings.Contains(m, ModifierSeparator) {
			return validationError(ErrModifierSeparator, m)
		}
	}
	return nil
}

// BlockName returns the block (base class name) verbatim.
func (c ClassNames) BlockName() string {
	return c.block
}

// Modifiers returns a copy of the active modifiers in rendering order.
func (c ClassNames) Modifiers() []string {
	return append(make([]string, 0, len(c.modifiers)), c.modifiers...)
}

// Render returns the block followed by one "block--modifier" class per
// modifier, separated by single spaces:
//
//	"some-block some-block--modifier-1 some-block--modifier-2"
func (c ClassNames) Render() string {
	var b strings.Builder
	b.WriteString(c.block)
	for _, m := range c.modifiers {
		b.WriteByte(' ')
		b.WriteString(c.block)
		b.WriteString(ModifierSeparator)
		b.WriteString(m)
	}
	return b.String()
}

// String implements fmt.Stringer and is equivalent to Render.
func (c ClassNames) String() string {
	return c.Render()
}

// Extend returns a new block named "block-extension" with the given modifiers.
// The modifiers of c are not carried over.
//
//	someBlock.Extend("sub") // "some-block-sub"
func (c ClassNames) Extend(extension string, modifiers ...string) (ClassNames, error) {
	if extension == "" {
		return ClassNames{}, validationError(ErrEmptyExtension, "")
	}
	return Block(c.block+extensionJoiner+extension, modifiers...)
}

// Element renders one "block__element" class per name, space separated and
// in argument order. It stops at the first invalid name and returns no output.
//
//	someBlock.Element("foo", "bar") // "some-block__foo some-block__bar"
func (c ClassNames) Element(names ...string) (string, error) {
	if len(names) == 0 {
		return "", validationError(ErrNoElements, "")
	}
	classes := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			return "", validationError(ErrEmptyElement, name)
		}
		if strings.Contains(name, ElementSeparator) {
			return "", validationError(ErrElementSeparator, name)
		}
		classes = append(classes, c.block+ElementSeparator+name)
	}
	return strings.Join(classes, " "), nil
}
