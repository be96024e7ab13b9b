package blockfile

import (
	"errors"

	"github.com/yacobolo/bem"
)

// Evaluate builds the block, its element classes and extended blocks.
// The first validation failure is returned as an *EvalError pointing at the
// offending node; no partial evaluation is returned.
func (d *Definition) Evaluate() (*Evaluation, error) {
	classes, err := build(d.BlockPos, d.Modifiers, func(mods []string) (bem.ClassNames, error) {
		return bem.Block(d.Block, mods...)
	})
	if err != nil {
		return nil, err
	}

	eval := &Evaluation{
		Classes:  classes,
		Elements: make([]ElementClass, 0, len(d.Elements)),
		Extends:  make([]ExtendedBlock, 0, len(d.Extends)),
	}

	for _, el := range d.Elements {
		class, err := classes.Element(el.Name)
		if err != nil {
			return nil, &EvalError{Pos: el.Pos, Err: err}
		}
		eval.Elements = append(eval.Elements, ElementClass{Name: el.Name, Class: class})
	}

	for _, ext := range d.Extends {
		extended, err := build(ext.Pos, ext.Modifiers, func(mods []string) (bem.ClassNames, error) {
			return classes.Extend(ext.Name, mods...)
		})
		if err != nil {
			return nil, err
		}
		eval.Extends = append(eval.Extends, ExtendedBlock{Extension: ext.Name, Classes: extended})
	}

	return eval, nil
}

// build resolves modifiers, calls construct and maps a validation failure back
// to the modifier (or owner) that caused it.
func build(ownerPos Position, mods []Modifier, construct func([]string) (bem.ClassNames, error)) (bem.ClassNames, error) {
	entries := make([]bem.ModifierEntry, len(mods))
	for i, m := range mods {
		entries[i] = m.Entry
	}

	classes, err := construct(bem.ResolveModifiers(entries))
	if err == nil {
		return classes, nil
	}

	pos := ownerPos
	var verr *bem.ValidationError
	if errors.As(err, &verr) && (errors.Is(err, bem.ErrModifierSeparator) || errors.Is(err, bem.ErrEmptyModifier)) {
		if p, ok := modifierPos(mods, verr.Value); ok {
			pos = p
		}
	}
	return bem.ClassNames{}, &EvalError{Pos: pos, Err: err}
}

// modifierPos finds the first active modifier that resolves to name
func modifierPos(mods []Modifier, name string) (Position, bool) {
	for _, m := range mods {
		resolved := bem.ResolveModifiers([]bem.ModifierEntry{m.Entry})
		if len(resolved) == 1 && resolved[0] == name {
			return m.Pos, true
		}
	}
	return Position{}, false
}
