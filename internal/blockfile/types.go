// Package blockfile decodes and evaluates declarative BEM block definitions.
package blockfile

import (
	"fmt"

	"github.com/yacobolo/bem"
)

// Position locates a node inside a definition file. Line and Column are 1-based;
// zero means unknown.
type Position struct {
	Filename string
	Line     int
	Column   int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// Modifier is one entry of the ordered modifiers mapping
type Modifier struct {
	Entry bem.ModifierEntry
	Pos   Position // Position of the mapping key
}

// Element is a requested element name
type Element struct {
	Name string
	Pos  Position
}

// Extension derives a sub-block ("block-extension") with its own modifiers
type Extension struct {
	Name      string
	Pos       Position
	Modifiers []Modifier
}

// Definition is a decoded block definition file
type Definition struct {
	File      string
	Block     string
	BlockPos  Position
	Modifiers []Modifier
	Elements  []Element
	Extends   []Extension

	lines []string
}

// SourceLine returns the 1-based line of the original file, or "" if out of range.
func (d *Definition) SourceLine(line int) string {
	if line < 1 || line > len(d.lines) {
		return ""
	}
	return d.lines[line-1]
}

// ElementClass is a rendered element class
type ElementClass struct {
	Name  string // "title"
	Class string // "card__title"
}

// ExtendedBlock is a rendered sub-block
type ExtendedBlock struct {
	Extension string
	Classes   bem.ClassNames
}

// Evaluation is the result of evaluating a Definition
type Evaluation struct {
	Classes  bem.ClassNames
	Elements []ElementClass
	Extends  []ExtendedBlock
}

// DecodeError reports a malformed definition file
type DecodeError struct {
	Pos Position
	Msg string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// EvalError attaches a definition position to a bem.ValidationError
type EvalError struct {
	Pos Position
	Err error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Pos, e.Err)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}
