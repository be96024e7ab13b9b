package blockfile

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/yacobolo/bem"
	"gopkg.in/yaml.v3"
)

// yaml.v3 syntax errors only carry the line in their message
var yamlLinePattern = regexp.MustCompile(`line (\d+)`)

// ParseFile reads and decodes a single definition file
func ParseFile(path string) (*Definition, error) {
	// #nosec G304 - path comes from discovery under the configured source dir
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Parse(path, content)
}

// Parse decodes a definition. Mapping order of the modifiers is preserved.
func Parse(filename string, content []byte) (*Definition, error) {
	def := &Definition{
		File:  filename,
		lines: strings.Split(string(content), "\n"),
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		pos := Position{Filename: filename}
		if m := yamlLinePattern.FindStringSubmatch(err.Error()); m != nil {
			pos.Line, _ = strconv.Atoi(m[1])
		}
		return nil, &DecodeError{Pos: pos, Msg: strings.TrimPrefix(err.Error(), "yaml: ")}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, &DecodeError{Pos: Position{Filename: filename, Line: 1, Column: 1}, Msg: "empty block definition"}
	}

	p := &parser{filename: filename}
	root := resolve(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, p.errorf(root, "block definition must be a mapping")
	}

	hasBlock := false
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], resolve(root.Content[i+1])
		switch key.Value {
		case "block":
			if !isScalar(val) {
				return nil, p.errorf(val, "block must be a string")
			}
			def.Block = val.Value
			def.BlockPos = p.pos(val)
			hasBlock = true
		case "modifiers":
			mods, err := p.modifiers(val)
			if err != nil {
				return nil, err
			}
			def.Modifiers = mods
		case "elements":
			elems, err := p.elements(val)
			if err != nil {
				return nil, err
			}
			def.Elements = elems
		case "extends":
			exts, err := p.extends(val)
			if err != nil {
				return nil, err
			}
			def.Extends = exts
		default:
			return nil, p.errorf(key, "unknown field %q", key.Value)
		}
	}

	if !hasBlock {
		return nil, p.errorf(root, "missing required field \"block\"")
	}

	return def, nil
}

type parser struct {
	filename string
}

func (p *parser) pos(n *yaml.Node) Position {
	return Position{Filename: p.filename, Line: n.Line, Column: n.Column}
}

func (p *parser) errorf(n *yaml.Node, format string, args ...any) *DecodeError {
	return &DecodeError{Pos: p.pos(n), Msg: fmt.Sprintf(format, args...)}
}

// modifiers decodes the ordered modifiers mapping. A null value means no modifiers.
func (p *parser) modifiers(n *yaml.Node) ([]Modifier, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, p.errorf(n, "modifiers must be a mapping")
	}

	mods := make([]Modifier, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], resolve(n.Content[i+1])
		if !isScalar(key) {
			return nil, p.errorf(key, "modifier keys must be strings")
		}

		var value bem.ModifierValue
		switch val.Kind {
		case yaml.ScalarNode:
			value = scalarFlag(val)
		case yaml.MappingNode:
			named, err := p.named(val)
			if err != nil {
				return nil, err
			}
			value = named
		default:
			return nil, p.errorf(val, "modifier %q must be a scalar or a mapping", key.Value)
		}

		mods = append(mods, Modifier{
			Entry: bem.ModifierEntry{Key: key.Value, Value: value},
			Pos:   p.pos(key),
		})
	}
	return mods, nil
}

// named decodes a structured modifier entry ({name, active}).
func (p *parser) named(n *yaml.Node) (bem.Named, error) {
	var named bem.Named
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], resolve(n.Content[i+1])
		switch key.Value {
		case "name":
			if isNull(val) {
				continue
			}
			if !isScalar(val) {
				return bem.Named{}, p.errorf(val, "modifier name must be a string")
			}
			named = named.WithName(val.Value)
		case "active":
			// Only the boolean true activates; anything else present deactivates.
			named = named.WithActive(isTrue(val))
		default:
			return bem.Named{}, p.errorf(key, "unknown modifier field %q", key.Value)
		}
	}
	return named, nil
}

func (p *parser) elements(n *yaml.Node) ([]Element, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, p.errorf(n, "elements must be a list")
	}

	elems := make([]Element, 0, len(n.Content))
	for _, item := range n.Content {
		item = resolve(item)
		if !isScalar(item) {
			return nil, p.errorf(item, "element names must be strings")
		}
		elems = append(elems, Element{Name: item.Value, Pos: p.pos(item)})
	}
	return elems, nil
}

func (p *parser) extends(n *yaml.Node) ([]Extension, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, p.errorf(n, "extends must be a list")
	}

	exts := make([]Extension, 0, len(n.Content))
	for _, item := range n.Content {
		item = resolve(item)
		if item.Kind != yaml.MappingNode {
			return nil, p.errorf(item, "extends entries must be mappings")
		}

		ext := Extension{Pos: p.pos(item)}
		hasName := false
		for i := 0; i+1 < len(item.Content); i += 2 {
			key, val := item.Content[i], resolve(item.Content[i+1])
			switch key.Value {
			case "extension":
				if !isScalar(val) {
					return nil, p.errorf(val, "extension must be a string")
				}
				ext.Name = val.Value
				ext.Pos = p.pos(val)
				hasName = true
			case "modifiers":
				mods, err := p.modifiers(val)
				if err != nil {
					return nil, err
				}
				ext.Modifiers = mods
			default:
				return nil, p.errorf(key, "unknown extends field %q", key.Value)
			}
		}
		if !hasName {
			return nil, p.errorf(item, "missing required field \"extension\"")
		}
		exts = append(exts, ext)
	}
	return exts, nil
}

// scalarFlag maps a scalar to a flag: false, null, zero and "" are falsy.
func scalarFlag(n *yaml.Node) bem.Flag {
	switch n.ShortTag() {
	case "!!bool":
		return bem.Flag(isTrue(n))
	case "!!null":
		return false
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return i != 0
		}
	case "!!float":
		var f float64
		if err := n.Decode(&f); err == nil {
			return f != 0
		}
	case "!!str":
		return n.Value != ""
	}
	return true
}

func isTrue(n *yaml.Node) bool {
	if n.Kind != yaml.ScalarNode || n.ShortTag() != "!!bool" {
		return false
	}
	var b bool
	if err := n.Decode(&b); err != nil {
		return false
	}
	return b
}

func isScalar(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() != "!!null"
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

// resolve follows YAML aliases to their anchored node
func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}
