package bem

// ModifierValue specifies whether, and under which name, a modifier is active.
// It is either a Flag or a Named entry.
type ModifierValue interface {
	modifierValue()
}

// Flag activates the modifier named by its key when true.
type Flag bool

// Named is a structured modifier entry, typically produced by a nested
// component. A nil Name falls back to the entry key. A non-nil Active that is
// not true deactivates the entry.
type Named struct {
	Name   *string
	Active *bool
}

func (Flag) modifierValue()  {}
func (Named) modifierValue() {}

// NamedAs returns a Named entry that renders under name.
func NamedAs(name string) Named {
	return Named{Name: &name}
}

// WithName returns a copy of n that renders under name.
func (n Named) WithName(name string) Named {
	n.Name = &name
	return n
}

// WithActive returns a copy of n with an explicit active state.
func (n Named) WithActive(active bool) Named {
	n.Active = &active
	return n
}

// ModifierEntry is one key of an ordered modifier specification.
type ModifierEntry struct {
	Key   string
	Value ModifierValue
}

// ResolveModifiers returns the names of the active entries in entry order.
// Names are not validated here; invalid ones are rejected by Block.
func ResolveModifiers(entries []ModifierEntry) []string {
	active := make([]string, 0, len(entries))
	for _, e := range entries {
		switch v := e.Value.(type) {
		case Named:
			if v.Active != nil && !*v.Active {
				continue
			}
			if v.Name != nil {
				active = append(active, *v.Name)
			} else {
				active = append(active, e.Key)
			}
		case Flag:
			if v {
				active = append(active, e.Key)
			}
		}
	}
	return active
}

// BlockFromSpec resolves entries and builds the block from the active modifiers.
func BlockFromSpec(block string, entries []ModifierEntry) (ClassNames, error) {
	return Block(block, ResolveModifiers(entries)...)
}
