// Package bem builds BEM-convention CSS class names (see https://getbem.com).
//
// A block renders itself together with one class per active modifier, and can
// derive element class names and extended blocks:
//
//	card, err := bem.Block("card", "featured", "compact")
//	card.Render()              // "card card--featured card--compact"
//	card.Element("title")      // "card__title", nil
//	card.Extend("header")      // ClassNames for "card-header"
//
// # Modifier specifications
//
// Declarative sources describe modifiers as an ordered mapping of flags and
// named entries. ResolveModifiers turns such a mapping into the list of active
// modifier names:
//
//	mods := bem.ResolveModifiers([]bem.ModifierEntry{
//		{Key: "active", Value: bem.Flag(true)},
//		{Key: "size", Value: bem.NamedAs("size-lg")},
//	})
//	// mods == []string{"active", "size-lg"}
//
// # Templates
//
// FuncMap exposes the package to text/template and html/template:
//
//	<div class="{{ bemBlock "card" "featured" }}">
//	  <h2 class="{{ (bemBlock "card").Element "title" }}"></h2>
//	</div>
//
// All validation failures are reported as *ValidationError values, which match
// ErrValidation under errors.Is.
package bem
