// Package theme models named stylesheets for efx controls and generates
// CSS from them. Rules keep insertion order so generated output is
// deterministic and diffable.
package theme

import (
	"fmt"
	"io"
	"strings"

	"github.com/enhancedfx/efx/pkg/style"
)

// Declaration is a single CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// Rule is an ordered list of declarations under one selector.
type Rule struct {
	selector string
	decls    []Declaration
}

// Selector returns the rule's selector.
func (r *Rule) Selector() string {
	return r.selector
}

// Set adds or replaces a declaration, keeping the original position when
// replacing. Returns the rule for chaining.
func (r *Rule) Set(property, value string) *Rule {
	for i := range r.decls {
		if r.decls[i].Property == property {
			r.decls[i].Value = value
			return r
		}
	}
	r.decls = append(r.decls, Declaration{Property: property, Value: value})
	return r
}

// Theme is a named, ordered collection of rules.
type Theme struct {
	name  string
	rules []*Rule
	index map[string]*Rule
}

// New creates an empty theme with the given name.
func New(name string) *Theme {
	return &Theme{name: name, index: map[string]*Rule{}}
}

// Name returns the theme name.
func (t *Theme) Name() string {
	return t.name
}

// Rule returns the rule for the selector, creating and appending it on
// first use.
func (t *Theme) Rule(selector string) *Rule {
	if r, ok := t.index[selector]; ok {
		return r
	}
	r := &Rule{selector: selector}
	t.rules = append(t.rules, r)
	t.index[selector] = r
	return r
}

// Class builds a selector for a style class with optional pseudo-class
// suffixes, e.g. Class("text-field", style.Focused) -> ".text-field:focused".
func Class(name string, pseudos ...*style.PseudoClass) string {
	var b strings.Builder
	b.WriteByte('.')
	b.WriteString(name)
	for _, pc := range pseudos {
		b.WriteString(pc.String())
	}
	return b.String()
}

// WriteCSS writes the theme as CSS, rules and declarations in insertion
// order.
func (t *Theme) WriteCSS(w io.Writer) error {
	for i, r := range t.rules {
		if len(r.decls) == 0 {
			continue
		}
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s {\n", r.selector); err != nil {
			return err
		}
		for _, d := range r.decls {
			if _, err := fmt.Fprintf(w, "  %s: %s;\n", d.Property, d.Value); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "}\n"); err != nil {
			return err
		}
	}
	return nil
}

// CSS renders the theme to a string.
func (t *Theme) CSS() string {
	var b strings.Builder
	// strings.Builder never returns a write error.
	_ = t.WriteCSS(&b)
	return b.String()
}
