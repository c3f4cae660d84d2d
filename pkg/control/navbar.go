package control

import (
	"errors"
	"fmt"

	"github.com/enhancedfx/efx/pkg/property"
	"github.com/enhancedfx/efx/pkg/style"
)

// ErrNoSuchItem is returned when selecting a navigation index that does
// not exist.
var ErrNoSuchItem = errors.New("efx: no such navigation item")

// NavItem is one entry of a navigation bar. Its selected pseudo-class is
// maintained by the owning bar.
type NavItem struct {
	id     string
	label  *property.StringProperty
	states *style.StateSet
}

// ID returns the item's identifier.
func (it *NavItem) ID() string {
	return it.id
}

// Label returns the item's label property.
func (it *NavItem) Label() *property.StringProperty {
	return it.label
}

// States returns the item's pseudo-class state set.
func (it *NavItem) States() *style.StateSet {
	return it.states
}

// Selected reports whether the item is the bar's current selection.
func (it *NavItem) Selected() bool {
	return it.states.Has(style.Selected)
}

// NavBar is a Material navigation bar with a single-selection model.
// The selected index is observable; -1 means no selection.
type NavBar struct {
	Control

	items    []*NavItem
	selected *property.IntProperty
	onSelect []func(index int)
}

// NewNavBar creates an empty navigation bar with the given id.
func NewNavBar(id string) *NavBar {
	nb := &NavBar{selected: property.NewInt(-1)}
	nb.Control = newControl(id, "nav-bar")

	nb.selected.OnChange(func(oldValue, newValue int) {
		if oldValue >= 0 && oldValue < len(nb.items) {
			nb.items[oldValue].states.Set(style.Selected, false)
		}
		if newValue >= 0 && newValue < len(nb.items) {
			nb.items[newValue].states.Set(style.Selected, true)
		}
		for _, fn := range nb.onSelect {
			fn(newValue)
		}
	})
	return nb
}

// AddItem appends a navigation item. Returns the bar for chaining.
func (nb *NavBar) AddItem(id, label string) *NavBar {
	nb.items = append(nb.items, &NavItem{
		id:     id,
		label:  property.NewString(label),
		states: style.NewStateSet(),
	})
	return nb
}

// Items returns the bar's items in order.
func (nb *NavBar) Items() []*NavItem {
	return nb.items
}

// Item returns the item with the given id, or nil.
func (nb *NavBar) Item(id string) *NavItem {
	for _, it := range nb.items {
		if it.id == id {
			return it
		}
	}
	return nil
}

// Selected returns the observable selected index.
func (nb *NavBar) Selected() *property.IntProperty {
	return nb.selected
}

// SelectedItem returns the currently selected item, or nil.
func (nb *NavBar) SelectedItem() *NavItem {
	i := nb.selected.Get()
	if i < 0 || i >= len(nb.items) {
		return nil
	}
	return nb.items[i]
}

// Select moves the selection to the given index. Disabled bars and
// out-of-range indexes are rejected.
func (nb *NavBar) Select(index int) error {
	if index < 0 || index >= len(nb.items) {
		return fmt.Errorf("%w: index %d of %d", ErrNoSuchItem, index, len(nb.items))
	}
	if nb.disabled.Get() {
		return nil
	}
	nb.selected.Set(index)
	return nil
}

// SelectID moves the selection to the item with the given id.
func (nb *NavBar) SelectID(id string) error {
	for i, it := range nb.items {
		if it.id == id {
			return nb.Select(i)
		}
	}
	return fmt.Errorf("%w: id %q", ErrNoSuchItem, id)
}

// ClearSelection deselects any selected item.
func (nb *NavBar) ClearSelection() {
	nb.selected.Set(-1)
}

// OnSelect appends a selection callback. Returns the bar for chaining.
func (nb *NavBar) OnSelect(fn func(index int)) *NavBar {
	nb.onSelect = append(nb.onSelect, fn)
	return nb
}
