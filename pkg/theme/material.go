package theme

import "github.com/enhancedfx/efx/pkg/style"

// Material returns the baseline Material theme used by the preview
// server. Embedders typically start from it and override rules.
func Material() *Theme {
	t := New("material")

	t.Rule("body").
		Set("font-family", "Roboto, sans-serif").
		Set("background", "#fafafa").
		Set("color", "#1c1b1f")

	t.Rule(Class("text-field")).
		Set("position", "relative").
		Set("border-bottom", "1px solid #79747e").
		Set("padding", "16px 12px 8px")
	t.Rule(Class("text-field", style.Focused)).
		Set("border-bottom", "2px solid #6750a4")
	t.Rule(Class("text-field", style.Invalid)).
		Set("border-bottom", "2px solid #b3261e")
	t.Rule(Class("text-field")+" .title").
		Set("position", "absolute").
		Set("top", "16px").
		Set("transition", "all 150ms ease").
		Set("color", "#49454f")
	t.Rule(Class("text-field", style.Floating)+" .title").
		Set("top", "4px").
		Set("font-size", "12px").
		Set("color", "#6750a4")
	t.Rule(Class("text-field")+" .supporting").
		Set("font-size", "12px").
		Set("color", "#49454f")
	t.Rule(Class("text-field", style.Invalid)+" .supporting").
		Set("color", "#b3261e")
	t.Rule(Class("text-field")+" .counter").
		Set("float", "right").
		Set("font-size", "12px")

	t.Rule(Class("text-area")).
		Set("min-height", "96px")
	t.Rule(Class("text-area")+".wrap textarea").
		Set("white-space", "pre-wrap")

	t.Rule(Class("button")).
		Set("border-radius", "20px").
		Set("padding", "10px 24px").
		Set("background", "#6750a4").
		Set("color", "#ffffff")
	t.Rule(Class("button", style.Hovered)).
		Set("filter", "brightness(1.08)")
	t.Rule(Class("button", style.Armed)).
		Set("filter", "brightness(0.92)")
	t.Rule(Class("button", style.Disabled)).
		Set("background", "#e7e0ec").
		Set("color", "#79747e")

	t.Rule(Class("nav-bar")).
		Set("display", "flex").
		Set("gap", "8px").
		Set("background", "#f3edf7")
	t.Rule(Class("nav-bar")+" .item").
		Set("padding", "12px 16px").
		Set("border-radius", "16px")
	t.Rule(Class("nav-bar")+" .item"+style.Selected.String()).
		Set("background", "#e8def8").
		Set("color", "#1d192b")

	return t
}
