package theme

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/enhancedfx/efx/pkg/style"
)

func TestClassSelector(t *testing.T) {
	got := Class("text-field", style.Focused, style.Floating)
	if got != ".text-field:focused:floating" {
		t.Errorf("got %q", got)
	}
}

func TestCSSDeterministicOrder(t *testing.T) {
	th := New("test")
	th.Rule(".b").Set("color", "red")
	th.Rule(".a").Set("color", "blue").Set("margin", "0")
	th.Rule(".b").Set("padding", "4px") // existing rule, appended decl

	want := ".b {\n  color: red;\n  padding: 4px;\n}\n\n.a {\n  color: blue;\n  margin: 0;\n}\n"
	if got := th.CSS(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}

	if th.CSS() != th.CSS() {
		t.Error("CSS output must be stable")
	}
}

func TestSetReplacesInPlace(t *testing.T) {
	th := New("test")
	th.Rule(".a").Set("color", "red").Set("margin", "0").Set("color", "green")

	css := th.CSS()
	if strings.Count(css, "color") != 1 {
		t.Errorf("expected one color declaration:\n%s", css)
	}
	if strings.Index(css, "color: green") > strings.Index(css, "margin") {
		t.Errorf("replacement must keep position:\n%s", css)
	}
}

func TestEmptyRulesSkipped(t *testing.T) {
	th := New("test")
	th.Rule(".empty")
	th.Rule(".a").Set("color", "red")

	if strings.Contains(th.CSS(), ".empty") {
		t.Errorf("empty rule must be skipped:\n%s", th.CSS())
	}
}

func TestMaterialThemeCoversControls(t *testing.T) {
	css := Material().CSS()
	for _, sel := range []string{
		".text-field:focused",
		".text-field:floating .title",
		".text-field:error",
		".button:armed",
		".nav-bar .item:selected",
	} {
		if !strings.Contains(css, sel) {
			t.Errorf("material theme missing %q", sel)
		}
	}
}

func TestDiskStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(filepath.Join(dir, "css"))
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}

	th := New("dark")
	th.Rule("body").Set("background", "#000")

	location, err := Publish(th, store)
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if filepath.Base(location) != "dark.css" {
		t.Errorf("unexpected location %q", location)
	}

	css, err := store.Open("dark")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if string(css) != th.CSS() {
		t.Errorf("round trip mismatch: %q", css)
	}

	if _, err := store.Open("missing"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
