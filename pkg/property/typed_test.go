package property

import (
	"testing"

	"github.com/enhancedfx/efx/pkg/observe"
)

// onChangedInt adapts a plain old/new callback for tests.
func onChangedInt(fn func(oldValue, newValue int)) observe.ChangeListener[int] {
	return observe.OnChanged(func(_ observe.ObservableValue[int], oldValue, newValue int) {
		fn(oldValue, newValue)
	})
}

func TestStringProperty(t *testing.T) {
	s := NewString("hello")

	s.Append(" world")
	if s.Get() != "hello world" {
		t.Errorf("got %q", s.Get())
	}

	s.Prepend(">")
	if s.Get() != ">hello world" {
		t.Errorf("got %q", s.Get())
	}

	if s.Length() != 12 {
		t.Errorf("expected length 12, got %d", s.Length())
	}

	s.Clear()
	if !s.IsEmpty() {
		t.Error("expected empty after Clear")
	}
}

func TestStringPropertyRuneLength(t *testing.T) {
	s := NewString("héllo")
	if s.Length() != 5 {
		t.Errorf("expected rune length 5, got %d", s.Length())
	}
}

func TestIntProperty(t *testing.T) {
	n := NewInt(10)

	n.Inc()
	n.Inc()
	n.Dec()
	n.Add(5)
	n.Sub(1)

	if n.Get() != 15 {
		t.Errorf("expected 15, got %d", n.Get())
	}
}

func TestFloatProperty(t *testing.T) {
	f := NewFloat(2)

	f.Mul(3)
	f.Add(4)
	f.Div(2)
	f.Sub(1)

	if f.Get() != 4 {
		t.Errorf("expected 4, got %v", f.Get())
	}
}

func TestBoolProperty(t *testing.T) {
	b := NewBool(false)
	fires := 0
	b.OnInvalidate(func() { fires++ })

	b.Toggle()
	if !b.Get() {
		t.Error("expected true after Toggle")
	}

	b.SetTrue() // no change
	b.SetFalse()
	if b.Get() {
		t.Error("expected false")
	}
	if fires != 2 {
		t.Errorf("expected 2 fires, got %d", fires)
	}
}

func TestTypedWrapperNotifies(t *testing.T) {
	n := NewInt(0)
	var got [2]int
	n.AddChangeListener(onChangedInt(func(oldValue, newValue int) {
		got = [2]int{oldValue, newValue}
	}))

	n.Add(3)
	if got != [2]int{0, 3} {
		t.Errorf("expected (0, 3), got %v", got)
	}
}
