package property

import "testing"

func TestBindFollowsSource(t *testing.T) {
	src := New(1)
	dst := New(0)

	dst.Bind(src)
	if dst.Get() != 1 {
		t.Errorf("bind must take the source value, got %d", dst.Get())
	}

	src.Set(2)
	if dst.Get() != 2 {
		t.Errorf("bound property must follow, got %d", dst.Get())
	}
	if !dst.IsBound() {
		t.Error("expected IsBound")
	}
}

func TestBoundSetPanics(t *testing.T) {
	src := New(1)
	dst := New(0).Bind(src)

	defer func() {
		if r := recover(); r != ErrBound {
			t.Errorf("expected ErrBound, got %v", r)
		}
	}()
	dst.Set(5)
}

func TestUnbindDetaches(t *testing.T) {
	src := New(1)
	dst := New(0).Bind(src)

	dst.Unbind()
	if dst.IsBound() {
		t.Error("expected unbound")
	}

	src.Set(9)
	if dst.Get() != 1 {
		t.Errorf("unbound property must keep last value 1, got %d", dst.Get())
	}

	dst.Set(3) // writable again
	if dst.Get() != 3 {
		t.Errorf("expected 3, got %d", dst.Get())
	}
}

func TestBindNotifiesTargetListeners(t *testing.T) {
	src := New("a")
	dst := New("")
	var calls [][2]string
	dst.OnChange(func(oldValue, newValue string) {
		calls = append(calls, [2]string{oldValue, newValue})
	})

	dst.Bind(src)
	src.Set("b")

	if len(calls) != 2 {
		t.Fatalf("expected 2 notifications (initial sync + change), got %d", len(calls))
	}
	if calls[0] != [2]string{"", "a"} || calls[1] != [2]string{"a", "b"} {
		t.Errorf("unexpected calls %v", calls)
	}
}

func TestRebindReplacesSource(t *testing.T) {
	first := New(1)
	second := New(10)
	dst := New(0).Bind(first)

	dst.Bind(second)
	if dst.Get() != 10 {
		t.Errorf("expected 10 after rebind, got %d", dst.Get())
	}

	first.Set(2)
	if dst.Get() != 10 {
		t.Errorf("old source must be detached, got %d", dst.Get())
	}
}

func TestBindBidirectional(t *testing.T) {
	a := New("")
	b := New("seed")

	bb := BindBidirectional(a, b)
	if a.Get() != "seed" {
		t.Fatalf("a must seed from b, got %q", a.Get())
	}

	a.Set("from-a")
	if b.Get() != "from-a" {
		t.Errorf("b must mirror a, got %q", b.Get())
	}

	b.Set("from-b")
	if a.Get() != "from-b" {
		t.Errorf("a must mirror b, got %q", a.Get())
	}

	bb.Unbind()
	a.Set("solo")
	if b.Get() != "from-b" {
		t.Errorf("after unbind b must not mirror, got %q", b.Get())
	}
}

func TestBindBidirectionalNoPingPong(t *testing.T) {
	a := New(0)
	b := New(0)
	BindBidirectional(a, b)

	aFires, bFires := 0, 0
	a.OnInvalidate(func() { aFires++ })
	b.OnInvalidate(func() { bFires++ })

	a.Set(1)
	if aFires != 1 || bFires != 1 {
		t.Errorf("expected exactly one fire per side, got a=%d b=%d", aFires, bFires)
	}
}

func TestBindThroughReadOnly(t *testing.T) {
	src := New(5)
	dst := New(0)

	dst.Bind(src.ReadOnly())
	src.Set(6)
	if dst.Get() != 6 {
		t.Errorf("expected 6 via read-only source, got %d", dst.Get())
	}
}
