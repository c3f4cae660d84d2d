package observe

import "testing"

// funcInv lets a test inject arbitrary behavior into an invalidation
// listener while keeping a stable identity for removal.
type funcInv struct {
	fn func(o Observable)
}

func (l *funcInv) Invalidated(o Observable) { l.fn(o) }

// A listener removed during a fire still receives the in-progress
// notification when it appears later in iteration order, and receives
// nothing from later fires.
func TestReentrantRemovalLaterListenerStillNotified(t *testing.T) {
	o := &intValue{}
	var log []string

	b := &recInv{name: "b", log: &log}
	a := &funcInv{fn: func(Observable) {
		log = append(log, "a")
		o.removeInv(b)
	}}

	o.addInv(a)
	o.addInv(b)
	o.addInv(&recInv{name: "c", log: &log})

	o.set(1)
	if len(log) != 3 || log[0] != "a" || log[1] != "b" || log[2] != "c" {
		t.Fatalf("first fire: expected [a b c], got %v", log)
	}

	log = log[:0]
	o.set(2)
	if len(log) != 2 || log[0] != "a" || log[1] != "c" {
		t.Errorf("second fire: expected [a c], got %v", log)
	}
}

func TestReentrantSelfRemoval(t *testing.T) {
	o := &intValue{}
	var log []string

	var a *funcInv
	a = &funcInv{fn: func(Observable) {
		log = append(log, "a")
		o.removeInv(a)
	}}
	b := &recInv{name: "b", log: &log}

	o.addInv(a)
	o.addInv(b)

	o.set(1)
	if len(log) != 2 || log[0] != "a" || log[1] != "b" {
		t.Fatalf("first fire: expected [a b], got %v", log)
	}
	if _, ok := o.helper.(*singleInvalidation[int]); !ok {
		t.Fatalf("expected demotion to singleInvalidation, got %T", o.helper)
	}

	log = log[:0]
	o.set(2)
	if len(log) != 1 || log[0] != "b" {
		t.Errorf("second fire: expected [b], got %v", log)
	}
}

func TestReentrantAddNotSeenByCurrentFire(t *testing.T) {
	o := &intValue{}
	var log []string

	c := &recInv{name: "c", log: &log}
	a := &funcInv{fn: func(Observable) {
		log = append(log, "a")
		o.addInv(c)
	}}
	b := &recInv{name: "b", log: &log}

	o.addInv(a)
	o.addInv(b)

	o.set(1)
	if len(log) != 2 || log[0] != "a" || log[1] != "b" {
		t.Fatalf("first fire: expected [a b], got %v", log)
	}

	log = log[:0]
	a.fn = func(Observable) { log = append(log, "a") }
	o.set(2)
	if len(log) != 3 || log[2] != "c" {
		t.Errorf("second fire: expected [a b c], got %v", log)
	}
}

// A mid-fire removal that demotes to singleChange must carry the in-fire
// value: the invalidation loop runs before the cache refresh, so seeding
// the demoted helper from the stale cache would suppress a later change
// back to the pre-fire value.
func TestMidFireDemotionCarriesCurrentValue(t *testing.T) {
	o := &intValue{v: 5}
	var events [][2]int

	var a *funcInv
	a = &funcInv{fn: func(Observable) { o.removeInv(a) }}
	o.addInv(a)
	o.addChg(OnChanged(func(_ ObservableValue[int], oldValue, newValue int) {
		events = append(events, [2]int{oldValue, newValue})
	}))

	o.set(7)
	if _, ok := o.helper.(*singleChange[int]); !ok {
		t.Fatalf("expected demotion to singleChange, got %T", o.helper)
	}
	if len(events) != 1 || events[0] != [2]int{5, 7} {
		t.Fatalf("first fire: expected [(5 7)], got %v", events)
	}

	// A real 7 -> 5 change; the demoted cache must be 7, not 5.
	o.set(5)
	if len(events) != 2 || events[1] != [2]int{7, 5} {
		t.Errorf("second fire: expected (7 5), got %v", events)
	}
}

// Same hazard through the change-listener demotion case: an invalidation
// listener that removes itself and a change listener mid-fire.
func TestMidFireChangeDemotionCarriesCurrentValue(t *testing.T) {
	o := &intValue{v: 5}
	var events [][2]int

	keep := OnChanged(func(_ ObservableValue[int], oldValue, newValue int) {
		events = append(events, [2]int{oldValue, newValue})
	})
	drop := OnChanged(func(_ ObservableValue[int], _, _ int) {})

	var a *funcInv
	a = &funcInv{fn: func(Observable) {
		o.removeInv(a)
		o.removeChg(drop)
	}}
	o.addInv(a)
	o.addChg(keep)
	o.addChg(drop)

	o.set(7)
	if _, ok := o.helper.(*singleChange[int]); !ok {
		t.Fatalf("expected demotion to singleChange, got %T", o.helper)
	}
	if len(events) != 1 || events[0] != [2]int{5, 7} {
		t.Fatalf("first fire: expected [(5 7)], got %v", events)
	}

	o.set(5)
	if len(events) != 2 || events[1] != [2]int{7, 5} {
		t.Errorf("second fire: expected (7 5), got %v", events)
	}
}

// A nested fire must not release the outer fire's lock: a removal made
// after the nested fire returns, while the outer pass is still
// iterating, has to leave the captured slice undisturbed.
func TestNestedFireKeepsOuterLock(t *testing.T) {
	o := &intValue{}
	var log []string
	nested := false
	reentered := false

	var a *funcInv
	a = &funcInv{fn: func(Observable) {
		log = append(log, "a")
		if !reentered {
			reentered = true
			nested = true
			o.set(2)
			nested = false
		}
	}}
	b := &funcInv{fn: func(Observable) {
		log = append(log, "b")
		if !nested {
			o.removeInv(a)
		}
	}}

	o.addInv(a)
	o.addInv(b)
	o.addInv(&recInv{name: "c", log: &log})
	o.addInv(&recInv{name: "d", log: &log})

	o.set(1)
	want := []string{"a", "a", "b", "c", "d", "b", "c", "d"}
	if len(log) != len(want) {
		t.Fatalf("expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, log)
		}
	}

	log = log[:0]
	o.set(3)
	if len(log) != 3 || log[0] != "b" || log[1] != "c" || log[2] != "d" {
		t.Errorf("second fire: expected [b c d], got %v", log)
	}
}

// One listener's panic is routed to the uncaught handler and later
// listeners still run.
func TestListenerPanicIsolation(t *testing.T) {
	var recovered []any
	prev := SetUncaughtHandler(func(r any) { recovered = append(recovered, r) })
	defer SetUncaughtHandler(prev)

	o := &intValue{}
	var log []string
	o.addInv(&funcInv{fn: func(Observable) { panic("boom") }})
	o.addInv(&recInv{name: "b", log: &log})

	o.set(1)
	if len(log) != 1 || log[0] != "b" {
		t.Errorf("expected b to run after panic, got %v", log)
	}
	if len(recovered) != 1 || recovered[0] != "boom" {
		t.Errorf("expected recovered [boom], got %v", recovered)
	}
}

func TestSinglePanicIsolation(t *testing.T) {
	var recovered []any
	prev := SetUncaughtHandler(func(r any) { recovered = append(recovered, r) })
	defer SetUncaughtHandler(prev)

	o := &intValue{}
	o.addInv(&funcInv{fn: func(Observable) { panic("single") }})

	o.set(1) // must not propagate
	if len(recovered) != 1 || recovered[0] != "single" {
		t.Errorf("expected recovered [single], got %v", recovered)
	}
}

func TestGenericCacheRefreshedOnEqualFire(t *testing.T) {
	o := &intValue{v: 1}
	var log []string
	chg := &recChg{name: "chg", log: &log}
	o.addInv(&recInv{name: "inv", log: &log})
	o.addChg(chg)

	// Fire without a change: invalidation runs, change suppressed.
	o.set(1)
	if len(log) != 1 || log[0] != "inv" {
		t.Fatalf("expected [inv], got %v", log)
	}

	log = log[:0]
	o.set(2)
	if len(log) != 2 || log[1] != "chg" {
		t.Fatalf("expected [inv chg], got %v", log)
	}
	if chg.old != 1 || chg.new != 2 {
		t.Errorf("expected (1, 2), got (%d, %d)", chg.old, chg.new)
	}
}

func TestFuncAdapterIdentity(t *testing.T) {
	o := &intValue{}
	count := 0
	handle := OnInvalidated(func(Observable) { count++ })
	o.addInv(handle)
	o.addInv(OnInvalidated(func(Observable) { count += 10 }))

	o.set(1)
	if count != 11 {
		t.Fatalf("expected both adapters to run, count=%d", count)
	}

	o.removeInv(handle)
	o.set(2)
	if count != 21 {
		t.Errorf("expected only second adapter to run, count=%d", count)
	}
}

// sliceInv is a value-type listener with a slice field: not comparable
// and not func-backed, so it has no removal identity.
type sliceInv struct {
	tags []string
	log  *[]string
}

func (l sliceInv) Invalidated(Observable) { *l.log = append(*l.log, "s") }

// Documents the removal-identity contract: a non-comparable value-type
// listener never matches and stays registered. Pointer-backed listeners
// are the supported way to get removability.
func TestValueListenerWithoutIdentityStays(t *testing.T) {
	o := &intValue{}
	var log []string
	l := sliceInv{tags: []string{"x"}, log: &log}

	o.addInv(l)
	o.addInv(&recInv{name: "b", log: &log})
	o.removeInv(sliceInv{tags: []string{"x"}, log: &log})

	o.set(1)
	if len(log) != 2 || log[0] != "s" || log[1] != "b" {
		t.Errorf("expected [s b], got %v", log)
	}
}

func TestChangeFuncAdapter(t *testing.T) {
	o := &intValue{v: 1}
	var got [2]int
	o.addChg(OnChanged(func(_ ObservableValue[int], oldValue, newValue int) {
		got = [2]int{oldValue, newValue}
	}))

	o.set(3)
	if got != [2]int{1, 3} {
		t.Errorf("expected (1, 3), got %v", got)
	}
}
