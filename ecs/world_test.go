package ecs

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/rotate/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			if len(w.Entities()) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(w.Entities()))
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false for dead entity")
				}
				if len(w.Entities()) != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(w.Entities()))
				}
			}
		})
	}
}

func TestRecycledIDGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	old := w.CreateEntity()
	w.DestroyEntity(old)
	fresh := w.CreateEntity()

	if fresh.id() != old.id() {
		t.Fatalf("expected id reuse, got %v and %v", old, fresh)
	}
	if fresh == old || w.IsAlive(old) || !w.IsAlive(fresh) {
		t.Fatalf("stale handle must not alias the recycled entity")
	}
	if EntityFromRaw(fresh.Raw()) != fresh {
		t.Fatalf("raw round trip changed the handle")
	}
}

func TestWorldComponents(t *testing.T) {
	w := NewWorld()
	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1, 10) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1)
				if !ok || v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
				if Has(w, e2, h1) {
					t.Fatalf("e2 should not have the int component")
				}
			},
			teardown: func() bool { return Remove(w, e1, h1) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2, "a"); err != nil {
					return err
				}
				return Add(w, e2, h2, "b")
			},
			check: func(t *testing.T) {
				if !Has(w, e1, h2) || !Has(w, e2, h2) {
					t.Fatalf("expected both entities to have string component")
				}
			},
			teardown: func() bool { return Remove(w, e1, h2) },
		},
		{
			name:  "update_in_place",
			setup: func() error { return Add(w, e2, h1, 1) },
			check: func(t *testing.T) {
				if !Update(w, e2, h1, func(v *int) { *v += 41 }) {
					t.Fatalf("update reported missing component")
				}
				if v, _ := Get(w, e2, h1); v != 42 {
					t.Fatalf("expected 42, got %v", v)
				}
			},
			teardown: func() bool { return Remove(w, e2, h1) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestAddToDeadEntity(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.DestroyEntity(e)
	if err := Add(w, e, component.TransformComponent, component.NewTransform(mgl64.Vec3{})); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
	var zero component.ComponentHandle[int]
	if err := Add(w, w.CreateEntity(), zero, 1); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
}

func TestQuery(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponent[int]()
	kb := component.NewComponent[int]()

	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()

	for _, step := range []error{
		Add(w, e1, ka, 1),
		Add(w, e2, ka, 2),
		Add(w, e2, kb, 3),
		Add(w, e3, kb, 4),
	} {
		if step != nil {
			t.Fatal(step)
		}
	}

	res := w.Query(ka.Kind(), kb.Kind())
	if len(res) != 1 || res[0] != e2 {
		t.Fatalf("expected only e2, got %v", res)
	}

	w.DestroyEntity(e2)
	if res := w.Query(ka.Kind(), kb.Kind()); len(res) != 0 {
		t.Fatalf("expected empty result after destroy, got %v", res)
	}

	missing := component.NewComponent[float64]()
	if res := w.Query(ka.Kind(), missing.Kind()); res != nil {
		t.Fatalf("expected nil for missing store, got %v", res)
	}

	if first, ok := w.First(kb.Kind()); !ok || first != e3 {
		t.Fatalf("expected e3 as first kb holder, got %v ok=%v", first, ok)
	}
}

func TestNamedEntities(t *testing.T) {
	w := NewWorld()
	prof, err := w.CreateNamed("Professor")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.CreateNamed("Professor"); !errors.Is(err, component.ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
	if got, ok := w.Lookup("Professor"); !ok || got != prof {
		t.Fatalf("lookup failed: %v ok=%v", got, ok)
	}
	if name, _ := Get(w, prof, component.NameComponent); name != "Professor" {
		t.Fatalf("expected name component, got %q", name)
	}

	w.DestroyEntity(prof)
	if _, ok := w.Lookup("Professor"); ok {
		t.Fatalf("destroyed entity still resolvable by name")
	}
	if _, err := w.CreateNamed("Professor"); err != nil {
		t.Fatalf("name should be reusable after destroy: %v", err)
	}
}

func TestEventQueue(t *testing.T) {
	w := NewWorld()
	w.Events().Push(Event{Type: "a"})
	w.Events().Push(Event{Type: "b"})

	if got := w.Events().Peek(); len(got) != 2 || got[0].Type != "a" {
		t.Fatalf("unexpected pending events %v", got)
	}
	w.EndFrame()
	if got := w.Events().Drain(); got != nil {
		t.Fatalf("expected events cleared at end of frame, got %v", got)
	}
}
