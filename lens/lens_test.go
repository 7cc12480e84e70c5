package lens_test

import (
	"errors"
	"testing"

	"github.com/authcorp/lens/internal/lawtest"
	"github.com/authcorp/lens/lens"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"pgregory.net/rapid"
)

type Person struct {
	Name    string
	Age     int
	Address Address
}

type Address struct {
	Street string
	City   string
}

func PersonNameLens() lens.Lens[Person, string] {
	return lens.NewLens(
		func(p Person) string { return p.Name },
		func(p Person, name string) Person { p.Name = name; return p },
	)
}

func PersonAgeLens() lens.Lens[Person, int] {
	return lens.NewLens(
		func(p Person) int { return p.Age },
		func(p Person, age int) Person { p.Age = age; return p },
	)
}

func PersonAddressLens() lens.Lens[Person, Address] {
	return lens.NewLens(
		func(p Person) Address { return p.Address },
		func(p Person, addr Address) Person { p.Address = addr; return p },
	)
}

func AddressCityLens() lens.Lens[Address, string] {
	return lens.NewLens(
		func(a Address) string { return a.City },
		func(a Address, city string) Address { a.City = city; return a },
	)
}

func TestLensGetPutIdentity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Get(Put(source, value)) == value", prop.ForAll(
		func(name string, age int, newName string) bool {
			l := PersonNameLens()
			updated, err := l.Put(Person{Name: name, Age: age}, newName)
			if err != nil {
				return false
			}
			got, err := l.Get(updated)
			return err == nil && got == newName
		},
		gen.AnyString(),
		gen.Int(),
		gen.AnyString(),
	))

	properties.Property("Put(source, Get(source)) == source", prop.ForAll(
		func(name string, age int) bool {
			l := PersonNameLens()
			person := Person{Name: name, Age: age}
			name2, err := l.Get(person)
			if err != nil {
				return false
			}
			updated, err := l.Put(person, name2)
			return err == nil && updated == person
		},
		gen.AnyString(),
		gen.Int(),
	))

	properties.TestingRun(t)
}

func TestLensUpdateLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Update(s, f) == Put(s, f(Get(s)))", prop.ForAll(
		func(age int, delta int) bool {
			l := PersonAgeLens()
			person := Person{Name: "Alice", Age: age}
			f := func(n int) int { return n + delta }

			viaUpdate, err := l.Update(person, f)
			if err != nil {
				return false
			}
			current, _ := l.Get(person)
			viaPut, err := l.Put(person, f(current))
			return err == nil && viaUpdate == viaPut
		},
		gen.Int(),
		gen.IntRange(-1000, 1000),
	))

	properties.Property("Put(s, b) == Update(s, const b)", prop.ForAll(
		func(age int, b int) bool {
			l := PersonAgeLens()
			person := Person{Age: age}
			viaPut, _ := l.Put(person, b)
			viaUpdate, err := l.Update(person, func(int) int { return b })
			return err == nil && viaPut == viaUpdate
		},
		gen.Int(),
		gen.Int(),
	))

	properties.TestingRun(t)
}

func TestLensBasicOperations(t *testing.T) {
	t.Run("Get retrieves value", func(t *testing.T) {
		got, err := PersonNameLens().Get(Person{Name: "Alice", Age: 30})
		if err != nil || got != "Alice" {
			t.Errorf("expected Alice, got %q (%v)", got, err)
		}
	})

	t.Run("Put creates new structure", func(t *testing.T) {
		person := Person{Name: "Alice", Age: 30}
		updated, err := PersonNameLens().Put(person, "Bob")
		if err != nil {
			t.Fatal(err)
		}
		if updated.Name != "Bob" {
			t.Error("expected Bob")
		}
		if person.Name != "Alice" {
			t.Error("original should be unchanged")
		}
	})

	t.Run("Update applies function once", func(t *testing.T) {
		calls := 0
		updated, err := PersonAgeLens().Update(Person{Name: "Alice", Age: 30}, func(age int) int {
			calls++
			return age + 1
		})
		if err != nil {
			t.Fatal(err)
		}
		if updated.Age != 31 {
			t.Errorf("expected 31, got %d", updated.Age)
		}
		if calls != 1 {
			t.Errorf("expected one call, got %d", calls)
		}
	})

	t.Run("TryUpdate returns the function's error", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := PersonAgeLens().TryUpdate(Person{}, func(int) (int, error) { return 0, boom })
		if !errors.Is(err, boom) {
			t.Errorf("expected boom, got %v", err)
		}
	})
}

func TestComplete(t *testing.T) {
	failing := errors.New("no focus")
	l := lens.Complete(
		func(p Person) (int, error) {
			if p.Age < 0 {
				return 0, failing
			}
			return p.Age, nil
		},
		func(p Person, age int) (Person, error) { p.Age = age; return p, nil },
	)

	t.Run("derived update", func(t *testing.T) {
		updated, err := l.Update(Person{Age: 2}, func(n int) int { return n * 10 })
		if err != nil || updated.Age != 20 {
			t.Errorf("expected 20, got %d (%v)", updated.Age, err)
		}
	})

	t.Run("update does not call fn when get fails", func(t *testing.T) {
		called := false
		_, err := l.Update(Person{Age: -1}, func(n int) int { called = true; return n })
		if !errors.Is(err, failing) {
			t.Errorf("expected get error, got %v", err)
		}
		if called {
			t.Error("fn must not run")
		}
	})
}

func TestIdentityLens(t *testing.T) {
	l := lens.Identity[int]()
	if got, _ := l.Get(42); got != 42 {
		t.Error("expected 42")
	}
	if got, _ := l.Put(42, 100); got != 100 {
		t.Error("expected 100")
	}
	if got, _ := l.Update(42, func(n int) int { return n * 2 }); got != 84 {
		t.Error("expected 84")
	}
}

func TestIdentityLaws(t *testing.T) {
	ints := rapid.Int()
	rapid.Check(t, lawtest.Laws(lens.Identity[int](), ints, ints, func(n int) int { return n * 3 }))
}
