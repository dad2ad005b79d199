package ordmap

import (
	"reflect"
	"testing"
)

func TestInsertAndGet(t *testing.T) {
	m := New[int]()

	if _, ok := m.Insert("a", 1); ok {
		t.Fatal("expected no previous value for first insert")
	}

	previous, ok := m.Insert("a", 2)
	if !ok || previous != 1 {
		t.Fatalf("expected previous value 1, got %d (ok=%v)", previous, ok)
	}

	value, ok := m.Get("a")
	if !ok || value != 2 {
		t.Fatalf("expected 2, got %d (ok=%v)", value, ok)
	}

	if _, ok := m.Get("missing"); ok {
		t.Fatal("expected missing key to be absent")
	}
}

func TestInsertionOrder(t *testing.T) {
	m := New[int]()
	m.Insert("c", 3)
	m.Insert("a", 1)
	m.Insert("b", 2)
	m.Insert("a", 4)

	if got := m.Keys(); !reflect.DeepEqual(got, []string{"c", "a", "b"}) {
		t.Fatalf("unexpected key order: %v", got)
	}

	if got := m.Values(); !reflect.DeepEqual(got, []int{3, 4, 2}) {
		t.Fatalf("unexpected values: %v", got)
	}
}

func TestFromPairsFirstOccurrenceWins(t *testing.T) {
	m := FromPairs([]Entry[string]{
		{Key: "x", Value: "first"},
		{Key: "y", Value: "second"},
		{Key: "x", Value: "third"},
	})

	if m.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", m.Len())
	}

	if got := m.Keys(); !reflect.DeepEqual(got, []string{"x", "y"}) {
		t.Fatalf("unexpected key order: %v", got)
	}

	if value, _ := m.Get("x"); value != "first" {
		t.Fatalf("expected first occurrence to win, got %q", value)
	}
}

func TestPtr(t *testing.T) {
	m := New[[]int]()
	m.Insert("a", []int{1})

	if p := m.Ptr("a"); p == nil {
		t.Fatal("expected pointer to existing entry")
	} else {
		*p = append(*p, 2)
	}

	value, _ := m.Get("a")
	if !reflect.DeepEqual(value, []int{1, 2}) {
		t.Fatalf("in-place mutation lost: %v", value)
	}

	if m.Ptr("missing") != nil {
		t.Fatal("expected nil pointer for missing key")
	}
}

func TestEmpty(t *testing.T) {
	m := New[int]()

	if !m.IsEmpty() || m.Len() != 0 {
		t.Fatal("new map should be empty")
	}

	if m.ContainsKey("a") {
		t.Fatal("new map should not contain keys")
	}
}
