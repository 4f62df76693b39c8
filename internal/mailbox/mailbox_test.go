package mailbox

import (
	"context"
	"testing"
	"time"
)

func TestLatestJobWins(t *testing.T) {
	m := New[int]()
	m.Put(1)
	m.Put(2)
	m.Put(3)

	got, ok := m.Take(context.Background())
	if !ok {
		t.Fatal("Take() returned !ok")
	}
	if got != 3 {
		t.Errorf("Take() = %d, want 3", got)
	}
}

func TestTakeRespectsContext(t *testing.T) {
	m := New[int]()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, ok := m.Take(ctx); ok {
		t.Error("Take() on empty mailbox should return !ok after cancel")
	}
}

func TestPutAfterTake(t *testing.T) {
	m := New[string]()
	m.Put("a")

	if got, _ := m.Take(context.Background()); got != "a" {
		t.Fatalf("Take() = %q, want a", got)
	}

	m.Put("b")
	if got, _ := m.Take(context.Background()); got != "b" {
		t.Errorf("Take() = %q, want b", got)
	}
}
