// ABOUTME: Tests for SQLite-backed conversation memory
// ABOUTME: Covers persistence, history rendering, and session isolation
package sqlite

import (
	"strings"
	"testing"

	"github.com/dapoerjuna/juna/internal/models"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestNewMemoryStore_RequiresSessionID(t *testing.T) {
	db := testDB(t)
	for _, id := range []string{"", "   "} {
		if _, err := NewMemoryStore(db, id); err == nil {
			t.Errorf("NewMemoryStore(%q) should fail", id)
		}
	}
}

func TestMemoryStore_RememberAndHistory(t *testing.T) {
	db := testDB(t)
	mem, err := NewMemoryStore(db, "session-1")
	if err != nil {
		t.Fatalf("NewMemoryStore() error = %v", err)
	}

	if err := mem.Remember(models.RoleUser, "resep ayam apa yang enak?"); err != nil {
		t.Fatalf("Remember(user) error = %v", err)
	}
	if err := mem.Remember(models.RoleAI, "Coba ayam geprek sambal bawang."); err != nil {
		t.Fatalf("Remember(ai) error = %v", err)
	}

	hist, err := mem.History()
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	want := "user: resep ayam apa yang enak?\nai: Coba ayam geprek sambal bawang."
	if hist != want {
		t.Errorf("History() = %q, want %q", hist, want)
	}
}

func TestMemoryStore_EmptyHistory(t *testing.T) {
	db := testDB(t)
	mem, _ := NewMemoryStore(db, "session-1")

	hist, err := mem.History()
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if hist != "" {
		t.Errorf("History() = %q, want empty", hist)
	}
}

func TestMemoryStore_RejectsInvalidTurn(t *testing.T) {
	db := testDB(t)
	mem, _ := NewMemoryStore(db, "session-1")

	if err := mem.Remember("narrator", "hi"); err == nil {
		t.Error("unknown role should fail")
	}
	if err := mem.Remember(models.RoleUser, ""); err == nil {
		t.Error("empty content should fail")
	}

	hist, err := mem.History()
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if hist != "" {
		t.Errorf("rejected turns must not be persisted, got %q", hist)
	}
}

func TestMemoryStore_SessionsAreIsolated(t *testing.T) {
	db := testDB(t)
	memA, _ := NewMemoryStore(db, "session-a")
	memB, _ := NewMemoryStore(db, "session-b")

	if err := memA.Remember(models.RoleUser, "halo dari A"); err != nil {
		t.Fatalf("Remember() error = %v", err)
	}
	if err := memB.Remember(models.RoleUser, "halo dari B"); err != nil {
		t.Fatalf("Remember() error = %v", err)
	}

	histA, err := memA.History()
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if !strings.Contains(histA, "halo dari A") || strings.Contains(histA, "halo dari B") {
		t.Errorf("session A history leaked: %q", histA)
	}
}

func TestMemoryStore_TurnsRoundTrip(t *testing.T) {
	db := testDB(t)
	mem, _ := NewMemoryStore(db, "session-1")

	inputs := []struct{ role, content string }{
		{models.RoleUser, "juna ubah sikap jadi galak"},
		{models.RoleAI, "Sikap Juna di-set ke 'galak'."},
		{models.RoleUser, "resep rendang dong"},
	}
	for _, in := range inputs {
		if err := mem.Remember(in.role, in.content); err != nil {
			t.Fatalf("Remember(%s) error = %v", in.role, err)
		}
	}

	turns, err := mem.Turns()
	if err != nil {
		t.Fatalf("Turns() error = %v", err)
	}
	if len(turns) != len(inputs) {
		t.Fatalf("got %d turns, want %d", len(turns), len(inputs))
	}
	for i, in := range inputs {
		if turns[i].Role != in.role || turns[i].Content != in.content {
			t.Errorf("turn %d = %s/%q, want %s/%q", i, turns[i].Role, turns[i].Content, in.role, in.content)
		}
		if turns[i].TurnID == "" {
			t.Errorf("turn %d has empty ID", i)
		}
		if turns[i].Timestamp.IsZero() {
			t.Errorf("turn %d has zero timestamp", i)
		}
	}
}
