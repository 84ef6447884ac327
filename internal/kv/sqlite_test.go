package kv

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
)

func TestSQLiteSlotRoundTrip(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "saldo.db")

	s, err := NewSQLite(dbPath)
	if err != nil {
		t.Fatalf("new sqlite slot: %v", err)
	}
	defer s.Close()

	got, err := s.Get(ctx, "transactions")
	if err != nil {
		t.Fatalf("get absent: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for absent key, got %q", got)
	}

	blob := []byte(`[{"id":1715000000000,"amount":"50.00"}]`)
	if err := s.Put(ctx, "transactions", blob); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Put(ctx, "transactions", blob); err != nil {
		t.Fatalf("upsert same key: %v", err)
	}

	got, err = s.Get(ctx, "transactions")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !bytes.Equal(got, blob) {
		t.Fatalf("round trip mismatch: %q", got)
	}
}

func TestSQLiteSlotSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "saldo.db")

	s, err := NewSQLite(dbPath)
	if err != nil {
		t.Fatalf("new sqlite slot: %v", err)
	}
	if err := s.Put(ctx, "transactions", []byte(`[]`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := NewSQLite(dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get(ctx, "transactions")
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if !bytes.Equal(got, []byte(`[]`)) {
		t.Fatalf("value lost across reopen: %q", got)
	}
}
