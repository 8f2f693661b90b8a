package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestAppendAndList(t *testing.T) {
	ctx := context.Background()
	j, err := Open(ctx, filepath.Join(t.TempDir(), "leads.sqlite"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer j.Close()

	leads := []Lead{
		{Name: "Ana", Email: "a@b.co", Goal: "New product", Message: "1234567890"},
		{Name: "Bo", Email: "bo@x.io", Company: "Bo LLC", Goal: "Redesign", Message: "hello there world"},
	}
	for _, l := range leads {
		if err := j.Append(ctx, l); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := j.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List returned %d leads, want 2", len(got))
	}
	if got[0].Name != "Ana" || got[1].Name != "Bo" {
		t.Fatalf("leads out of order: %q, %q", got[0].Name, got[1].Name)
	}
	if got[1].Company != "Bo LLC" {
		t.Fatalf("company not persisted: %+v", got[1])
	}
	if got[0].CreatedAt.IsZero() {
		t.Fatalf("created_at should be filled in on append")
	}
	if got[0].ID >= got[1].ID {
		t.Fatalf("ids should be monotonic: %d, %d", got[0].ID, got[1].ID)
	}
}

func TestExplicitCreatedAtRoundTrips(t *testing.T) {
	ctx := context.Background()
	j, err := Open(ctx, filepath.Join(t.TempDir(), "leads.sqlite"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer j.Close()

	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	if err := j.Append(ctx, Lead{Name: "Ana", Email: "a@b.co", Message: "1234567890", CreatedAt: at}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	got, err := j.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if !got[0].CreatedAt.Equal(at) {
		t.Fatalf("created_at = %v, want %v", got[0].CreatedAt, at)
	}
}

func TestReopenKeepsRows(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "leads.sqlite")

	j, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := j.Append(ctx, Lead{Name: "Ana", Email: "a@b.co", Message: "1234567890"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := j.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	j2, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer j2.Close()
	got, err := j2.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("rows lost across reopen: %d", len(got))
	}
}
