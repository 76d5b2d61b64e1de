package backend

import (
	"context"
	"path/filepath"
	"testing"
)

func TestTypeIsValid(t *testing.T) {
	for _, bt := range Types() {
		if !bt.IsValid() {
			t.Errorf("%q should be valid", bt)
		}
	}
	if Type("sheets").IsValid() {
		t.Error("unknown type accepted")
	}
}

func TestMemoryBlob(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBlob()

	if _, ok, err := b.Get(ctx, "k"); ok || err != nil {
		t.Fatalf("unwritten key: ok=%v err=%v", ok, err)
	}
	if err := b.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := b.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, ok, err := b.Get(ctx, "k")
	if err != nil || !ok || v != "v2" {
		t.Fatalf("got (%q,%v,%v)", v, ok, err)
	}
}

func TestFileBlob(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	b, err := NewFileBlob(dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if _, ok, err := b.Get(ctx, "DAFTAR_BELANJA"); ok || err != nil {
		t.Fatalf("unwritten key: ok=%v err=%v", ok, err)
	}
	if err := b.Set(ctx, "DAFTAR_BELANJA", `[{"id":1}]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := b.Get(ctx, "DAFTAR_BELANJA")
	if err != nil || !ok || v != `[{"id":1}]` {
		t.Fatalf("got (%q,%v,%v)", v, ok, err)
	}

	// a second instance over the same dir sees the data
	b2, err := NewFileBlob(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if v, ok, _ := b2.Get(ctx, "DAFTAR_BELANJA"); !ok || v != `[{"id":1}]` {
		t.Fatalf("reopened read got (%q,%v)", v, ok)
	}
}

func TestSanitizeKey(t *testing.T) {
	cases := map[string]string{
		"DAFTAR_BELANJA": "DAFTAR_BELANJA",
		"a/b..c":         "a_b__c",
	}
	for in, want := range cases {
		if got := sanitizeKey(in); got != want {
			t.Errorf("sanitizeKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFactoryMemoryAndFile(t *testing.T) {
	res, err := New(Config{Type: Memory}, nil)
	if err != nil || res.Blob == nil {
		t.Fatalf("memory: %v", err)
	}

	res, err = New(Config{Type: File, DataDir: filepath.Join(t.TempDir(), "data")}, nil)
	if err != nil || res.Blob == nil {
		t.Fatalf("file: %v", err)
	}

	if _, err := New(Config{Type: "sheets"}, nil); err == nil {
		t.Fatal("invalid type should fail")
	}
}

// Shutdown defers Result.Cleanup unconditionally, so every backend must
// come up with a callable cleanup.
func TestFactoryCleanupAlwaysCallable(t *testing.T) {
	cases := []Config{
		{Type: Memory},
		{Type: File, DataDir: filepath.Join(t.TempDir(), "data")},
	}
	for _, cfg := range cases {
		res, err := New(cfg, nil)
		if err != nil {
			t.Fatalf("%s: %v", cfg.Type, err)
		}
		if res.Cleanup == nil {
			t.Fatalf("%s: nil cleanup", cfg.Type)
		}
		if err := res.Cleanup(); err != nil {
			t.Errorf("%s: cleanup: %v", cfg.Type, err)
		}
	}
}
