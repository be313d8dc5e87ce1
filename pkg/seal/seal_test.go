package seal

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type plainStore struct{ v string }

func (p *plainStore) Load(ctx context.Context) (string, error) { return p.v, nil }
func (p *plainStore) Save(ctx context.Context, t string) error { p.v = t; return nil }
func (p *plainStore) Clear(ctx context.Context) error          { p.v = ""; return nil }

func TestBox_SealOpen(t *testing.T) {
	box, err := New("correct horse battery staple")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	sealed, err := box.Seal("T1")
	if err != nil {
		t.Fatalf("Seal() error: %v", err)
	}
	if strings.Contains(sealed, "T1") {
		t.Errorf("Seal() leaked plaintext: %q", sealed)
	}
	got, err := box.Open(sealed)
	if err != nil || got != "T1" {
		t.Errorf("Open() = %q, %v", got, err)
	}

	other, _ := New("another secret")
	if _, err := other.Open(sealed); err == nil {
		t.Errorf("Open() with wrong key succeeded")
	}
	if _, err := box.Open("T1"); !errors.Is(err, ErrMalformed) {
		t.Errorf("Open(plain) error = %v, want ErrMalformed", err)
	}
}

func TestNew_EmptySecret(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Errorf("New(\"\") error = nil")
	}
}

func TestStore_RoundTrip(t *testing.T) {
	box, _ := New("s3cret")
	inner := &plainStore{}
	s := Wrap(inner, box)
	ctx := context.Background()

	if err := s.Save(ctx, "T1"); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if !strings.HasPrefix(inner.v, prefix) {
		t.Errorf("inner store holds %q, want sealed value", inner.v)
	}
	if got, err := s.Load(ctx); err != nil || got != "T1" {
		t.Errorf("Load() = %q, %v", got, err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if got, err := s.Load(ctx); err != nil || got != "" {
		t.Errorf("Load() after Clear = %q, %v", got, err)
	}
}
