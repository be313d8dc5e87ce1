package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"
)

func TestTokenRepository_LoadSaveClear(t *testing.T) {
	host := os.Getenv("DB_HOST")
	if host == "" {
		t.Skip("DB_HOST not set; skipping postgres integration test")
	}
	ctx := context.Background()
	db, err := Open(ctx, DSN(host, os.Getenv("DB_PORT"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME")))
	if err != nil {
		t.Skipf("postgres not reachable: %v", err)
	}
	defer db.Close()
	if err := InitDB(ctx, db); err != nil {
		t.Fatalf("InitDB() error: %v", err)
	}

	repo := NewTokenRepository(db, fmt.Sprintf("test-token-%d", time.Now().UnixNano()))
	if got, err := repo.Load(ctx); err != nil || got != "" {
		t.Fatalf("Load() on missing row = %q, %v", got, err)
	}
	for _, token := range []string{"T1", "T2"} {
		if err := repo.Save(ctx, token); err != nil {
			t.Fatalf("Save(%q) error: %v", token, err)
		}
		if got, err := repo.Load(ctx); err != nil || got != token {
			t.Errorf("Load() = %q, %v; want %q", got, err, token)
		}
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if got, err := repo.Load(ctx); err != nil || got != "" {
		t.Errorf("Load() after Clear = %q, %v", got, err)
	}
}

func TestDSN(t *testing.T) {
	got := DSN("db", "5432", "admin", "pw", "foodadmin")
	want := "host=db port=5432 user=admin password=pw dbname=foodadmin sslmode=disable"
	if got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
