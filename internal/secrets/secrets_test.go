package secrets

import (
	"errors"
	"testing"

	"github.com/zalando/go-keyring"
)

func TestKeyring_Roundtrip(t *testing.T) {
	keyring.MockInit()
	store := NewKeyring()

	if err := store.Set("env-1", "s3cret"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := store.Get("env-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "s3cret" {
		t.Errorf("Get = %q, want s3cret", got)
	}

	if err := store.Delete("env-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get("env-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete: err = %v, want ErrNotFound", err)
	}
}

func TestKeyring_GetMissing(t *testing.T) {
	keyring.MockInit()
	store := NewKeyring()

	_, err := store.Get("never-stored")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestKeyring_DeleteMissingIsNoop(t *testing.T) {
	keyring.MockInit()
	store := NewKeyring()

	if err := store.Delete("never-stored"); err != nil {
		t.Errorf("Delete of missing secret: %v", err)
	}
}
