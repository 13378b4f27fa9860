package orchestrators

import (
	"context"
	"errors"
	"testing"

	domain "daftar/internal/domain/contact"
)

func TestExecuteSaveContactTrimsAndSaves(t *testing.T) {
	store := newMockContactStore(domain.Contact{ID: "c1", Name: "محمد", Phone: "0551234567"})
	input := SaveContactInput{ID: "c1", Name: "  محمد عبدالله  ", Phone: " 0551234567 "}

	saved, fieldErrs, err := ExecuteSaveContact(context.Background(), input, SaveContactDeps{ContactStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fieldErrs) != 0 {
		t.Fatalf("unexpected field errors: %v", fieldErrs)
	}
	if saved.Name != "محمد عبدالله" {
		t.Errorf("expected trimmed name, got %q", saved.Name)
	}
	if store.byID["c1"].Name != "محمد عبدالله" {
		t.Errorf("store not updated: %+v", store.byID["c1"])
	}
}

func TestExecuteSaveContactRejectsDuplicatePhone(t *testing.T) {
	store := newMockContactStore(
		domain.Contact{ID: "c1", Name: "محمد", Phone: "0551234567"},
		domain.Contact{ID: "c2", Name: "فاطمة", Phone: "0509876543"},
	)
	input := SaveContactInput{ID: "c2", Name: "فاطمة", Phone: "0551234567"}

	_, fieldErrs, err := ExecuteSaveContact(context.Background(), input, SaveContactDeps{ContactStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fieldErrs["phone"] == "" {
		t.Errorf("expected phone field error, got %v", fieldErrs)
	}
	if store.byID["c2"].Phone != "0509876543" {
		t.Errorf("failed edit must not write, got %+v", store.byID["c2"])
	}
}

func TestExecuteSaveContactValidationErrors(t *testing.T) {
	store := newMockContactStore(domain.Contact{ID: "c1", Name: "محمد", Phone: "0551234567"})

	_, fieldErrs, err := ExecuteSaveContact(context.Background(),
		SaveContactInput{ID: "c1", Name: "", Phone: "123"},
		SaveContactDeps{ContactStore: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fieldErrs["name"] == "" {
		t.Errorf("expected name error, got %v", fieldErrs)
	}
	if fieldErrs["phone"] == "" {
		t.Errorf("expected phone error, got %v", fieldErrs)
	}
}

func TestExecuteSaveContactNotFound(t *testing.T) {
	store := newMockContactStore()

	_, _, err := ExecuteSaveContact(context.Background(),
		SaveContactInput{ID: "missing", Name: "x", Phone: "0551234567"},
		SaveContactDeps{ContactStore: store})
	if !errors.Is(err, ErrContactNotFound) {
		t.Errorf("expected ErrContactNotFound, got %v", err)
	}
}

func TestExecuteDeleteContact(t *testing.T) {
	store := newMockContactStore(domain.Contact{ID: "c1", Name: "محمد", Phone: "0551234567"})

	if err := ExecuteDeleteContact(context.Background(), "c1", DeleteContactDeps{ContactStore: store}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.byID) != 0 {
		t.Errorf("expected empty store, got %d", len(store.byID))
	}

	err := ExecuteDeleteContact(context.Background(), "c1", DeleteContactDeps{ContactStore: store})
	if !errors.Is(err, ErrContactNotFound) {
		t.Errorf("expected ErrContactNotFound, got %v", err)
	}
}
