package export_test

import (
	"strings"
	"testing"
	"time"

	"daftar/internal/domain/contact"
	"daftar/internal/domain/export"
)

// TestNewDocumentEmpty verifies the export refuses an empty collection.
func TestNewDocumentEmpty(t *testing.T) {
	if _, err := export.NewDocument(nil, time.Now()); err != export.ErrNoContacts {
		t.Errorf("err = %v, want ErrNoContacts", err)
	}
}

// TestNewDocumentSortsWithoutMutating verifies canonical ordering and that
// the caller's slice is left alone.
func TestNewDocumentSortsWithoutMutating(t *testing.T) {
	contacts := []contact.Contact{
		{Name: "محمد", Phone: "0551234567"},
		{Name: "فاطمة", Phone: "0509876543"},
	}
	doc, err := export.NewDocument(contacts, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Contacts[0].Name != "فاطمة" {
		t.Errorf("doc order = %+v, want فاطمة first", doc.Contacts)
	}
	if contacts[0].Name != "محمد" {
		t.Errorf("caller slice mutated: %+v", contacts)
	}
}

// TestToCSV verifies the two-column layout.
func TestToCSV(t *testing.T) {
	doc, err := export.NewDocument([]contact.Contact{
		{Name: "فاطمة خالد", Phone: "0509876543"},
		{Name: "محمد عبدالله", Phone: "0551234567"},
	}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := doc.ToCSV()
	if err != nil {
		t.Fatalf("ToCSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %q", len(lines), out)
	}
	if lines[0] != "name,phone" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "فاطمة خالد,0509876543" {
		t.Errorf("row 1 = %q", lines[1])
	}
}
