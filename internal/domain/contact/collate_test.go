package contact_test

import (
	"testing"

	"daftar/internal/domain/contact"
)

func indexOf(contacts []contact.Contact, name string) int {
	for i, c := range contacts {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// TestSortByNameArabicAlphabetical verifies names compare by Arabic
// alphabetical order, not raw code points. "إياد" starts with a hamza alef
// (U+0625) which precedes "احمد"'s plain alef (U+0627) in code-point order,
// but alef forms collate together, so the second letters decide: ح < ي.
func TestSortByNameArabicAlphabetical(t *testing.T) {
	contacts := []contact.Contact{
		{Name: "إياد", Phone: "0551112222"},
		{Name: "احمد", Phone: "0553334444"},
	}
	contact.SortByName(contacts)
	if contacts[0].Name != "احمد" {
		t.Errorf("order = [%s, %s], want احمد first", contacts[0].Name, contacts[1].Name)
	}
}

// TestSortByNameMixedScripts verifies sorting is total and stable across
// Latin and Arabic names.
func TestSortByNameMixedScripts(t *testing.T) {
	contacts := []contact.Contact{
		{Name: "يوسف", Phone: "0551000001"},
		{Name: "أحمد", Phone: "0551000002"},
		{Name: "Ben", Phone: "0551000003"},
	}
	contact.SortByName(contacts)

	if len(contacts) != 3 {
		t.Fatalf("sort changed length: %d", len(contacts))
	}
	ahmad, yousef := indexOf(contacts, "أحمد"), indexOf(contacts, "يوسف")
	if ahmad == -1 || yousef == -1 || indexOf(contacts, "Ben") == -1 {
		t.Fatalf("sort lost a record: %+v", contacts)
	}
	if ahmad > yousef {
		t.Errorf("أحمد sorted after يوسف: %+v", contacts)
	}
}

// TestSortByNameStable verifies equal names keep their relative order.
func TestSortByNameStable(t *testing.T) {
	contacts := []contact.Contact{
		{Name: "سارة", Phone: "0551000001"},
		{Name: "سارة", Phone: "0551000002"},
	}
	contact.SortByName(contacts)
	if contacts[0].Phone != "0551000001" {
		t.Errorf("stable sort violated: %+v", contacts)
	}
}
