package contact

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortByName orders contacts ascending by name under Arabic-locale collation,
// so Arabic names compare by alphabetical order rather than code points.
// This is the canonical ordering of every contact collection in the app; it
// is re-applied wholesale after inserts and edits, never incrementally.
//
// PRE: contacts may be nil or empty
// POST: contacts is sorted in place; equal names keep their relative order
func SortByName(contacts []Contact) {
	c := collate.New(language.Arabic)
	sort.SliceStable(contacts, func(i, j int) bool {
		return c.CompareString(contacts[i].Name, contacts[j].Name) < 0
	})
}
