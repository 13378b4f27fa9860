package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"time"

	"daftar/internal/domain/contact"
)

// FileName is the fixed name of the exported spreadsheet file.
const FileName = "contacts.csv"

// Domain errors.
var (
	// ErrNoContacts is returned when an export is requested for an empty
	// collection; the export collaborators are only invoked with data.
	ErrNoContacts = errors.New("nothing to export")
)

// Document is a point-in-time snapshot of the contact collection prepared
// for the two-column (name, phone) spreadsheet export.
type Document struct {
	Contacts   []contact.Contact
	ExportedAt time.Time
}

// NewDocument builds an export document in canonical order.
// PRE: contacts is the full collection to export
// POST: returns a Document with its own sorted copy, or ErrNoContacts
// INVARIANT: the caller's slice is not mutated
func NewDocument(contacts []contact.Contact, now time.Time) (Document, error) {
	if len(contacts) == 0 {
		return Document{}, ErrNoContacts
	}
	snapshot := make([]contact.Contact, len(contacts))
	copy(snapshot, contacts)
	contact.SortByName(snapshot)
	return Document{Contacts: snapshot, ExportedAt: now}, nil
}

// ToCSV serializes the document as a two-column CSV with a header row.
// PRE: Document was built by NewDocument
// POST: returns UTF-8 CSV bytes, one row per contact in canonical order
func (d *Document) ToCSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"name", "phone"}); err != nil {
		return nil, err
	}
	for _, c := range d.Contacts {
		if err := w.Write([]string{c.Name, c.Phone}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
