package contact

import (
	"errors"
	"strings"
)

// Minimum digit count for a phone saved through the edit form. The batch
// import path deliberately has no minimum; see ExtractBatch.
const MinEditPhoneDigits = 7

// Domain errors for batch extraction outcomes.
var (
	ErrEmptyInput   = errors.New("input text is empty")
	ErrNoNewRecords = errors.New("no new valid records found")
)

// Contact holds one (name, phone) record.
type Contact struct {
	ID    string
	Name  string
	Phone string
}

// Validate checks the stored-record invariants.
// PRE: Contact struct is initialized
// POST: Returns error if validation fails, nil otherwise
// INVARIANT: Name is non-empty allowed-script text, Phone is non-empty digits
func (c *Contact) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("contact name cannot be empty")
	}
	if c.Phone == "" {
		return errors.New("contact phone cannot be empty")
	}
	for _, r := range c.Phone {
		if r < '0' || r > '9' {
			return errors.New("contact phone must contain digits only")
		}
	}
	return nil
}
