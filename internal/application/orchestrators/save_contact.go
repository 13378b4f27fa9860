package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	contactStore "daftar/internal/adapters/storage/contact"
	domain "daftar/internal/domain/contact"
)

// ErrContactNotFound is returned when the contact to edit or delete does not exist.
var ErrContactNotFound = errors.New("contact not found")

// SaveContactInput carries the edited contact fields.
type SaveContactInput struct {
	ID    string
	Name  string
	Phone string
}

// SaveContactDeps holds dependencies for SaveContact.
type SaveContactDeps struct {
	ContactStore contactStore.Store
}

// ExecuteSaveContact validates and persists an edit to an existing contact.
// PRE: Input.ID refers to a stored contact.
// POST: On success the contact is saved with trimmed fields and nil is
//
//	returned for FieldErrors; on validation failure nothing is written.
//
// INVARIANT: The edited phone may not collide with any other contact's phone.
func ExecuteSaveContact(ctx context.Context, input SaveContactInput, deps SaveContactDeps) (domain.Contact, domain.FieldErrors, error) {
	current, err := deps.ContactStore.GetByID(ctx, input.ID)
	if err != nil {
		return domain.Contact{}, nil, ErrContactNotFound
	}

	all, err := deps.ContactStore.List(ctx, contactStore.ListFilter{})
	if err != nil {
		return domain.Contact{}, nil, err
	}

	index := -1
	for i, c := range all {
		if c.ID == current.ID {
			index = i
			break
		}
	}
	if index < 0 {
		return domain.Contact{}, nil, ErrContactNotFound
	}

	candidate := domain.Contact{ID: current.ID, Name: input.Name, Phone: input.Phone}
	cleaned, fieldErrs := domain.ValidateEdit(candidate, index, all)
	if len(fieldErrs) > 0 {
		return cleaned, fieldErrs, nil
	}

	if err := deps.ContactStore.Save(ctx, cleaned); err != nil {
		return domain.Contact{}, nil, err
	}

	slog.Info("contact_event", "event", "contact_saved", "contact_id", cleaned.ID)
	return cleaned, nil, nil
}
