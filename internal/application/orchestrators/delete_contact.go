package orchestrators

import (
	"context"
	"log/slog"

	contactStore "daftar/internal/adapters/storage/contact"
)

// DeleteContactDeps holds dependencies for DeleteContact.
type DeleteContactDeps struct {
	ContactStore contactStore.Store
}

// ExecuteDeleteContact removes a contact from the collection.
// PRE: id refers to a stored contact
// POST: The contact is gone; deleting a missing contact returns ErrContactNotFound
func ExecuteDeleteContact(ctx context.Context, id string, deps DeleteContactDeps) error {
	if _, err := deps.ContactStore.GetByID(ctx, id); err != nil {
		return ErrContactNotFound
	}
	if err := deps.ContactStore.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("contact_event", "event", "contact_deleted", "contact_id", id)
	return nil
}
