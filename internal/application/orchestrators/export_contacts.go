package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"daftar/internal/adapters/email"
	contactStore "daftar/internal/adapters/storage/contact"
	"daftar/internal/domain/export"
)

// ExportContactsInput carries export options.
type ExportContactsInput struct {
	// BackupEmail, when non-empty, receives a copy of the CSV as an attachment.
	BackupEmail string
}

// ExportContactsResult carries the generated document.
type ExportContactsResult struct {
	FileName   string
	CSV        []byte
	Count      int
	ExportedAt time.Time
}

// ExportContactsDeps holds dependencies for ExportContacts.
type ExportContactsDeps struct {
	ContactStore contactStore.Store
	EmailSender  email.Sender
	Now          func() time.Time
}

// ExecuteExportContacts renders the whole collection as a CSV document.
// PRE: deps.ContactStore is wired; deps.Now may be nil (defaults to time.Now)
// POST: CSV rows are in canonical name order; export.ErrNoContacts when empty
// INVARIANT: Exporting never mutates the collection.
func ExecuteExportContacts(ctx context.Context, input ExportContactsInput, deps ExportContactsDeps) (ExportContactsResult, error) {
	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}

	contacts, err := deps.ContactStore.List(ctx, contactStore.ListFilter{})
	if err != nil {
		return ExportContactsResult{}, err
	}

	doc, err := export.NewDocument(contacts, now())
	if err != nil {
		return ExportContactsResult{}, err
	}

	csvBytes, err := doc.ToCSV()
	if err != nil {
		return ExportContactsResult{}, err
	}

	result := ExportContactsResult{
		FileName:   export.FileName,
		CSV:        csvBytes,
		Count:      len(doc.Contacts),
		ExportedAt: doc.ExportedAt,
	}

	if input.BackupEmail != "" && deps.EmailSender != nil {
		_, sendErr := deps.EmailSender.Send(ctx, email.SendRequest{
			To:      []string{input.BackupEmail},
			Subject: "Daftar contacts backup " + doc.ExportedAt.Format("2006-01-02"),
			HTML:    "<p>Attached is the latest export of your contact list.</p>",
			Attachments: []email.Attachment{
				{Filename: export.FileName, Content: csvBytes},
			},
		})
		if sendErr != nil {
			// The download still succeeds; the backup copy is best effort.
			slog.Error("export_backup_failed", "error", sendErr, "to", input.BackupEmail)
		}
	}

	slog.Info("contact_event", "event", "contacts_exported", "count", result.Count)
	return result, nil
}
