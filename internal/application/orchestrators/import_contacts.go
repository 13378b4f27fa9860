package orchestrators

import (
	"context"
	"log/slog"

	contactStore "daftar/internal/adapters/storage/contact"
	domain "daftar/internal/domain/contact"
)

// ImportContactsInput carries the pasted free text and import options.
// PRE: RawText is the operator's pasted text, one contact per line.
// POST: Returns aggregate counts; writes are skipped when DryRun=true.
// INVARIANT: Existing contacts are never modified or deleted by an import.
type ImportContactsInput struct {
	RawText string
	DryRun  bool
}

// ImportContactsResult holds aggregate counts from an import run.
type ImportContactsResult struct {
	Lines    int // non-blank input lines
	Imported int // contacts accepted and saved
	Contacts []domain.Contact
	DryRun   bool
}

// ImportContactsDeps holds external dependencies for the import orchestrator.
type ImportContactsDeps struct {
	ContactStore contactStore.Store
	GenerateID   func() string
}

// ExecuteImportContacts extracts contact records from pasted free text and
// saves the new ones.
// PRE: Input.RawText is non-blank; deps are wired.
// POST: Each accepted record is saved with a fresh ID; duplicates against
//
//	the stored collection and within the batch are dropped silently.
//
// INVARIANT: When DryRun=true no writes occur.
func ExecuteImportContacts(ctx context.Context, input ImportContactsInput, deps ImportContactsDeps) (ImportContactsResult, error) {
	existing, err := deps.ContactStore.Phones(ctx)
	if err != nil {
		return ImportContactsResult{}, err
	}

	extracted, err := domain.ExtractBatch(input.RawText, existing)
	if err != nil {
		return ImportContactsResult{}, err
	}

	result := ImportContactsResult{
		Lines:  countNonBlankLines(input.RawText),
		DryRun: input.DryRun,
	}

	for _, c := range extracted {
		c.ID = deps.GenerateID()
		if !input.DryRun {
			if err := deps.ContactStore.Save(ctx, c); err != nil {
				return result, err
			}
		}
		result.Contacts = append(result.Contacts, c)
		result.Imported++
	}

	slog.Info("contact_event", "event", "batch_imported",
		"lines", result.Lines, "imported", result.Imported, "dry_run", input.DryRun)

	return result, nil
}

func countNonBlankLines(text string) int {
	n := 0
	start := 0
	for i := 0; i <= len(text); i++ {
		if i == len(text) || text[i] == '\n' {
			if hasNonSpace(text[start:i]) {
				n++
			}
			start = i + 1
		}
	}
	return n
}

func hasNonSpace(line string) bool {
	for _, r := range line {
		if r != ' ' && r != '\t' && r != '\r' {
			return true
		}
	}
	return false
}
