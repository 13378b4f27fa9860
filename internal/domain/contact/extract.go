package contact

import (
	"regexp"
	"strings"
	"unicode"
)

// phonePattern matches the first run of phone-looking characters on a line:
// digits, spaces, hyphens, and '+', at least 7 characters long.
var phonePattern = regexp.MustCompile(`[+0-9 -]{7,}`)

// ExtractBatch parses free-form multi-line text into new contact records.
// Each line is scanned for a phone-looking run; the rest of the line becomes
// the name. Lines without a detectable phone are skipped silently. Phones
// already in existingPhones, or seen earlier in the same batch, are skipped
// so the first occurrence wins.
//
// PRE: existingPhones maps cleaned (digits-only) phones already stored
// POST: returns accepted records in input order; inputs are not mutated
// INVARIANT: every returned Phone is non-empty and digits-only, every
// returned Name is non-empty, and no two returned records share a Phone
func ExtractBatch(rawText string, existingPhones map[string]bool) ([]Contact, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, ErrEmptyInput
	}

	seen := make(map[string]bool, len(existingPhones))
	for p := range existingPhones {
		seen[p] = true
	}

	var accepted []Contact
	for _, line := range strings.Split(rawText, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		match := phonePattern.FindString(line)
		if match == "" {
			continue
		}

		phone := CleanPhone(match)
		name := CleanName(strings.Replace(line, match, "", 1))

		if name == "" || phone == "" || seen[phone] {
			continue
		}
		seen[phone] = true
		accepted = append(accepted, Contact{Name: name, Phone: phone})
	}

	if len(accepted) == 0 {
		return nil, ErrNoNewRecords
	}
	return accepted, nil
}

// CleanPhone strips every non-digit character, including any leading '+'.
// Cleaning an already-clean digit string returns it unchanged.
func CleanPhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CleanName keeps only Latin letters, Arabic-script letters (U+0600–U+06FF)
// and whitespace, then trims.
func CleanName(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r >= 0x0600 && r <= 0x06FF:
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
