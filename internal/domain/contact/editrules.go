package contact

import (
	"fmt"
	"strings"
)

// FieldErrors maps a field name ("name", "phone") to a user-facing message.
type FieldErrors map[string]string

// ValidateEdit checks an edited record against the collection it lives in.
// The record at index is excluded from the duplicate check so a no-op save
// passes. Unlike the batch import path, the edit path requires at least
// MinEditPhoneDigits characters in the phone.
//
// PRE: 0 <= index < len(collection)
// POST: returns the candidate with name and phone trimmed, plus one message
// per violated rule; an empty map means the edit is accepted
// INVARIANT: collection is not mutated
func ValidateEdit(candidate Contact, index int, collection []Contact) (Contact, FieldErrors) {
	candidate.Name = strings.TrimSpace(candidate.Name)
	candidate.Phone = strings.TrimSpace(candidate.Phone)

	errs := make(FieldErrors)
	if candidate.Name == "" {
		errs["name"] = "name is required"
	}
	if candidate.Phone == "" {
		errs["phone"] = "phone is required"
	} else if len(candidate.Phone) < MinEditPhoneDigits {
		errs["phone"] = fmt.Sprintf("phone must be at least %d digits", MinEditPhoneDigits)
	} else {
		for i, other := range collection {
			if i == index {
				continue
			}
			if other.Phone == candidate.Phone {
				errs["phone"] = "phone is already used by another contact"
				break
			}
		}
	}
	return candidate, errs
}
