// Package messaging builds deep links into external chat applications.
package messaging

import (
	"errors"
	"strings"
)

// ErrNoDigits is returned when a phone number contains no usable digits.
var ErrNoDigits = errors.New("phone number has no digits")

// WhatsAppLink builds a wa.me chat link for the given phone number.
// Non-digit characters are stripped; wa.me expects the number in
// international format without a leading plus.
// PRE: phone may contain spaces, dashes or a leading +
// POST: Returns https://wa.me/<digits>, or ErrNoDigits
func WhatsAppLink(phone string) (string, error) {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return "", ErrNoDigits
	}
	return "https://wa.me/" + digits.String(), nil
}
