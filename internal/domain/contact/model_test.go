package contact_test

import (
	"testing"

	"daftar/internal/domain/contact"
)

// TestContactValidation tests the stored-record invariants.
func TestContactValidation(t *testing.T) {
	tests := []struct {
		name    string
		contact contact.Contact
		wantErr bool
	}{
		{
			name:    "valid contact",
			contact: contact.Contact{ID: "c1", Name: "محمد عبدالله", Phone: "0551234567"},
			wantErr: false,
		},
		{
			name:    "valid latin name",
			contact: contact.Contact{ID: "c2", Name: "Ben", Phone: "0441234567"},
			wantErr: false,
		},
		{
			name:    "empty name",
			contact: contact.Contact{ID: "c3", Name: "  ", Phone: "0551234567"},
			wantErr: true,
		},
		{
			name:    "empty phone",
			contact: contact.Contact{ID: "c4", Name: "أحمد", Phone: ""},
			wantErr: true,
		},
		{
			name:    "phone with separators",
			contact: contact.Contact{ID: "c5", Name: "أحمد", Phone: "055-123-4567"},
			wantErr: true,
		},
		{
			name:    "phone with plus",
			contact: contact.Contact{ID: "c6", Name: "أحمد", Phone: "+966551234567"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.contact.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
