package account_test

import (
	"testing"
	"time"

	"daftar/internal/domain/account"
)

// TestAccountValidation tests validation of Account.
func TestAccountValidation(t *testing.T) {
	tests := []struct {
		name    string
		account account.Account
		wantErr bool
	}{
		{
			name:    "valid account",
			account: account.Account{ID: "a1", Email: "owner@example.com"},
			wantErr: false,
		},
		{
			name:    "empty email",
			account: account.Account{ID: "a1", Email: "  "},
			wantErr: true,
		},
		{
			name:    "email without at sign",
			account: account.Account{ID: "a1", Email: "owner.example.com"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestPasswordRoundTrip verifies SetPassword + CheckPassword.
func TestPasswordRoundTrip(t *testing.T) {
	a := account.Account{ID: "a1", Email: "owner@example.com"}
	if err := a.SetPassword("correct horse battery"); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	if a.PasswordHash == "" || a.PasswordHash == "correct horse battery" {
		t.Fatalf("password was not hashed: %q", a.PasswordHash)
	}
	if err := a.CheckPassword("correct horse battery"); err != nil {
		t.Errorf("CheckPassword(correct): %v", err)
	}
	if err := a.CheckPassword("wrong password!"); err == nil {
		t.Error("CheckPassword accepted a wrong password")
	}
}

// TestSetPasswordRejectsShort verifies the minimum length rule.
func TestSetPasswordRejectsShort(t *testing.T) {
	a := account.Account{}
	if err := a.SetPassword("short"); err != account.ErrPasswordTooShort {
		t.Errorf("err = %v, want ErrPasswordTooShort", err)
	}
	if err := a.SetPassword(""); err != account.ErrEmptyPassword {
		t.Errorf("err = %v, want ErrEmptyPassword", err)
	}
}

// TestLockout verifies the failed-login lockout behavior.
func TestLockout(t *testing.T) {
	a := account.Account{}
	for i := 0; i < 4; i++ {
		a.RecordFailedLogin()
	}
	if a.IsLocked() {
		t.Fatal("locked before 5 failures")
	}
	a.RecordFailedLogin()
	if !a.IsLocked() {
		t.Fatal("not locked after 5 failures")
	}
	if time.Until(a.LockedUntil) > 15*time.Minute {
		t.Errorf("lock window too long: %v", a.LockedUntil)
	}
	a.ResetFailedLogins()
	if a.IsLocked() || a.FailedLogins != 0 {
		t.Errorf("reset did not clear lockout: %+v", a)
	}
}
