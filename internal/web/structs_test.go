package web

import (
	"strings"
	"testing"
)

func TestSignInRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     signInRequest
		wantErr string
	}{
		{
			name: "valid",
			req:  signInRequest{Email: "jane@example.com", Password: "secret123"},
		},
		{
			name:    "empty email",
			req:     signInRequest{Password: "secret123"},
			wantErr: "email must not be empty",
		},
		{
			name:    "malformed email",
			req:     signInRequest{Email: "not-an-email", Password: "secret123"},
			wantErr: "email must be a valid email address",
		},
		{
			name:    "empty password",
			req:     signInRequest{Email: "jane@example.com"},
			wantErr: "password must not be empty",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := readableErrors(validate.Struct(tt.req))
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestSignUpRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     signUpRequest
		wantErr string
	}{
		{
			name: "valid",
			req:  signUpRequest{Email: "jane@example.com", Password: "secret123", PasswordRepeat: "secret123"},
		},
		{
			name:    "short password",
			req:     signUpRequest{Email: "jane@example.com", Password: "short", PasswordRepeat: "short"},
			wantErr: "password must be at least 8 characters",
		},
		{
			name:    "missing confirmation",
			req:     signUpRequest{Email: "jane@example.com", Password: "secret123"},
			wantErr: "password confirmation must not be empty",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := readableErrors(validate.Struct(tt.req))
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}
