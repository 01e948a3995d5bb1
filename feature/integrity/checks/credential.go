package checks

import (
	"context"

	"meeting-sync/core/calendly"
)

// IdentityResolver resolves the user behind the configured credential.
type IdentityResolver interface {
	GetIdentity(ctx context.Context) (string, error)
}

// CredentialReport is the result of validating the Calendly credential.
type CredentialReport struct {
	Valid   bool   `json:"valid"`
	UserURI string `json:"user_uri,omitempty"`
	Status  string `json:"status"` // "ok", "rejected", "unreachable"
	Error   string `json:"error,omitempty"`
}

// CheckCredential asks Calendly who the credential belongs to.
func CheckCredential(ctx context.Context, resolver IdentityResolver) CredentialReport {
	uri, err := resolver.GetIdentity(ctx)
	switch {
	case err == nil:
		return CredentialReport{Valid: true, UserURI: uri, Status: "ok"}
	case calendly.IsAuth(err):
		return CredentialReport{Status: "rejected", Error: err.Error()}
	default:
		return CredentialReport{Status: "unreachable", Error: err.Error()}
	}
}
