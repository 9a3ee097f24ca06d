package identity

import "context"

// IDToken is the decoded form of a provider-issued ID token.
type IDToken struct {
	UID           string `json:"uid"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
}

// Provider is the external identity provider consumed by the registration and
// verification flows. Exactly one adapter exists per deployment.
type Provider interface {
	// CreateUser creates the parallel identity record and returns its reference.
	CreateUser(ctx context.Context, email, password, displayName, phoneNumber string) (string, error)
	// DeleteUser removes an identity record. Used as the compensating action
	// when a local insert fails after the identity record already exists.
	DeleteUser(ctx context.Context, uid string) error
	// VerifyIDToken validates a provider-issued ID token.
	VerifyIDToken(ctx context.Context, idToken string) (*IDToken, error)
	// EmailVerificationLink generates an email verification link for the address.
	EmailVerificationLink(ctx context.Context, email string) (string, error)
}
