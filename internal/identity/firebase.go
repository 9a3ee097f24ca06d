package identity

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// FirebaseProvider implements Provider on top of the Firebase Admin SDK.
type FirebaseProvider struct {
	client *fbauth.Client
}

// Ensure FirebaseProvider implements Provider
var _ Provider = (*FirebaseProvider)(nil)

// NewFirebaseProvider initializes the Admin SDK from a service account file.
func NewFirebaseProvider(ctx context.Context, credentialsFile string) (*FirebaseProvider, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase auth client: %w", err)
	}
	return &FirebaseProvider{client: client}, nil
}

// CreateUser creates a Firebase user and returns its UID.
func (p *FirebaseProvider) CreateUser(ctx context.Context, email, password, displayName, phoneNumber string) (string, error) {
	params := (&fbauth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName).
		PhoneNumber(phoneNumber)

	record, err := p.client.CreateUser(ctx, params)
	if err != nil {
		return "", fmt.Errorf("firebase create user: %w", err)
	}
	return record.UID, nil
}

// DeleteUser removes a Firebase user by UID.
func (p *FirebaseProvider) DeleteUser(ctx context.Context, uid string) error {
	if err := p.client.DeleteUser(ctx, uid); err != nil {
		return fmt.Errorf("firebase delete user %s: %w", uid, err)
	}
	return nil
}

// VerifyIDToken validates a Firebase ID token and extracts the email claims.
func (p *FirebaseProvider) VerifyIDToken(ctx context.Context, idToken string) (*IDToken, error) {
	token, err := p.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("firebase verify token: %w", err)
	}

	decoded := &IDToken{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		decoded.Email = email
	}
	if verified, ok := token.Claims["email_verified"].(bool); ok {
		decoded.EmailVerified = verified
	}
	return decoded, nil
}

// EmailVerificationLink generates a verification link for the given email.
func (p *FirebaseProvider) EmailVerificationLink(ctx context.Context, email string) (string, error) {
	link, err := p.client.EmailVerificationLink(ctx, email)
	if err != nil {
		return "", fmt.Errorf("firebase email verification link: %w", err)
	}
	return link, nil
}
