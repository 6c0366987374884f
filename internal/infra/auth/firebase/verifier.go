// Package firebase implements identity verification against the Firebase
// Auth platform.
package firebase

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type tokenVerifier struct {
	client *auth.Client
	logger *slog.Logger
}

// NewTokenVerifier creates a TokenVerifier backed by the Firebase Auth SDK.
// Signing keys are fetched and cached by the SDK itself.
func NewTokenVerifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.TokenVerifier, error) {
	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase Auth client")
	}

	return &tokenVerifier{client: client, logger: logger}, nil
}

// Verify checks the ID token signature and expiry and returns the caller's
// identity. The admin flag comes from the "admin" custom claim; a missing or
// non-bool claim means not an admin.
func (v *tokenVerifier) Verify(ctx context.Context, idToken string) (*service.Identity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		v.logger.Debug("ID token verification failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "invalid ID token")
	}

	identity := &service.Identity{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}
	if admin, ok := token.Claims["admin"].(bool); ok {
		identity.Admin = admin
	}

	return identity, nil
}
