// Package firestore contains the concrete implementation of the persistence
// layer using the Firestore document store.
package firestore

import (
	"context"
	"log/slog"

	"storefront/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Collection names. Logical schema only; Firestore has no DDL.
const (
	collectionProducts   = "products"
	collectionCategories = "categories"
	collectionHeroImages = "heroImages"
	collectionOrders     = "orders"
	collectionUsers      = "users"
)

// Params holds the dependencies for the Firestore client, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New initializes the Firestore client from the Firebase app credentials and
// registers its shutdown with the application lifecycle.
func New(params Params) (*firestore.Client, error) {
	client, err := NewClient(params.Ctx, &params.Config.Firebase)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Firestore client initialized",
		slog.String("project_id", params.Config.Firebase.ProjectID),
	)

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}

// NewClient builds a Firestore client outside the Fx lifecycle, for CLIs.
func NewClient(ctx context.Context, cfg *config.FirebaseConfig) (*firestore.Client, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	return client, nil
}
