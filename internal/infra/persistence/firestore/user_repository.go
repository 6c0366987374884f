package firestore

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
)

type userRepository struct {
	client *firestore.Client
}

// NewUserRepository creates a new instance of a UserRepository backed by
// Firestore. Profile documents are keyed by the identity platform UID.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(collectionUsers)
}

// FindByUID retrieves a single profile by the identity platform UID.
func (r *userRepository) FindByUID(ctx context.Context, uid string) (*entity.User, error) {
	doc, err := r.collection().Doc(uid).Get(ctx)
	if err != nil {
		return nil, translateError(err, repository.ErrUserNotFound)
	}

	var m model.UserModel
	if err := doc.DataTo(&m); err != nil {
		return nil, translateError(err, repository.ErrUserNotFound)
	}

	return model.ToUserDomain(doc.Ref.ID, &m), nil
}

// Save creates or replaces a profile record.
func (r *userRepository) Save(ctx context.Context, user *entity.User) error {
	_, err := r.collection().Doc(user.UID).Set(ctx, model.FromUserDomain(user))
	return translateError(err, repository.ErrUserNotFound)
}

// SaveDefaultAddress stores the user's default shipping address. A merge
// write creates the profile document when absent without clobbering the
// other fields when present.
func (r *userRepository) SaveDefaultAddress(ctx context.Context, uid string, address *entity.ShippingAddress) error {
	_, err := r.collection().Doc(uid).Set(ctx, map[string]any{
		"defaultAddress": model.FromAddressDomain(address),
		"updatedAt":      time.Now().UTC(),
	}, firestore.MergeAll)

	return translateError(err, repository.ErrUserNotFound)
}
