package firestore

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type heroImageRepository struct {
	client *firestore.Client
}

// NewHeroImageRepository creates a new instance of a HeroImageRepository
// backed by Firestore.
func NewHeroImageRepository(client *firestore.Client) repository.HeroImageRepository {
	return &heroImageRepository{client: client}
}

func (r *heroImageRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(collectionHeroImages)
}

// ListActive retrieves active banners ordered by displayOrder asc. The
// where-plus-order combination needs a composite index.
func (r *heroImageRepository) ListActive(ctx context.Context) ([]*entity.HeroImage, error) {
	iter := r.collection().
		Where("isActive", "==", true).
		OrderBy("displayOrder", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var images []*entity.HeroImage
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, translateError(err, repository.ErrHeroImageNotFound)
		}

		var m model.HeroImageModel
		if err := doc.DataTo(&m); err != nil {
			return nil, translateError(err, repository.ErrHeroImageNotFound)
		}
		images = append(images, model.ToHeroImageDomain(doc.Ref.ID, &m))
	}

	return images, nil
}

// Create persists a new banner.
func (r *heroImageRepository) Create(ctx context.Context, image *entity.HeroImage) error {
	_, err := r.collection().Doc(image.ID).Create(ctx, model.FromHeroImageDomain(image))
	return translateError(err, repository.ErrHeroImageNotFound)
}

// Update replaces an existing banner record.
func (r *heroImageRepository) Update(ctx context.Context, image *entity.HeroImage) error {
	docRef := r.collection().Doc(image.ID)
	if _, err := docRef.Get(ctx); err != nil {
		return translateError(err, repository.ErrHeroImageNotFound)
	}

	_, err := docRef.Set(ctx, model.FromHeroImageDomain(image))
	return translateError(err, repository.ErrHeroImageNotFound)
}

// Delete removes a banner.
func (r *heroImageRepository) Delete(ctx context.Context, id string) error {
	_, err := r.collection().Doc(id).Delete(ctx)
	return translateError(err, repository.ErrHeroImageNotFound)
}
