package firestore

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type categoryRepository struct {
	client *firestore.Client
}

// NewCategoryRepository creates a new instance of a CategoryRepository backed
// by Firestore.
func NewCategoryRepository(client *firestore.Client) repository.CategoryRepository {
	return &categoryRepository{client: client}
}

func (r *categoryRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(collectionCategories)
}

// List retrieves all categories ordered by (displayOrder asc, name asc).
// The compound ordering needs a composite index.
func (r *categoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	iter := r.collection().
		OrderBy("displayOrder", firestore.Asc).
		OrderBy("name", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var categories []*entity.Category
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, translateError(err, repository.ErrCategoryNotFound)
		}

		var m model.CategoryModel
		if err := doc.DataTo(&m); err != nil {
			return nil, translateError(err, repository.ErrCategoryNotFound)
		}
		categories = append(categories, model.ToCategoryDomain(doc.Ref.ID, &m))
	}

	return categories, nil
}

// Create persists a new category.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	_, err := r.collection().Doc(category.ID).Create(ctx, model.FromCategoryDomain(category))
	return translateError(err, repository.ErrCategoryNotFound)
}

// Update replaces an existing category record.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	docRef := r.collection().Doc(category.ID)
	if _, err := docRef.Get(ctx); err != nil {
		return translateError(err, repository.ErrCategoryNotFound)
	}

	_, err := docRef.Set(ctx, model.FromCategoryDomain(category))
	return translateError(err, repository.ErrCategoryNotFound)
}

// Delete removes a category.
func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.collection().Doc(id).Delete(ctx)
	return translateError(err, repository.ErrCategoryNotFound)
}
