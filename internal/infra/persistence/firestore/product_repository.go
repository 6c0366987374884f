package firestore

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type productRepository struct {
	client *firestore.Client
}

// NewProductRepository creates a new instance of a ProductRepository backed
// by Firestore.
func NewProductRepository(client *firestore.Client) repository.ProductRepository {
	return &productRepository{client: client}
}

func (r *productRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(collectionProducts)
}

// List retrieves all products ordered by name.
func (r *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	iter := r.collection().OrderBy("name", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var products []*entity.Product
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, translateError(err, repository.ErrProductNotFound)
		}

		var m model.ProductModel
		if err := doc.DataTo(&m); err != nil {
			return nil, translateError(err, repository.ErrProductNotFound)
		}

		product, err := model.ToProductDomain(doc.Ref.ID, &m)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

// FindByID retrieves a single product by its document ID.
func (r *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		return nil, translateError(err, repository.ErrProductNotFound)
	}

	var m model.ProductModel
	if err := doc.DataTo(&m); err != nil {
		return nil, translateError(err, repository.ErrProductNotFound)
	}

	return model.ToProductDomain(doc.Ref.ID, &m)
}

// Create persists a new product. Create (not Set) so a duplicate ID surfaces
// as ErrAlreadyExists instead of silently overwriting.
func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	_, err := r.collection().Doc(product.ID).Create(ctx, model.FromProductDomain(product))
	return translateError(err, repository.ErrProductNotFound)
}

// Update replaces an existing product record.
func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	docRef := r.collection().Doc(product.ID)
	if _, err := docRef.Get(ctx); err != nil {
		return translateError(err, repository.ErrProductNotFound)
	}

	_, err := docRef.Set(ctx, model.FromProductDomain(product))
	return translateError(err, repository.ErrProductNotFound)
}

// Delete removes a product from the catalog. Firestore deletes are
// idempotent; deleting an absent document is not an error.
func (r *productRepository) Delete(ctx context.Context, id string) error {
	_, err := r.collection().Doc(id).Delete(ctx)
	return translateError(err, repository.ErrProductNotFound)
}
