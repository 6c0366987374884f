package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogServiceForTest(t *testing.T) (usecase.CatalogUsecase, *mockRepo.MockProductRepository, *mockRepo.MockCategoryRepository, *mockRepo.MockHeroImageRepository) {
	t.Helper()

	productRepo := mockRepo.NewMockProductRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	heroImageRepo := mockRepo.NewMockHeroImageRepository(t)

	return NewCatalogService(productRepo, categoryRepo, heroImageRepo), productRepo, categoryRepo, heroImageRepo
}

func TestCatalogService_ListProducts(t *testing.T) {
	svc, productRepo, _, _ := newCatalogServiceForTest(t)
	ctx := context.Background()

	products := []*entity.Product{
		testProduct("p1", "Coffee", "10.00"),
		testProduct("p2", "Tea", "5.00"),
	}

	productRepo.EXPECT().
		List(ctx).
		Return(products, nil)

	got, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, products, got)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	svc, productRepo, _, _ := newCatalogServiceForTest(t)
	ctx := context.Background()

	productRepo.EXPECT().
		FindByID(ctx, "ghost").
		Return(nil, repository.ErrProductNotFound)

	_, err := svc.GetProduct(ctx, "ghost")
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_StorageErrorTranslation(t *testing.T) {
	tests := []struct {
		name     string
		repoErr  error
		wantCode string
	}{
		{
			name:     "permission denied",
			repoErr:  errors.Wrap(repository.ErrPermissionDenied, "rules rejected read"),
			wantCode: domainerrors.ErrStorePermissionDenied.ErrorCode(),
		},
		{
			name:     "index missing",
			repoErr:  errors.Wrap(repository.ErrIndexMissing, "composite index required"),
			wantCode: domainerrors.ErrStoreIndexMissing.ErrorCode(),
		},
		{
			name:     "unavailable",
			repoErr:  errors.Wrap(repository.ErrUnavailable, "deadline exceeded"),
			wantCode: domainerrors.ErrStoreUnavailable.ErrorCode(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, productRepo, _, _ := newCatalogServiceForTest(t)
			ctx := context.Background()

			productRepo.EXPECT().
				List(ctx).
				Return(nil, tt.repoErr)

			_, err := svc.ListProducts(ctx)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantCode, appErr.ErrorCode())
		})
	}
}

func TestCatalogService_UnknownStorageErrorPassesThrough(t *testing.T) {
	svc, productRepo, _, _ := newCatalogServiceForTest(t)
	ctx := context.Background()

	repoErr := errors.New("corrupt document")
	productRepo.EXPECT().
		List(ctx).
		Return(nil, repoErr)

	_, err := svc.ListProducts(ctx)
	require.Error(t, err)

	var appErr domainerrors.AppError
	assert.False(t, errors.As(err, &appErr))
}

func TestCatalogService_ListCategories(t *testing.T) {
	svc, _, categoryRepo, _ := newCatalogServiceForTest(t)
	ctx := context.Background()

	categories := []*entity.Category{
		{ID: "c1", Name: "Beverages", DisplayOrder: 1},
		{ID: "c2", Name: "Snacks", DisplayOrder: 2},
	}

	categoryRepo.EXPECT().
		List(ctx).
		Return(categories, nil)

	got, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, categories, got)
}

func TestCatalogService_ListHeroImages(t *testing.T) {
	svc, _, _, heroImageRepo := newCatalogServiceForTest(t)
	ctx := context.Background()

	images := []*entity.HeroImage{
		{ID: "h1", ImageURL: "https://cdn.example.com/h1.jpg", IsActive: true},
	}

	heroImageRepo.EXPECT().
		ListActive(ctx).
		Return(images, nil)

	got, err := svc.ListHeroImages(ctx)
	require.NoError(t, err)
	assert.Equal(t, images, got)
}
