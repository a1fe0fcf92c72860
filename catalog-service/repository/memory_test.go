package repository_test

import (
	"context"
	"testing"

	"github.com/aurora-jewelry/aurora-store/catalog-service/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAll_ReturnsSeedInOrder(t *testing.T) {
	repo := repository.NewSeededCatalog()

	products, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 8)
	for i, p := range products {
		assert.Equal(t, i+1, p.ID)
	}
	assert.Equal(t, "Aurora Pendant", products[0].Name)
	assert.Equal(t, "Galaxy Cuff", products[7].Name)
}

func TestFindByID_Found(t *testing.T) {
	repo := repository.NewSeededCatalog()

	product, err := repo.FindByID(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, 2, product.ID)
	assert.Equal(t, "Luna Ring", product.Name)
	assert.Equal(t, 129.0, product.Price)
}

func TestFindByID_NotFound(t *testing.T) {
	repo := repository.NewSeededCatalog()

	product, err := repo.FindByID(context.Background(), 999)

	assert.Nil(t, product)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestFindByCategory_CaseInsensitive(t *testing.T) {
	repo := repository.NewSeededCatalog()

	lower, err := repo.FindByCategory(context.Background(), "rings")
	require.NoError(t, err)
	upper, err := repo.FindByCategory(context.Background(), "Rings")
	require.NoError(t, err)

	assert.Equal(t, lower, upper)
	require.Len(t, lower, 2)
	for _, p := range lower {
		assert.Equal(t, "rings", p.Category)
	}
}

func TestFindByCategory_UnknownYieldsEmpty(t *testing.T) {
	repo := repository.NewSeededCatalog()

	products, err := repo.FindByCategory(context.Background(), "watches")

	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestSearch_EmptyQueryReturnsFullCatalog(t *testing.T) {
	repo := repository.NewSeededCatalog()

	products, err := repo.Search(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, products, 8)
	assert.Equal(t, 1, products[0].ID)
}

func TestSearch_MatchesNameDescriptionCategory(t *testing.T) {
	repo := repository.NewSeededCatalog()

	byName, err := repo.Search(context.Background(), "LUNA")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Luna Ring", byName[0].Name)

	byDescription, err := repo.Search(context.Background(), "moonstone")
	require.NoError(t, err)
	require.Len(t, byDescription, 1)
	assert.Equal(t, 2, byDescription[0].ID)

	byCategory, err := repo.Search(context.Background(), "earrings")
	require.NoError(t, err)
	require.NotEmpty(t, byCategory)
}

func TestSearch_NoMatchYieldsEmpty(t *testing.T) {
	repo := repository.NewSeededCatalog()

	products, err := repo.Search(context.Background(), "platinum submarine")

	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestFeatured_FirstThree(t *testing.T) {
	repo := repository.NewSeededCatalog()

	products, err := repo.Featured(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{products[0].ID, products[1].ID, products[2].ID})
}

func TestFeatured_WindowLargerThanCatalog(t *testing.T) {
	repo := repository.NewSeededCatalog()

	products, err := repo.Featured(context.Background(), 50)

	require.NoError(t, err)
	assert.Len(t, products, 8)
}
