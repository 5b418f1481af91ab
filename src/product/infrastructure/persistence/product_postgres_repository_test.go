package persistence

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales/src/product/domain/entity"
	"sales/src/product/domain/port"
	domainSpec "sales/src/product/domain/specification"
	infraSpec "sales/src/product/infrastructure/specification"
)

func newProductRepository(t *testing.T) (port.ProductRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewProductPostgresRepository(db), mock
}

func TestProductRepositoryGetByID(t *testing.T) {
	repo, mock := newProductRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT Id, ProductName, UnitPrice FROM Product WHERE Id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"Id", "ProductName", "UnitPrice"}).
			AddRow(int64(7), "Yerba Mate 1kg", "150.50"))

	product, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, "Yerba Mate 1kg", product.ProductName)
	assert.True(t, product.UnitPrice.Equal(decimal.RequireFromString("150.50")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepositoryGetByIDTranslatesNotFound(t *testing.T) {
	repo, mock := newProductRepository(t)

	mock.ExpectQuery("SELECT Id, ProductName, UnitPrice FROM Product").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"Id", "ProductName", "UnitPrice"}))

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, entity.ErrProductNotFound)
}

func TestProductRepositoryQueryBySpecification(t *testing.T) {
	repo, mock := newProductRepository(t)

	mock.ExpectQuery("FROM Product p").
		WithArgs("%Yerba%").
		WillReturnRows(sqlmock.NewRows([]string{"Id", "ProductName", "UnitPrice"}).
			AddRow(int64(1), "Yerba Mate 1kg", "150").
			AddRow(int64(2), "Yerba Mate 500g", "90"))

	spec := infraSpec.NewGetProductsSpecification(domainSpec.GetProductsSpecificationContract{
		ProductName: "Yerba",
	})

	products, err := repo.QueryBySpecification(context.Background(), spec)
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, "Yerba Mate 1kg", products[0].ProductName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
