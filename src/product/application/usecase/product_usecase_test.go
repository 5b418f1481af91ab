package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales/src/product/application/request"
	"sales/src/product/domain/entity"
	productEvent "sales/src/product/domain/event"
	domainSpec "sales/src/product/domain/specification"
	sharedSpec "sales/src/shared/domain/specification"
	"sales/src/shared/infrastructure/messaging"
)

// fakeProductRepository guarda los productos en memoria para los casos de uso.
type fakeProductRepository struct {
	products map[int64]*entity.Product
	nextID   int64
	lastSpec sharedSpec.Specification
}

func newFakeProductRepository() *fakeProductRepository {
	return &fakeProductRepository{products: make(map[int64]*entity.Product), nextID: 1}
}

func (r *fakeProductRepository) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, entity.ErrProductNotFound
	}
	clone := *product
	return &clone, nil
}

func (r *fakeProductRepository) Insert(_ context.Context, product *entity.Product) (int64, error) {
	product.ID = r.nextID
	r.nextID++
	r.products[product.ID] = product
	return product.ID, nil
}

func (r *fakeProductRepository) Update(_ context.Context, product *entity.Product) (bool, error) {
	if _, ok := r.products[product.ID]; !ok {
		return false, nil
	}
	r.products[product.ID] = product
	return true, nil
}

func (r *fakeProductRepository) DeleteByID(_ context.Context, id int64) (bool, error) {
	if _, ok := r.products[id]; !ok {
		return false, nil
	}
	delete(r.products, id)
	return true, nil
}

func (r *fakeProductRepository) QueryBySpecification(_ context.Context, spec sharedSpec.Specification) ([]*entity.Product, error) {
	r.lastSpec = spec
	var out []*entity.Product
	for _, product := range r.products {
		out = append(out, product)
	}
	return out, nil
}

func newProductPublisher() (*messaging.InMemoryEventStore, *messaging.StorePublisher) {
	store := messaging.NewInMemoryEventStore()
	return store, messaging.NewStorePublisher(store)
}

func TestCreateProductUseCase(t *testing.T) {
	repo := newFakeProductRepository()
	store, publisher := newProductPublisher()
	uc := NewCreateProductUseCase(repo, publisher)

	product, err := uc.Execute(context.Background(), &request.CreateProductRequest{
		ProductName: "Yerba Mate 1kg",
		UnitPrice:   decimal.NewFromInt(150),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), product.ID)
	assert.Len(t, store.EventsByType(productEvent.ProductCreatedEventType), 1)
}

func TestCreateProductUseCaseInvalidEntity(t *testing.T) {
	repo := newFakeProductRepository()
	store, publisher := newProductPublisher()
	uc := NewCreateProductUseCase(repo, publisher)

	_, err := uc.Execute(context.Background(), &request.CreateProductRequest{
		UnitPrice: decimal.NewFromInt(150),
	})
	assert.ErrorIs(t, err, entity.ErrProductNameRequired)
	assert.Empty(t, store.Events())
}

func TestUpdateProductUseCaseAppliesPresentFields(t *testing.T) {
	repo := newFakeProductRepository()
	store, publisher := newProductPublisher()
	seeded, err := entity.NewProduct("Yerba", decimal.NewFromInt(150))
	require.NoError(t, err)
	_, err = repo.Insert(context.Background(), seeded)
	require.NoError(t, err)

	uc := NewUpdateProductUseCase(repo, publisher)

	newPrice := decimal.NewFromInt(180)
	product, err := uc.Execute(context.Background(), &request.UpdateProductRequest{
		ID:        seeded.ID,
		UnitPrice: &newPrice,
	})
	require.NoError(t, err)

	// El nombre no vino en el request: queda como estaba.
	assert.Equal(t, "Yerba", product.ProductName)
	assert.True(t, product.UnitPrice.Equal(newPrice))
	assert.Len(t, store.EventsByType(productEvent.ProductUpdatedEventType), 1)
}

func TestUpdateProductUseCaseNotFound(t *testing.T) {
	repo := newFakeProductRepository()
	_, publisher := newProductPublisher()
	uc := NewUpdateProductUseCase(repo, publisher)

	_, err := uc.Execute(context.Background(), &request.UpdateProductRequest{ID: 99})
	assert.ErrorIs(t, err, entity.ErrProductNotFound)
}

func TestDeleteProductUseCase(t *testing.T) {
	repo := newFakeProductRepository()
	seeded, err := entity.NewProduct("Yerba", decimal.NewFromInt(150))
	require.NoError(t, err)
	_, err = repo.Insert(context.Background(), seeded)
	require.NoError(t, err)

	uc := NewDeleteProductUseCase(repo)

	require.NoError(t, uc.Execute(context.Background(), seeded.ID))
	assert.ErrorIs(t, uc.Execute(context.Background(), seeded.ID), entity.ErrProductNotFound)
}

func TestListProductsUseCaseCompilesContract(t *testing.T) {
	repo := newFakeProductRepository()
	uc := NewListProductsUseCase(repo)

	contract := domainSpec.GetProductsSpecificationContract{ProductName: "Yerba"}
	_, err := uc.Execute(context.Background(), contract)
	require.NoError(t, err)

	require.NotNil(t, repo.lastSpec)
	assert.Contains(t, repo.lastSpec.ToSQLQuery(), "p.ProductName LIKE $1")
	assert.Equal(t, []any{"%Yerba%"}, repo.lastSpec.Parameters())
}
