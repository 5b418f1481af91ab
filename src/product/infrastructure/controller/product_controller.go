package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sales/src/product/application/request"
	"sales/src/product/application/response"
	"sales/src/product/application/usecase"
	"sales/src/product/domain/entity"
)

// ProductController maneja las peticiones HTTP para productos.
type ProductController struct {
	createProductUC *usecase.CreateProductUseCase
	updateProductUC *usecase.UpdateProductUseCase
	deleteProductUC *usecase.DeleteProductUseCase
	getProductUC    *usecase.GetProductUseCase
	listProductsUC  *usecase.ListProductsUseCase
}

// NewProductController crea una nueva instancia del controlador.
func NewProductController(
	createProductUC *usecase.CreateProductUseCase,
	updateProductUC *usecase.UpdateProductUseCase,
	deleteProductUC *usecase.DeleteProductUseCase,
	getProductUC *usecase.GetProductUseCase,
	listProductsUC *usecase.ListProductsUseCase,
) *ProductController {
	return &ProductController{
		createProductUC: createProductUC,
		updateProductUC: updateProductUC,
		deleteProductUC: deleteProductUC,
		getProductUC:    getProductUC,
		listProductsUC:  listProductsUC,
	}
}

// RegisterRoutes registra las rutas del controlador.
func (c *ProductController) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", c.ListProducts)
		products.GET("/:id", c.GetProduct)
		products.POST("", c.CreateProduct)
		products.PUT("/:id", c.UpdateProduct)
		products.DELETE("/:id", c.DeleteProduct)
	}
}

// ListProducts busca productos según los filtros de la query string.
func (c *ProductController) ListProducts(ctx *gin.Context) {
	contract, messages := request.ParseListProductsRequest(ctx.Request.URL.Query())
	if len(messages) > 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": messages})
		return
	}

	products, err := c.listProductsUC.Execute(ctx.Request.Context(), contract)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       response.FromEntities(products),
		"total_count": len(products),
	})
}

// GetProduct busca un producto por su Id.
func (c *ProductController) GetProduct(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	product, err := c.getProductUC.Execute(ctx.Request.Context(), id)
	if errors.Is(err, entity.ErrProductNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		log.Printf("Error finding product %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response.FromEntity(product))
}

// CreateProduct crea un nuevo producto.
func (c *ProductController) CreateProduct(ctx *gin.Context) {
	var req request.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if messages := req.Validate(); len(messages) > 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": messages})
		return
	}

	product, err := c.createProductUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		log.Printf("Error creating product: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, response.FromEntity(product))
}

// UpdateProduct actualiza un producto existente.
func (c *ProductController) UpdateProduct(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req request.UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	req.ID = id

	if messages := req.Validate(); len(messages) > 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": messages})
		return
	}

	product, err := c.updateProductUC.Execute(ctx.Request.Context(), &req)
	if errors.Is(err, entity.ErrProductNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		log.Printf("Error updating product %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response.FromEntity(product))
}

// DeleteProduct elimina un producto por su Id.
func (c *ProductController) DeleteProduct(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	err := c.deleteProductUC.Execute(ctx.Request.Context(), id)
	if errors.Is(err, entity.ErrProductNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		log.Printf("Error deleting product %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}
