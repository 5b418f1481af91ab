package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sales/src/sale/application/request"
	"sales/src/sale/application/response"
	"sales/src/sale/application/usecase"
	"sales/src/sale/domain/entity"
)

// SaleController maneja las peticiones HTTP para ventas.
type SaleController struct {
	createSaleUC *usecase.CreateSaleUseCase
	updateSaleUC *usecase.UpdateSaleUseCase
	getSaleUC    *usecase.GetSaleUseCase
	listSalesUC  *usecase.ListSalesUseCase
}

// NewSaleController crea una nueva instancia del controlador.
func NewSaleController(
	createSaleUC *usecase.CreateSaleUseCase,
	updateSaleUC *usecase.UpdateSaleUseCase,
	getSaleUC *usecase.GetSaleUseCase,
	listSalesUC *usecase.ListSalesUseCase,
) *SaleController {
	return &SaleController{
		createSaleUC: createSaleUC,
		updateSaleUC: updateSaleUC,
		getSaleUC:    getSaleUC,
		listSalesUC:  listSalesUC,
	}
}

// RegisterRoutes registra las rutas del controlador.
func (c *SaleController) RegisterRoutes(router *gin.RouterGroup) {
	sales := router.Group("/sales")
	{
		sales.GET("", c.ListSales)
		sales.GET("/:id", c.GetSale)
		sales.POST("", c.CreateSale)
		sales.PUT("/:id", c.UpdateSale)
	}
}

// ListSales busca ventas según los filtros de la query string.
func (c *SaleController) ListSales(ctx *gin.Context) {
	contract, messages := request.ParseListSalesRequest(ctx.Request.URL.Query())
	if len(messages) > 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": messages})
		return
	}

	sales, err := c.listSalesUC.Execute(ctx.Request.Context(), contract)
	if err != nil {
		log.Printf("Error listing sales: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       response.FromEntities(sales),
		"total_count": len(sales),
	})
}

// GetSale busca una venta por su Id, con items y referencias.
func (c *SaleController) GetSale(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	sale, err := c.getSaleUC.Execute(ctx.Request.Context(), id)
	if errors.Is(err, entity.ErrSaleNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		return
	}
	if err != nil {
		log.Printf("Error finding sale %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response.FromEntity(sale))
}

// CreateSale crea una venta con sus items.
func (c *SaleController) CreateSale(ctx *gin.Context) {
	var req request.CreateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if messages := req.Validate(); len(messages) > 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": messages})
		return
	}

	sale, err := c.createSaleUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		log.Printf("Error creating sale: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, response.FromEntity(sale))
}

// UpdateSale actualiza una venta. Si el cuerpo trae items, la lista recibida
// reemplaza por completo a la existente.
func (c *SaleController) UpdateSale(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req request.UpdateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	req.ID = id

	if messages := req.Validate(); len(messages) > 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": messages})
		return
	}

	sale, err := c.updateSaleUC.Execute(ctx.Request.Context(), &req)
	if errors.Is(err, entity.ErrSaleNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		return
	}
	if err != nil {
		log.Printf("Error updating sale %d: %v", id, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response.FromEntity(sale))
}

func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}
