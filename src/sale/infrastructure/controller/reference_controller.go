package controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"sales/src/sale/application/usecase"
)

// ReferenceController expone las lecturas de clientes y sucursales.
type ReferenceController struct {
	listCustomersUC *usecase.ListCustomersUseCase
	listBranchesUC  *usecase.ListBranchesUseCase
}

// NewReferenceController crea una nueva instancia del controlador.
func NewReferenceController(
	listCustomersUC *usecase.ListCustomersUseCase,
	listBranchesUC *usecase.ListBranchesUseCase,
) *ReferenceController {
	return &ReferenceController{
		listCustomersUC: listCustomersUC,
		listBranchesUC:  listBranchesUC,
	}
}

// RegisterRoutes registra las rutas del controlador.
func (c *ReferenceController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/customers", c.ListCustomers)
	router.GET("/branches", c.ListBranches)
}

// ListCustomers devuelve todos los clientes.
func (c *ReferenceController) ListCustomers(ctx *gin.Context) {
	customers, err := c.listCustomersUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listing customers: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"items": customers, "total_count": len(customers)})
}

// ListBranches devuelve todas las sucursales.
func (c *ReferenceController) ListBranches(ctx *gin.Context) {
	branches, err := c.listBranchesUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listing branches: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"items": branches, "total_count": len(branches)})
}
