package main

import (
	"database/sql"
	"log"
	"net/http"

	productUseCase "sales/src/product/application/usecase"
	productController "sales/src/product/infrastructure/controller"
	productPersistence "sales/src/product/infrastructure/persistence"
	saleUseCase "sales/src/sale/application/usecase"
	saleController "sales/src/sale/infrastructure/controller"
	salePersistence "sales/src/sale/infrastructure/persistence"
	sharedEvent "sales/src/shared/domain/event"
	sharedConfig "sales/src/shared/infrastructure/config"
	"sales/src/shared/infrastructure/messaging"
	"sales/src/shared/infrastructure/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	log.Println("🚀 Sales Service - Iniciando...")

	cfg, err := sharedConfig.Load()
	if err != nil {
		log.Fatalf("Error cargando configuración: %v", err)
	}

	// Configurar el router con Gin
	router := gin.New()

	// Agregar middlewares básicos necesarios
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.Metrics())

	// Configurar Prometheus metrics si está habilitado
	if cfg.PrometheusEnabled {
		log.Println("Registering /metrics endpoint for Sales service")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	} else {
		log.Println("Prometheus metrics disabled for Sales service")
	}

	// Conectar a la base de datos
	db, err := sharedConfig.OpenDB(cfg)
	if err != nil {
		log.Fatalf("Error conectando a la base de datos: %v", err)
	}
	defer db.Close()
	log.Println("✅ Conexión a la base de datos establecida con éxito")

	// Publicador de eventos de dominio
	eventStore := messaging.NewInMemoryEventStore()
	publisher := messaging.NewStorePublisher(eventStore)

	// API v1 grupo de rutas
	v1 := router.Group("/api/v1")

	// Health check
	router.GET("/health", healthHandler(db))
	v1.GET("/health", healthHandler(db))

	// Configurar módulos
	setupProductModule(v1, db, publisher)
	setupSaleModule(v1, db, publisher)

	// Iniciar el servidor
	log.Printf("✅ Servidor Sales Service iniciado en http://localhost:%s", cfg.Port)
	log.Printf("✅ Health endpoint: GET http://localhost:%s/health", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Error iniciando el servidor: %v", err)
	}
}

// healthHandler responde el estado del servicio y de la base de datos.
func healthHandler(db *sql.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := "ok"
		dbStatus := "ok"
		if err := db.Ping(); err != nil {
			status = "degraded"
			dbStatus = err.Error()
		}
		ctx.JSON(http.StatusOK, gin.H{"status": status, "database": dbStatus})
	}
}

// setupProductModule configura el módulo Product
func setupProductModule(router *gin.RouterGroup, db *sql.DB, publisher sharedEvent.Publisher) {
	log.Println("Configurando módulo Product...")

	// Crear repositorios
	productRepo := productPersistence.NewProductPostgresRepository(db)

	// Crear casos de uso
	createProductUC := productUseCase.NewCreateProductUseCase(productRepo, publisher)
	updateProductUC := productUseCase.NewUpdateProductUseCase(productRepo, publisher)
	deleteProductUC := productUseCase.NewDeleteProductUseCase(productRepo)
	getProductUC := productUseCase.NewGetProductUseCase(productRepo)
	listProductsUC := productUseCase.NewListProductsUseCase(productRepo)

	// Crear controladores y registrar rutas
	productCtrl := productController.NewProductController(createProductUC, updateProductUC, deleteProductUC, getProductUC, listProductsUC)
	productCtrl.RegisterRoutes(router)

	log.Println("Módulo Product configurado exitosamente")
}

// setupSaleModule configura el módulo Sale
func setupSaleModule(router *gin.RouterGroup, db *sql.DB, publisher sharedEvent.Publisher) {
	log.Println("Configurando módulo Sale...")

	// Crear repositorios
	saleRepo := salePersistence.NewSalePostgresRepository(db)
	customerRepo := salePersistence.NewCustomerPostgresRepository(db)
	branchRepo := salePersistence.NewBranchPostgresRepository(db)

	// Crear casos de uso
	createSaleUC := saleUseCase.NewCreateSaleUseCase(saleRepo, publisher)
	updateSaleUC := saleUseCase.NewUpdateSaleUseCase(saleRepo, publisher)
	getSaleUC := saleUseCase.NewGetSaleUseCase(saleRepo)
	listSalesUC := saleUseCase.NewListSalesUseCase(saleRepo)
	listCustomersUC := saleUseCase.NewListCustomersUseCase(customerRepo)
	listBranchesUC := saleUseCase.NewListBranchesUseCase(branchRepo)

	// Crear controladores y registrar rutas
	saleCtrl := saleController.NewSaleController(createSaleUC, updateSaleUC, getSaleUC, listSalesUC)
	saleCtrl.RegisterRoutes(router)

	referenceCtrl := saleController.NewReferenceController(listCustomersUC, listBranchesUC)
	referenceCtrl.RegisterRoutes(router)

	log.Println("Módulo Sale configurado exitosamente")
}
