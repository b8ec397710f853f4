package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/regiondist/catalog-backend/internal/adapters/repository"
	"github.com/regiondist/catalog-backend/internal/middleware"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRoutes(router *gin.Engine, db *mongo.Database) {
	logrus.Info("Setting up routes...")

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "catalog-backend",
		})
	})

	if db == nil {
		logrus.Warn("Database not connected - running with limited functionality")
		router.Any("/api/*path", func(c *gin.Context) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Database connection not available",
			})
		})
		return
	}

	navbarRepo := repository.NewNavbarCategoryRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	subCategoryRepo := repository.NewSubCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	contactRepo := repository.NewContactEnquiryRepository(db)
	productEnquiryRepo := repository.NewProductEnquiryRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	authHandler := NewAuthHandler(adminRepo)
	navbarHandler := NewNavbarCategoryHandler(navbarRepo, categoryRepo)
	categoryHandler := NewCategoryHandler(categoryRepo, navbarRepo, subCategoryRepo, productRepo)
	subCategoryHandler := NewSubCategoryHandler(subCategoryRepo, categoryRepo, productRepo)
	productHandler := NewProductHandler(productRepo, categoryRepo, subCategoryRepo)
	enquiryHandler := NewEnquiryHandler(contactRepo, productEnquiryRepo, notificationRepo)
	notificationHandler := NewNotificationHandler(notificationRepo)
	dashboardHandler := NewDashboardHandler(dashboardRepo)
	pageHandler := NewPageHandler(navbarRepo, categoryRepo, subCategoryRepo, productRepo)
	uploadHandler := NewUploadHandler()

	// Public catalog and lead routes
	api := router.Group("/api")
	{
		api.GET("/navbar-category", navbarHandler.ListPublic)
		api.GET("/category/by-navbar/:slug", categoryHandler.ListByNavbarSlug)
		api.GET("/subcategory/by-category/:slug", subCategoryHandler.ListByCategorySlug)
		api.GET("/product/by-category/:slug", productHandler.ListByCategorySlug)
		api.GET("/product/by-subcategory/:slug", productHandler.ListBySubCategorySlug)
		api.GET("/product/by-slug/:slug", productHandler.GetBySlugPublic)
		api.GET("/page/*slugs", pageHandler.Resolve)

		api.POST("/contact-enquiry", enquiryHandler.CreateContactEnquiry)
		api.POST("/product-enquiry", enquiryHandler.CreateProductEnquiry)

		api.POST("/admin/login", authHandler.Login)
	}

	// Admin routes, all behind the shared session guard
	admin := router.Group("/api/admin")
	admin.Use(middleware.AdminAuthMiddleware())
	{
		admin.POST("/logout", authHandler.Logout)
		admin.GET("/verify", authHandler.Verify)

		navbar := admin.Group("/navbar-category")
		{
			navbar.GET("", navbarHandler.List)
			navbar.POST("", navbarHandler.Create)
			navbar.GET("/:id", navbarHandler.GetByID)
			navbar.PUT("/:id", navbarHandler.Update)
			navbar.DELETE("/:id", navbarHandler.Delete)
		}

		category := admin.Group("/category")
		{
			category.GET("", categoryHandler.List)
			category.POST("", categoryHandler.Create)
			category.GET("/:id", categoryHandler.GetByID)
			category.PUT("/:id", categoryHandler.Update)
			category.DELETE("/:id", categoryHandler.Delete)
		}

		subCategory := admin.Group("/subcategory")
		{
			subCategory.GET("", subCategoryHandler.List)
			subCategory.POST("", subCategoryHandler.Create)
			subCategory.GET("/:id", subCategoryHandler.GetByID)
			subCategory.PUT("/:id", subCategoryHandler.Update)
			subCategory.DELETE("/:id", subCategoryHandler.Delete)
		}

		product := admin.Group("/product")
		{
			product.GET("", productHandler.List)
			product.POST("", productHandler.Create)
			product.GET("/:id", productHandler.GetByID)
			product.PUT("/:id", productHandler.Update)
			product.DELETE("/:id", productHandler.Delete)
		}

		contactEnquiry := admin.Group("/contact-enquiry")
		{
			contactEnquiry.GET("", enquiryHandler.ListContactEnquiries)
			contactEnquiry.PUT("/:id/status", enquiryHandler.UpdateContactEnquiryStatus)
			contactEnquiry.DELETE("/:id", enquiryHandler.DeleteContactEnquiry)
		}

		productEnquiry := admin.Group("/product-enquiry")
		{
			productEnquiry.GET("", enquiryHandler.ListProductEnquiries)
			productEnquiry.PUT("/:id/status", enquiryHandler.UpdateProductEnquiryStatus)
			productEnquiry.DELETE("/:id", enquiryHandler.DeleteProductEnquiry)
		}

		notifications := admin.Group("/notifications")
		{
			notifications.GET("", notificationHandler.List)
			notifications.POST("", notificationHandler.Create)
			notifications.PUT("", notificationHandler.MarkRead)
			notifications.DELETE("/:id", notificationHandler.Delete)
			notifications.DELETE("", notificationHandler.Clear)
		}

		admin.GET("/dashboard", dashboardHandler.GetStats)
		admin.POST("/upload", uploadHandler.UploadImage)
	}
}
