package routes

import (
	"catalog-service/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every controller into the router.
func RegisterRoutes(
	r *gin.Engine,
	products *controllers.ProductController,
	search *controllers.SearchController,
	vendors *controllers.VendorController,
	uploads *controllers.UploadController,
) {
	productRoutes := r.Group("/products")
	{
		productRoutes.GET("", products.GetProducts)
		productRoutes.GET("/viewed", products.GetRecentlyViewed)
		productRoutes.GET("/:id", products.GetProductByID)
		productRoutes.POST("", products.CreateProduct)
		productRoutes.POST("/import", products.ImportProducts)
		productRoutes.PUT("/:id", products.UpdateProduct)
		productRoutes.DELETE("/:id", products.DeleteProduct)
	}

	searchRoutes := r.Group("/search")
	{
		searchRoutes.GET("", search.Search)
		searchRoutes.GET("/suggestions", search.Suggest)
		searchRoutes.GET("/recent", search.GetRecentSearches)
		searchRoutes.DELETE("/recent", search.ClearRecentSearches)
	}

	vendorRoutes := r.Group("/vendors")
	{
		vendorRoutes.GET("", vendors.GetVendors)
		vendorRoutes.GET("/:id", vendors.GetVendorByID)
	}

	r.GET("/categories", vendors.GetCategories)

	r.POST("/uploads/presign", uploads.PresignUpload)
}
