package controllers

import (
	"log"
	"net/http"

	"cafe-storefront/models"
	"cafe-storefront/services"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	catalogService *services.CatalogService
}

func NewCatalogController(catalogService *services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// @Summary Get categories
// @Description Get active menu categories ordered by sort order
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *CatalogController) GetAllCategories(c *gin.Context) {
	categories, err := ctrl.catalogService.GetCategories(c.Request.Context())
	if err != nil {
		log.Println("Failed to fetch categories:", err)
		c.JSON(http.StatusOK, models.Response{
			Success: false,
			Message: "Failed to fetch categories",
			Data:    []models.Category{},
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Categories retrieved",
		Data:    categories,
	})
}

// @Summary Get menu
// @Description Get active menu items with variations and add-ons
// @Tags Catalog
// @Produce json
// @Param category query string false "Filter by category id"
// @Success 200 {object} models.Response
// @Router /menu [get]
func (ctrl *CatalogController) GetMenu(c *gin.Context) {
	category := c.Query("category")

	items, err := ctrl.catalogService.GetMenuItems(c.Request.Context(), category)
	if err != nil {
		log.Println("Failed to fetch menu items:", err)
		c.JSON(http.StatusOK, models.Response{
			Success: false,
			Message: "Failed to fetch menu items",
			Data:    []models.MenuItem{},
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Menu retrieved",
		Data:    items,
	})
}

// @Summary Get menu item
// @Description Get a single active menu item by id
// @Tags Catalog
// @Produce json
// @Param id path string true "Menu item id"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /menu/{id} [get]
func (ctrl *CatalogController) GetMenuItemByID(c *gin.Context) {
	item, err := ctrl.catalogService.GetMenuItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Println("Failed to fetch menu item:", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to fetch menu item",
		})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Menu item not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Menu item retrieved",
		Data:    item,
	})
}
