package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ledgerbook/backend/internal/httputil"
	"github.com/ledgerbook/backend/internal/types"
)

// RegisterCategoryRoutes registers the routes for the label lists with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCategories)
	r.GET("", GetCategories)
}

type Label struct {
	Name  string `json:"name" example:"Food & Dining"` // Name of the label
	Color string `json:"color" example:"#FF6B6B"`      // Color used in charts
}

type CategoryList struct {
	Categories []Label `json:"categories"` // Expense categories
	Sources    []Label `json:"sources"`    // Income sources
}

type CategoryListResponse struct {
	Data CategoryList `json:"data"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategories(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get categories
// @Description	Returns the expense categories and income sources with their chart colors
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	list := CategoryList{
		Categories: make([]Label, 0, len(types.Categories())),
		Sources:    make([]Label, 0, len(types.Sources())),
	}

	for _, category := range types.Categories() {
		list.Categories = append(list.Categories, Label{Name: string(category), Color: category.Color()})
	}

	for _, source := range types.Sources() {
		list.Sources = append(list.Sources, Label{Name: string(source), Color: source.Color()})
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: list})
}
