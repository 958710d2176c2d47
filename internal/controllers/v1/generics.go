package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/ledgerbook/backend/internal/httputil"
	"github.com/ledgerbook/backend/internal/models"
)

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
func (co Controller) resourceOptionsDetail(c *gin.Context, resource any) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.db.First(resource, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// getResource binds the ID from the URI and loads the resource with it.
func getResource[R models.Expense | models.Income](co Controller, c *gin.Context) (R, error) {
	var resource R

	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return resource, err
	}

	err = co.db.First(&resource, uri.ID).Error
	return resource, err
}
