package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ledgerbook/backend/internal/export"
	"github.com/ledgerbook/backend/internal/httputil"
	"github.com/rs/zerolog/log"
)

// RegisterExportRoutes registers the routes for the CSV export with
// the RouterGroup that is passed.
func (co Controller) RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsExport)
	r.GET("", co.ExportExpenses)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export expenses
// @Description	Returns the expenses matching the filter as CSV, newest first
// @Tags			Export
// @Produce		text/csv
// @Success		200			{file}		file
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			from		query		string	false	"Only expenses on or after this date, YYYY-MM-DD"
// @Param			until		query		string	false	"Only expenses on or before this date, YYYY-MM-DD"
// @Param			category	query		string	false	"Filter by category"
// @Param			description	query		string	false	"Filter by description. Supports * as wildcard"
// @Router			/v1/export [get]
func (co Controller) ExportExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errQueryString.Error(),
		})
		return
	}

	f, err := co.expenseFilter(filter)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	expenses, err := co.store.ListExpenses(c.Request.Context(), f)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", export.Filename(co.today())))
	c.Header("Content-Type", export.ContentType)
	c.Status(http.StatusOK)

	// The status is already sent, all we can do is log
	if err := export.Write(c.Writer, expenses); err != nil {
		log.Error().Str("request-id", c.GetHeader("X-Request-Id")).Err(err).Msg("CSV export")
	}
}
