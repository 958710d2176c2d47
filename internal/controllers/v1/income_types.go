package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/types"
	"github.com/ledgerbook/backend/internal/validation"
)

type IncomeLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/incomes/0b7d2a1e-8d51-4d79-b9a0-0f4b8cfcb3f2"` // The income itself
}

type Income struct {
	models.Income
	Links IncomeLinks `json:"links"`
}

func newIncome(c *gin.Context, model models.Income) Income {
	url := c.GetString(string(models.DBContextURL))

	return Income{
		Income: model,
		Links: IncomeLinks{
			Self: fmt.Sprintf("%s/v1/incomes/%s", url, model.ID),
		},
	}
}

func incomeEditable(model models.Income) validation.IncomeInput {
	return validation.IncomeInput{
		Date:        model.Date.String(),
		Source:      string(model.Source),
		Amount:      model.Amount.StringFixed(2),
		Description: model.Description,
	}
}

type IncomeListResponse struct {
	Data       []Income    `json:"data"`                                                          // List of Income records
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type IncomeResponse struct {
	Data  *Income `json:"data"`                                                          // Data for the Income
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type IncomeQueryFilter struct {
	From   string `form:"from" example:"2025-10-01"`  // Only income on or after this date
	Until  string `form:"until" example:"2025-10-31"` // Only income on or before this date
	Source string `form:"source" example:"Salary"`    // By source
	Offset uint   `form:"offset"`                     // The offset of the first Income returned. Defaults to 0.
	Limit  int    `form:"limit"`                      // Maximum number of Income records to return. Defaults to 50.
}

func (co Controller) incomeFilter(f IncomeQueryFilter) (models.IncomeFilter, error) {
	r, err := co.validator.DateRange(f.From, f.Until)
	if err != nil {
		return models.IncomeFilter{}, err
	}

	var source types.Source
	if f.Source != "" {
		source, err = co.validator.Source(f.Source)
		if err != nil {
			return models.IncomeFilter{}, err
		}
	}

	return models.IncomeFilter{
		Range:  r,
		Source: source,
	}, nil
}
