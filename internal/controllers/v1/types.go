package v1

import (
	ez_uuid "github.com/ledgerbook/backend/internal/uuid"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required"` // The ID of the resource
}

type URICategory struct {
	Category string `uri:"category" binding:"required" example:"Food & Dining"` // Name of the category
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// defaultLimit is the page size when the limit parameter is not set
const defaultLimit = 50

// paginate returns the page of records starting at offset. A negative
// limit returns all remaining records.
func paginate[T any](records []T, offset uint, limit int) ([]T, *Pagination) {
	start := min(int(offset), len(records))
	end := len(records)
	if limit >= 0 {
		end = min(start+limit, len(records))
	}

	page := records[start:end]
	return page, &Pagination{
		Count:  len(page),
		Offset: offset,
		Limit:  limit,
		Total:  int64(len(records)),
	}
}
