// internal/handlers/pagination.go
package handlers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PaginatedResponse is the envelope for any paginated listing.
type PaginatedResponse struct {
	Data        interface{} `json:"data"`
	TotalRows   int64       `json:"totalRows"`
	TotalPages  int         `json:"totalPages"`
	CurrentPage int         `json:"currentPage"`
	PerPage     int         `json:"perPage"`
}

const (
	DefaultPerPage = 5
	MaxPerPage     = 100
)

func pageParams(c *gin.Context) (page, perPage int) {
	page, _ = strconv.Atoi(c.Query("page"))
	if page <= 0 {
		page = 1
	}

	perPage, _ = strconv.Atoi(c.Query("per_page"))
	switch {
	case perPage > MaxPerPage:
		perPage = MaxPerPage
	case perPage <= 0:
		perPage = DefaultPerPage
	}
	return page, perPage
}

// Paginate is a GORM scope applying offset and limit from the "page" and
// "per_page" query parameters.
func Paginate(c *gin.Context) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		page, perPage := pageParams(c)
		return db.Offset((page - 1) * perPage).Limit(perPage)
	}
}

// CreatePaginatedResponse wraps fetched data in the standard envelope.
func CreatePaginatedResponse(c *gin.Context, data interface{}, totalRows int64) PaginatedResponse {
	page, perPage := pageParams(c)

	totalPages := 0
	if totalRows > 0 {
		totalPages = int(math.Ceil(float64(totalRows) / float64(perPage)))
	}

	return PaginatedResponse{
		Data:        data,
		TotalRows:   totalRows,
		TotalPages:  totalPages,
		CurrentPage: page,
		PerPage:     perPage,
	}
}
