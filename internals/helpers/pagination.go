package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const DefaultPage = 1

// Paging is the resolved ?page= & ?limit= pair.
type Paging struct {
	Page  int
	Limit int
}

func (p Paging) Offset() int { return (p.Page - 1) * p.Limit }

// ParsePaging reads ?page= and ?limit= and normalizes them.
func ParsePaging(c *fiber.Ctx, defaultLimit int) Paging {
	page, _ := strconv.Atoi(strings.TrimSpace(c.Query("page", "1")))
	if page < 1 {
		page = DefaultPage
	}
	limit, _ := strconv.Atoi(strings.TrimSpace(c.Query("limit", strconv.Itoa(defaultLimit))))
	if limit <= 0 {
		limit = defaultLimit
	}
	return Paging{Page: page, Limit: limit}
}

// Pagination is the response block.
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalRecords int64 `json:"totalRecords"`
	HasNext      bool  `json:"hasNext"`
	HasPrev      bool  `json:"hasPrev"`
}

func BuildPagination(total int64, p Paging) Pagination {
	totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit)) // ceil
	return Pagination{
		CurrentPage:  p.Page,
		TotalPages:   totalPages,
		TotalRecords: total,
		HasNext:      p.Page < totalPages,
		HasPrev:      p.Page > 1,
	}
}
