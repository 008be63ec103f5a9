package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/studiobelle/salon-manager/internal/httpresp"
	"github.com/studiobelle/salon-manager/internal/listing"
)

const maxPageSize = 100

// ListQuery é o contrato de query-string compartilhado pelas listagens:
// ?search=&status=&category=&professional_id=&sort=&order=&page=&limit=
type ListQuery struct {
	Search         string
	Status         string
	Category       string
	ProfessionalID string
	Sort           string
	Order          listing.Direction
	Page           int
	Limit          int
}

func parseListQuery(c *gin.Context) ListQuery {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit <= 0 || limit > maxPageSize {
		limit = listing.DefaultPageSize
	}

	return ListQuery{
		Search:         strings.TrimSpace(c.Query("search")),
		Status:         strings.TrimSpace(c.Query("status")),
		Category:       strings.TrimSpace(c.Query("category")),
		ProfessionalID: strings.TrimSpace(c.Query("professional_id")),
		Sort:           strings.TrimSpace(c.Query("sort")),
		Order:          listing.ParseDirection(c.Query("order")),
		Page:           page,
		Limit:          limit,
	}
}

// respondPage roda ordenação + paginação sobre a coleção já filtrada e
// escreve o envelope {data, pagination}.
func respondPage[T any](
	c *gin.Context,
	items []T,
	q ListQuery,
	sorters map[string]listing.Comparator[T],
) {
	if cmp, ok := sorters[q.Sort]; ok {
		listing.Sort(items, cmp, q.Order)
	}

	pageItems, page, totalPages := listing.PageSlice(items, q.Page, q.Limit)

	httpresp.Paged(c, pageItems, httpresp.Pagination{
		Page:       page,
		Limit:      q.Limit,
		Total:      int64(len(items)),
		TotalPages: totalPages,
	})
}
