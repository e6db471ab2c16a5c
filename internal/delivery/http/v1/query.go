package v1

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"go-resume-backend/internal/domain"
	"go-resume-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const maxListLimit = 1000

// parseListQuery reads where, order, limit, offset and search. Ordering
// accepts order=position,-name and order[field]=ASC|DESC; terms keep the
// order of the query string.
func parseListQuery(c *gin.Context) (domain.ListQuery, error) {
	var q domain.ListQuery

	if raw := c.Query("where"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &q.Criteria); err != nil || q.Criteria == nil {
			return q, apperror.BadRequest("Invalid where parameter, a JSON object is expected.")
		}
	}

	order, err := parseOrder(c.Request.URL.RawQuery)
	if err != nil {
		return q, err
	}
	q.OrderBy = order

	if q.Limit, err = nonNegative(c, "limit"); err != nil {
		return q, err
	}
	if q.Limit > maxListLimit {
		q.Limit = maxListLimit
	}
	if q.Offset, err = nonNegative(c, "offset"); err != nil {
		return q, err
	}
	q.Search = strings.TrimSpace(c.Query("search"))
	return q, nil
}

func parseOrder(rawQuery string) ([]domain.Order, error) {
	var out []domain.Order
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			continue
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, apperror.BadRequest("Invalid order parameter.")
		}

		switch {
		case key == "order":
			for _, term := range strings.Split(value, ",") {
				term = strings.TrimSpace(term)
				if term == "" {
					continue
				}
				desc := strings.HasPrefix(term, "-")
				out = append(out, domain.Order{Field: strings.TrimLeft(term, "-+"), Desc: desc})
			}
		case strings.HasPrefix(key, "order[") && strings.HasSuffix(key, "]"):
			field := strings.TrimSuffix(strings.TrimPrefix(key, "order["), "]")
			if field == "" {
				return nil, apperror.BadRequest("Invalid order parameter.")
			}
			switch strings.ToUpper(strings.TrimSpace(value)) {
			case "", "ASC":
				out = append(out, domain.Order{Field: field})
			case "DESC":
				out = append(out, domain.Order{Field: field, Desc: true})
			default:
				return nil, apperror.BadRequest(fmt.Sprintf("Invalid order direction %q, use ASC or DESC.", value))
			}
		}
	}
	return out, nil
}

func nonNegative(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, apperror.BadRequest(fmt.Sprintf("Invalid %s parameter.", name))
	}
	return n, nil
}
