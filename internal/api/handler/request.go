package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Titan327/4CITE-backend/internal/core/domain"
	"github.com/Titan327/4CITE-backend/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// queryFilters flattens the query string into the single-valued filter map
// the services allowlist-check. Repeated keys keep their first value.
func queryFilters(c echo.Context) map[string]string {
	params := c.QueryParams()
	filters := make(map[string]string, len(params))
	for k, v := range params {
		if len(v) > 0 {
			filters[k] = v[0]
		}
	}
	return filters
}

// pagination reads page and limit from the query string, falling back to
// page=1, limit=10 when a value is absent, not numeric, or below one.
func pagination(c echo.Context) ports.Pagination {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = defaultPage
	}
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	return ports.Pagination{Page: page, Limit: limit}
}

// decodeStrict decodes a JSON body into a patch struct, rejecting any key
// the struct does not declare. This is how the per-operation field allowlist
// is enforced for update payloads: an unknown key rejects the whole request
// before any persistence access.
func decodeStrict(c echo.Context, v any) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if strings.Contains(err.Error(), "unknown field") {
			return domain.ErrFieldNotAllowed
		}
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return nil
}

// pathID parses the :id route parameter. A non-numeric id behaves like a
// missing record, mirroring lookups by an id that cannot exist.
func pathID(c echo.Context, notFound error) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, notFound
	}
	return id, nil
}
