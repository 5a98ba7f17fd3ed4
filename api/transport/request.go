package transport

import (
	"strconv"

	"github.com/valyala/fasthttp"

	"github.com/relatecrm/backend/domain"
)

// Querystring keys with dedicated meaning; every other key is treated as an
// entity filter.
var reservedQueryKeys = map[string]struct{}{
	"search":  {},
	"page":    {},
	"limit":   {},
	"sort":    {},
	"version": {},
}

// ParseListOptions builds ListOptions from the request querystring. Unknown
// keys become filters, matching the CRM's entity-specific filter parameters.
func ParseListOptions(ctx *fasthttp.RequestCtx) domain.ListOptions {
	args := ctx.QueryArgs()

	opts := domain.ListOptions{
		Search: string(args.Peek("search")),
		Sort:   string(args.Peek("sort")),
		Page:   parseInt(string(args.Peek("page")), 0),
		Limit:  parseInt(string(args.Peek("limit")), 0),
	}

	filters := make(map[string]string)
	args.VisitAll(func(key, value []byte) {
		k := string(key)
		if _, reserved := reservedQueryKeys[k]; reserved {
			return
		}
		filters[k] = string(value)
	})
	if len(filters) > 0 {
		opts.Filters = filters
	}
	return opts
}

// ParseVersion reads the version query parameter for point-in-time reads.
// The second return is false when no version was requested; malformed values
// are reported as requested-but-invalid so reads can degrade to "not found".
func ParseVersion(ctx *fasthttp.RequestCtx) (int64, bool, bool) {
	raw := string(ctx.QueryArgs().Peek("version"))
	if raw == "" {
		return 0, false, true
	}
	version, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, true, false
	}
	return version, true, true
}

func parseInt(value string, fallback int) int {
	if v, err := strconv.Atoi(value); err == nil {
		return v
	}
	return fallback
}
