package transport_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"

	"github.com/relatecrm/backend/api/transport"
)

func requestCtx(uri string) *fasthttp.RequestCtx {
	var ctx fasthttp.RequestCtx
	ctx.Request.SetRequestURI(uri)
	return &ctx
}

func TestParseListOptions(t *testing.T) {
	ctx := requestCtx("/api/v1/leads?search=ann&page=2&limit=10&sort=created_at&status=Qualified&source=Web")

	opts := transport.ParseListOptions(ctx)
	assert.Equal(t, "ann", opts.Search)
	assert.Equal(t, 2, opts.Page)
	assert.Equal(t, 10, opts.Limit)
	assert.Equal(t, "created_at", opts.Sort)
	assert.Equal(t, map[string]string{"status": "Qualified", "source": "Web"}, opts.Filters)
}

func TestParseListOptionsDefaults(t *testing.T) {
	opts := transport.ParseListOptions(requestCtx("/api/v1/leads"))
	assert.Zero(t, opts.Page)
	assert.Zero(t, opts.Limit)
	assert.Empty(t, opts.Search)
	assert.Nil(t, opts.Filters)
}

func TestParseListOptionsIgnoresVersionKey(t *testing.T) {
	opts := transport.ParseListOptions(requestCtx("/api/v1/leads?version=3"))
	assert.Nil(t, opts.Filters)
}

func TestParseVersion(t *testing.T) {
	version, requested, valid := transport.ParseVersion(requestCtx("/api/v1/leads/lead-1?version=3"))
	assert.True(t, requested)
	assert.True(t, valid)
	assert.EqualValues(t, 3, version)
}

func TestParseVersionAbsent(t *testing.T) {
	_, requested, valid := transport.ParseVersion(requestCtx("/api/v1/leads/lead-1"))
	assert.False(t, requested)
	assert.True(t, valid)
}

func TestParseVersionMalformed(t *testing.T) {
	_, requested, valid := transport.ParseVersion(requestCtx("/api/v1/leads/lead-1?version=latest"))
	assert.True(t, requested)
	assert.False(t, valid)
}
