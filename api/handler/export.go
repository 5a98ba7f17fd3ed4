package handler

import (
	"fmt"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/relatecrm/backend/internal/export"
	"github.com/relatecrm/backend/pkg/httpcontext"
)

// ExportHandler serves spreadsheet downloads of entity collections.
type ExportHandler struct {
	baseHandler
	service *export.Service
}

func NewExportHandler(service *export.Service, adapter *httpcontext.Adapter, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{
		baseHandler: newBaseHandler(adapter, logger),
		service:     service,
	}
}

// @Summary Export entity as XLSX
// @Tags entities
// @Router /api/v1/{entity}/export [get]
func (h *ExportHandler) Entity(ctx *fasthttp.RequestCtx) {
	entity, _ := ctx.UserValue("entity").(string)

	workbook, filename, err := h.service.EntityWorkbook(entity)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.Response.Header.SetContentType("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response.Header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.SetStatusCode(http.StatusOK)
	ctx.SetBody(workbook)
}
