package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/relatecrm/backend/api/transport"
	"github.com/relatecrm/backend/domain"
	"github.com/relatecrm/backend/pkg/httpcontext"
	entityUC "github.com/relatecrm/backend/usecase/entity"
)

// EntityHandler exposes the entity store as the REST-like surface the CRM
// front-end consumes: collection reads return {data,total,limit,page},
// single reads/writes return the bare record, deletes return {success:true}.
type EntityHandler struct {
	baseHandler
	uc *entityUC.UseCase
}

func NewEntityHandler(uc *entityUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *EntityHandler {
	return &EntityHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List records
// @Tags entities
// @Router /api/v1/{entity} [get]
func (h *EntityHandler) List(ctx *fasthttp.RequestCtx) {
	entity := h.entityName(ctx)
	opts := transport.ParseListOptions(ctx)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	result, err := h.uc.List(stdCtx, entity, opts)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, result)
}

// @Summary Get record
// @Tags entities
// @Router /api/v1/{entity}/{id} [get]
func (h *EntityHandler) Get(ctx *fasthttp.RequestCtx) {
	entity := h.entityName(ctx)
	id, _ := ctx.UserValue("id").(string)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	version, requested, valid := transport.ParseVersion(ctx)
	if requested && !valid {
		// Malformed version filters degrade to "not found".
		h.respondNotFound(ctx, "record not found")
		return
	}

	var rec domain.Record
	var err error
	if requested {
		rec, err = h.uc.GetVersion(stdCtx, entity, id, version)
	} else {
		rec, err = h.uc.Get(stdCtx, entity, id)
	}
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	if rec == nil {
		h.respondNotFound(ctx, "record not found")
		return
	}
	h.respondJSON(ctx, http.StatusOK, rec)
}

// @Summary Create record
// @Tags entities
// @Router /api/v1/{entity} [post]
func (h *EntityHandler) Create(ctx *fasthttp.RequestCtx) {
	entity := h.entityName(ctx)

	payload, ok := h.parsePayload(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.Create(stdCtx, entity, payload)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusCreated, created)
}

// @Summary Update record
// @Tags entities
// @Router /api/v1/{entity}/{id} [put]
func (h *EntityHandler) Update(ctx *fasthttp.RequestCtx) {
	entity := h.entityName(ctx)
	id, _ := ctx.UserValue("id").(string)

	payload, ok := h.parsePayload(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.Update(stdCtx, entity, id, payload)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	if updated == nil {
		h.respondNotFound(ctx, "record not found")
		return
	}
	h.respondJSON(ctx, http.StatusOK, updated)
}

// @Summary Delete record
// @Tags entities
// @Router /api/v1/{entity}/{id} [delete]
func (h *EntityHandler) Delete(ctx *fasthttp.RequestCtx) {
	entity := h.entityName(ctx)
	id, _ := ctx.UserValue("id").(string)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	deleted, err := h.uc.Delete(stdCtx, entity, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	if !deleted {
		h.respondNotFound(ctx, "record not found")
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.DeleteResult{Success: true})
}

// @Summary Record history
// @Tags entities
// @Router /api/v1/{entity}/{id}/history [get]
func (h *EntityHandler) History(ctx *fasthttp.RequestCtx) {
	entity := h.entityName(ctx)
	id, _ := ctx.UserValue("id").(string)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	entries, err := h.uc.History(stdCtx, entity, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}
	h.respondJSON(ctx, http.StatusOK, map[string]interface{}{"data": entries})
}

// @Summary Export full store state
// @Tags entities
// @Router /api/v1/state [get]
func (h *EntityHandler) State(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	state, err := h.uc.ExportState(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, state)
}

func (h *EntityHandler) entityName(ctx *fasthttp.RequestCtx) string {
	name, _ := ctx.UserValue("entity").(string)
	return name
}

func (h *EntityHandler) parsePayload(ctx *fasthttp.RequestCtx) (domain.Record, bool) {
	body := ctx.PostBody()
	if len(body) == 0 {
		return domain.Record{}, true
	}
	var payload domain.Record
	if err := json.Unmarshal(body, &payload); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return nil, false
	}
	return payload, true
}
