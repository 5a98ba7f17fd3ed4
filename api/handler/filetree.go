package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/relatecrm/backend/api/transport"
	"github.com/relatecrm/backend/domain"
	"github.com/relatecrm/backend/internal/filetree"
	"github.com/relatecrm/backend/pkg/httpcontext"
)

// FileTreeHandler reads and replaces the persisted file-explorer snapshot.
type FileTreeHandler struct {
	baseHandler
	store *filetree.Store
}

func NewFileTreeHandler(store *filetree.Store, adapter *httpcontext.Adapter, logger *zap.Logger) *FileTreeHandler {
	return &FileTreeHandler{
		baseHandler: newBaseHandler(adapter, logger),
		store:       store,
	}
}

// @Summary Get file tree snapshot
// @Tags filetree
// @Router /api/v1/filetree [get]
func (h *FileTreeHandler) Get(ctx *fasthttp.RequestCtx) {
	snapshot, found, err := h.store.Load()
	if err != nil {
		h.logger.Error("filetree load failed", zap.Error(err))
		h.respondJSON(ctx, http.StatusInternalServerError, transport.NewError(string(domain.ErrCodeInternal), "filetree unavailable", nil))
		return
	}
	if !found {
		snapshot = filetree.Snapshot{Roots: []filetree.Node{}}
	}
	h.respondJSON(ctx, http.StatusOK, snapshot)
}

// @Summary Replace file tree snapshot
// @Tags filetree
// @Router /api/v1/filetree [put]
func (h *FileTreeHandler) Put(ctx *fasthttp.RequestCtx) {
	var payload struct {
		Roots []filetree.Node `json:"roots"`
	}
	if err := json.Unmarshal(ctx.PostBody(), &payload); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	if err := h.store.Save(payload.Roots); err != nil {
		h.logger.Error("filetree save failed", zap.Error(err))
		h.respondJSON(ctx, http.StatusInternalServerError, transport.NewError(string(domain.ErrCodeInternal), "filetree unavailable", nil))
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.DeleteResult{Success: true})
}
