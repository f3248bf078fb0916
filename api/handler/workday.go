package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/Shygul22/zenjourney.in-zenaura-main/api/transport"
	"github.com/Shygul22/zenjourney.in-zenaura-main/domain"
	"github.com/Shygul22/zenjourney.in-zenaura-main/pkg/httpcontext"
	settingsUC "github.com/Shygul22/zenjourney.in-zenaura-main/usecase/settings"
)

type WorkdayHandler struct {
	baseHandler
	uc *settingsUC.UseCase
}

func NewWorkdayHandler(uc *settingsUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *WorkdayHandler {
	return &WorkdayHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Get workday settings
// @Tags settings
// @Router /api/v1/settings/workday [get]
func (h *WorkdayHandler) GetWorkday(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	cfg, err := h.uc.GetWorkday(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, cfg)
}

// @Summary Update workday settings
// @Tags settings
// @Router /api/v1/settings/workday [put]
func (h *WorkdayHandler) UpdateWorkday(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.WorkdayRequest
	if err := unmarshalBody(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	cfg := &domain.WorkdayConfig{
		UserID:       userID,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		BreakMinutes: req.BreakMinutes,
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateWorkday(stdCtx, cfg)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}
