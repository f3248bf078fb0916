package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/Shygul22/zenjourney.in-zenaura-main/api/transport"
	"github.com/Shygul22/zenjourney.in-zenaura-main/domain"
	"github.com/Shygul22/zenjourney.in-zenaura-main/pkg/httpcontext"
	plannerUC "github.com/Shygul22/zenjourney.in-zenaura-main/usecase/planner"
)

type PlanHandler struct {
	baseHandler
	uc *plannerUC.UseCase
}

func NewPlanHandler(uc *plannerUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *PlanHandler {
	return &PlanHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Compute the day plan
// @Tags plan
// @Router /api/v1/plan [get]
func (h *PlanHandler) GetPlan(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	referenceDate, ok := h.parseDate(ctx, string(ctx.QueryArgs().Peek("date")))
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	result, err := h.uc.PlanDay(stdCtx, userID, referenceDate)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, result)
}

// @Summary Compute and persist the day plan
// @Tags plan
// @Router /api/v1/plan [post]
func (h *PlanHandler) PersistPlan(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.PlanRequest
	if body := ctx.PostBody(); len(body) > 0 {
		if err := unmarshalBody(body, &req); err != nil {
			h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
			return
		}
	}

	referenceDate, ok := h.parseDate(ctx, req.Date)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	result, err := h.uc.PersistPlan(stdCtx, userID, referenceDate)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, result)
}

func (h *PlanHandler) parseDate(ctx *fasthttp.RequestCtx, raw string) (time.Time, bool) {
	if raw == "" {
		// Zero means "today"; the use case substitutes the current time.
		return time.Time{}, true
	}
	parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "date must be YYYY-MM-DD", nil))
		return time.Time{}, false
	}
	return parsed, true
}
