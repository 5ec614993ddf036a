package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/mentorhub/backend/api/transport"
	"github.com/mentorhub/backend/pkg/httpcontext"
	assessmentUC "github.com/mentorhub/backend/usecase/assessment"
)

type AssessmentHandler struct {
	baseHandler
	uc *assessmentUC.UseCase
}

func NewAssessmentHandler(uc *assessmentUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *AssessmentHandler {
	return &AssessmentHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Score a mentor assessment and suggest a maturity level
// @Tags assessment
// @Router /api/v1/mentees/{id}/assessment [post]
func (h *AssessmentHandler) Assess(ctx *fasthttp.RequestCtx) {
	if h.userID(ctx) == "" {
		return
	}

	var req transport.AnswersRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	result, err := h.uc.Assess(stdCtx, pathValue(ctx, "id"), req.Answers)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, result)
}

// @Summary Commit a mentor assessment with the chosen final level
// @Tags assessment
// @Router /api/v1/mentees/{id}/assessment/confirm [post]
func (h *AssessmentHandler) Confirm(ctx *fasthttp.RequestCtx) {
	if h.userID(ctx) == "" {
		return
	}

	var req transport.AssessmentConfirmRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	mentee, err := h.uc.Confirm(stdCtx, pathValue(ctx, "id"), req.Answers, req.Level)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, mentee)
}

// @Summary Development tips for the mentee's confirmed level
// @Tags assessment
// @Router /api/v1/mentees/{id}/tips [get]
func (h *AssessmentHandler) Tips(ctx *fasthttp.RequestCtx) {
	if h.userID(ctx) == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tips, err := h.uc.Tips(stdCtx, pathValue(ctx, "id"))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, tips)
}
