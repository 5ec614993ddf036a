package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/mentorhub/backend/api/transport"
	"github.com/mentorhub/backend/domain"
	"github.com/mentorhub/backend/pkg/httpcontext"
	planUC "github.com/mentorhub/backend/usecase/plan"
)

type PlanHandler struct {
	baseHandler
	uc *planUC.UseCase
}

func NewPlanHandler(uc *planUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *PlanHandler {
	return &PlanHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Add a draft activity to a mentee's plan
// @Tags plan
// @Router /api/v1/mentees/{id}/plan [post]
func (h *PlanHandler) Add(ctx *fasthttp.RequestCtx) {
	if h.userID(ctx) == "" {
		return
	}

	var req transport.ActivityRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	draft := planUC.ActivityDraft{
		Title:       req.Title,
		Description: req.Description,
		StepsText:   req.Steps,
		DueDate:     req.DueDate,
		Attachment:  toAttachment(req.Attachment),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	activity, err := h.uc.AddActivity(stdCtx, pathValue(ctx, "id"), draft)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, activity)
}

// @Summary Edit an activity
// @Tags plan
// @Router /api/v1/mentees/{id}/plan/{activityID} [put]
func (h *PlanHandler) Edit(ctx *fasthttp.RequestCtx) {
	if h.userID(ctx) == "" {
		return
	}

	var req transport.ActivityUpdateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	patch := planUC.ActivityPatch{
		Title:       req.Title,
		Description: req.Description,
		StepsText:   req.Steps,
		DueDate:     req.DueDate,
		Attachment:  toAttachment(req.Attachment),
	}
	if req.Status != nil {
		status := domain.ActivityStatus(*req.Status)
		patch.Status = &status
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	activity, err := h.uc.EditActivity(stdCtx, pathValue(ctx, "id"), pathValue(ctx, "activityID"), patch)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, activity)
}

// @Summary Delete a draft activity
// @Tags plan
// @Router /api/v1/mentees/{id}/plan/{activityID} [delete]
func (h *PlanHandler) Delete(ctx *fasthttp.RequestCtx) {
	if h.userID(ctx) == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteActivity(stdCtx, pathValue(ctx, "id"), pathValue(ctx, "activityID")); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// @Summary Advance a visible activity's status
// @Tags plan
// @Router /api/v1/mentees/{id}/plan/{activityID}/status [post]
func (h *PlanHandler) Advance(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}
	menteeID := pathValue(ctx, "id")

	// Only the mentee owning the plan moves activities forward.
	if userID != menteeID {
		ctx.SetStatusCode(http.StatusForbidden)
		return
	}

	var req transport.StatusRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	activity, err := h.uc.AdvanceStatus(stdCtx, menteeID, pathValue(ctx, "activityID"), domain.ActivityStatus(req.Status))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, activity)
}

// @Summary The mentee's own plan with drafts hidden
// @Tags plan
// @Router /api/v1/plan [get]
func (h *PlanHandler) OwnPlan(ctx *fasthttp.RequestCtx) {
	menteeID := h.userID(ctx)
	if menteeID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	plan, err := h.uc.VisiblePlan(stdCtx, menteeID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, plan)
}

// @Summary Generate AI activity suggestions as drafts
// @Tags plan
// @Router /api/v1/mentees/{id}/plan/suggestions [post]
func (h *PlanHandler) Suggestions(ctx *fasthttp.RequestCtx) {
	if h.userID(ctx) == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	drafts, err := h.uc.GenerateSuggestions(stdCtx, pathValue(ctx, "id"))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, drafts)
}

func toAttachment(payload *transport.AttachmentPayload) *domain.PDFAttachment {
	if payload == nil {
		return nil
	}
	return &domain.PDFAttachment{
		Name: payload.Name,
		URL:  payload.URL,
	}
}
