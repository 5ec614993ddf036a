package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/mentorhub/backend/api/transport"
	"github.com/mentorhub/backend/domain"
	"github.com/mentorhub/backend/pkg/httpcontext"
	rosterUC "github.com/mentorhub/backend/usecase/roster"
)

type MenteeHandler struct {
	baseHandler
	uc *rosterUC.UseCase
}

func NewMenteeHandler(uc *rosterUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *MenteeHandler {
	return &MenteeHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List the mentor's roster
// @Tags mentees
// @Router /api/v1/mentees [get]
func (h *MenteeHandler) List(ctx *fasthttp.RequestCtx) {
	mentorID := h.userID(ctx)
	if mentorID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	mentees, err := h.uc.ListByMentor(stdCtx, mentorID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, mentees)
}

// @Summary Register a mentee under the mentor
// @Tags mentees
// @Router /api/v1/mentees [post]
func (h *MenteeHandler) Create(ctx *fasthttp.RequestCtx) {
	mentorID := h.userID(ctx)
	if mentorID == "" {
		return
	}

	var req transport.MenteeCreateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	mentee, err := h.uc.AddMentee(stdCtx, mentorID, req.Name, req.RegistrationNumber)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, mentee)
}

// @Summary Fetch a mentee profile
// @Tags mentees
// @Router /api/v1/mentees/{id} [get]
func (h *MenteeHandler) Get(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}
	menteeID := pathValue(ctx, "id")

	// Mentees may only read their own profile.
	if h.userType(ctx) != string(domain.UserTypeMentor) && userID != menteeID {
		ctx.SetStatusCode(http.StatusForbidden)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	mentee, err := h.uc.Get(stdCtx, menteeID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, mentee)
}

// @Summary Compare self and mentor assessments question by question
// @Tags mentees
// @Router /api/v1/mentees/{id}/comparison [get]
func (h *MenteeHandler) Comparison(ctx *fasthttp.RequestCtx) {
	if h.userID(ctx) == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	rows, err := h.uc.Comparison(stdCtx, pathValue(ctx, "id"))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, rows)
}
