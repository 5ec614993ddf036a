package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/mentorhub/backend/api/transport"
	"github.com/mentorhub/backend/domain"
	"github.com/mentorhub/backend/pkg/httpcontext"
	surveyUC "github.com/mentorhub/backend/usecase/survey"
)

type SurveyHandler struct {
	baseHandler
	uc *surveyUC.UseCase
}

func NewSurveyHandler(uc *surveyUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *SurveyHandler {
	return &SurveyHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Survey question catalog
// @Tags survey
// @Router /api/v1/survey/questions [get]
func (h *SurveyHandler) Questions(ctx *fasthttp.RequestCtx) {
	h.respondSuccess(ctx, http.StatusOK, h.uc.Questions())
}

// @Summary Maturity level catalog
// @Tags survey
// @Router /api/v1/maturity/levels [get]
func (h *SurveyHandler) Levels(ctx *fasthttp.RequestCtx) {
	h.respondSuccess(ctx, http.StatusOK, domain.MaturityLevels)
}

// @Summary Submit the mentee's self assessment
// @Tags survey
// @Router /api/v1/survey/self [post]
func (h *SurveyHandler) SubmitSelf(ctx *fasthttp.RequestCtx) {
	menteeID := h.userID(ctx)
	if menteeID == "" {
		return
	}

	var req transport.AnswersRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	mentee, err := h.uc.SubmitSelfAssessment(stdCtx, menteeID, req.Answers)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, mentee)
}
