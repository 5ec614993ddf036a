package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/mentorhub/backend/api/transport"
	"github.com/mentorhub/backend/domain"
	"github.com/mentorhub/backend/pkg/httpcontext"
	"github.com/mentorhub/backend/pkg/token"
	authUC "github.com/mentorhub/backend/usecase/auth"
)

type AuthHandler struct {
	baseHandler
	uc     *authUC.UseCase
	issuer *token.Issuer
}

func NewAuthHandler(uc *authUC.UseCase, issuer *token.Issuer, adapter *httpcontext.Adapter, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
		issuer:      issuer,
	}
}

// @Summary Mentor login, registering the account on first use
// @Tags auth
// @Router /api/v1/auth/mentor/login [post]
func (h *AuthHandler) LoginMentor(ctx *fasthttp.RequestCtx) {
	var req transport.MentorLoginRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	session, err := h.uc.LoginMentor(stdCtx, req.Name, req.Password)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondLogin(ctx, session)
}

// @Summary Mentee login by registration number
// @Tags auth
// @Router /api/v1/auth/mentee/login [post]
func (h *AuthHandler) LoginMentee(ctx *fasthttp.RequestCtx) {
	var req transport.MenteeLoginRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || strings.TrimSpace(req.RegistrationNumber) == "" {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	session, err := h.uc.LoginMentee(stdCtx, req.RegistrationNumber)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondLogin(ctx, session)
}

// @Summary End the active session
// @Tags auth
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Logout(stdCtx); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, nil)
}

// @Summary Resolve the active session
// @Tags auth
// @Router /api/v1/session [get]
func (h *AuthHandler) Session(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	session, err := h.uc.Current(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, session)
}

func (h *AuthHandler) respondLogin(ctx *fasthttp.RequestCtx, session *domain.Session) {
	signed, err := h.issuer.Issue(session)
	if err != nil {
		h.logger.Error("token signing failed", zap.Error(err))
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.LoginResponse{
		Token:   signed,
		Session: session,
	})
}
