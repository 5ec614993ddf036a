package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/mentorhub/backend/domain"
	"github.com/mentorhub/backend/pkg/httpcontext"
	calendarUC "github.com/mentorhub/backend/usecase/calendar"
)

type CalendarHandler struct {
	baseHandler
	uc *calendarUC.UseCase
}

func NewCalendarHandler(uc *calendarUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *CalendarHandler {
	return &CalendarHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Month grid of roster activity due dates
// @Tags calendar
// @Router /api/v1/calendar [get]
func (h *CalendarHandler) Month(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	reference := time.Now()
	if month := string(ctx.QueryArgs().Peek("month")); month != "" {
		parsed, err := time.Parse("2006-01", month)
		if err != nil {
			h.respondInvalid(ctx, "month must be formatted YYYY-MM")
			return
		}
		reference = parsed
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	// Mentees see the grid of their own mentor's roster.
	var grid *calendarUC.Month
	var err error
	if h.userType(ctx) == string(domain.UserTypeMentor) {
		grid, err = h.uc.MonthGrid(stdCtx, userID, reference)
	} else {
		grid, err = h.uc.MonthGridForMentee(stdCtx, userID, reference)
	}
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, grid)
}
