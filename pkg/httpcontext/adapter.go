// Package httpcontext bridges fasthttp's request context to the stdlib
// contexts the usecases expect, carrying the request ID, the authenticated
// user and a per-request deadline.
package httpcontext

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	appLogger "github.com/mentorhub/backend/pkg/logger"
)

// Key represents a context value key exported for reuse.
type Key string

const (
	KeyUserID     Key = "user_id"
	KeyUserType   Key = "user_type"
	KeyRemoteAddr Key = "remote_addr"
)

type Adapter struct {
	timeout time.Duration
}

// NewAdapter constructs an Adapter applying the given per-request timeout.
func NewAdapter(timeout time.Duration) *Adapter {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Adapter{
		timeout: timeout,
	}
}

// Attach derives a deadline-bound context for the request. The request ID is
// taken from the caller or minted fresh, echoed back in the response, and
// bound for the logger. The identity headers set by the auth middleware are
// copied in so usecases can reach the caller without touching fasthttp.
func (a *Adapter) Attach(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	stdCtx, cancel := context.WithTimeout(context.Background(), a.timeout)

	reqID := strings.TrimSpace(string(ctx.Request.Header.Peek("X-Request-ID")))
	if reqID == "" {
		reqID = uuid.NewString()
	}
	stdCtx = appLogger.ContextWithRequestID(stdCtx, reqID)
	ctx.Response.Header.Set("X-Request-ID", reqID)

	if userID := string(ctx.Request.Header.Peek("X-User-ID")); userID != "" {
		stdCtx = context.WithValue(stdCtx, KeyUserID, userID)
	}
	if userType := string(ctx.Request.Header.Peek("X-User-Type")); userType != "" {
		stdCtx = context.WithValue(stdCtx, KeyUserType, userType)
	}
	if addr := ctx.RemoteAddr(); addr != nil {
		stdCtx = context.WithValue(stdCtx, KeyRemoteAddr, addr.String())
	}

	return stdCtx, cancel
}
