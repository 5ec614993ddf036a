package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/mentorhub/backend/api/handler"
	"github.com/mentorhub/backend/domain"
	"github.com/mentorhub/backend/internal/middleware"
)

type Handlers struct {
	Auth       *apiHandler.AuthHandler
	Mentee     *apiHandler.MenteeHandler
	Survey     *apiHandler.SurveyHandler
	Assessment *apiHandler.AssessmentHandler
	Plan       *apiHandler.PlanHandler
	Calendar   *apiHandler.CalendarHandler
	Health     *apiHandler.HealthHandler
}

type Middleware = func(fasthttp.RequestHandler) fasthttp.RequestHandler

func New(handlers Handlers, auth Middleware) *router.Router {
	r := router.New()

	mentorOnly := func(h fasthttp.RequestHandler) fasthttp.RequestHandler {
		return auth(middleware.RequireUserType(string(domain.UserTypeMentor))(h))
	}
	menteeOnly := func(h fasthttp.RequestHandler) fasthttp.RequestHandler {
		return auth(middleware.RequireUserType(string(domain.UserTypeMentee))(h))
	}

	r.GET("/health", handlers.Health.Check)

	// Auth routes
	r.POST("/api/v1/auth/mentor/login", handlers.Auth.LoginMentor)
	r.POST("/api/v1/auth/mentee/login", handlers.Auth.LoginMentee)
	r.POST("/api/v1/auth/logout", auth(handlers.Auth.Logout))
	r.GET("/api/v1/session", auth(handlers.Auth.Session))

	// Catalogs, readable without a session
	r.GET("/api/v1/survey/questions", handlers.Survey.Questions)
	r.GET("/api/v1/maturity/levels", handlers.Survey.Levels)

	// Mentee self-service
	r.POST("/api/v1/survey/self", menteeOnly(handlers.Survey.SubmitSelf))
	r.GET("/api/v1/plan", menteeOnly(handlers.Plan.OwnPlan))
	r.POST("/api/v1/mentees/{id}/plan/{activityID}/status", menteeOnly(handlers.Plan.Advance))

	// Roster management
	r.GET("/api/v1/mentees", mentorOnly(handlers.Mentee.List))
	r.POST("/api/v1/mentees", mentorOnly(handlers.Mentee.Create))
	r.GET("/api/v1/mentees/{id}", auth(handlers.Mentee.Get))
	r.GET("/api/v1/mentees/{id}/comparison", mentorOnly(handlers.Mentee.Comparison))

	// Mentor assessment
	r.POST("/api/v1/mentees/{id}/assessment", mentorOnly(handlers.Assessment.Assess))
	r.POST("/api/v1/mentees/{id}/assessment/confirm", mentorOnly(handlers.Assessment.Confirm))
	r.GET("/api/v1/mentees/{id}/tips", auth(handlers.Assessment.Tips))

	// Development plan
	r.POST("/api/v1/mentees/{id}/plan", mentorOnly(handlers.Plan.Add))
	r.PUT("/api/v1/mentees/{id}/plan/{activityID}", mentorOnly(handlers.Plan.Edit))
	r.DELETE("/api/v1/mentees/{id}/plan/{activityID}", mentorOnly(handlers.Plan.Delete))
	r.POST("/api/v1/mentees/{id}/plan/suggestions", mentorOnly(handlers.Plan.Suggestions))

	// Calendar, shared by mentors and their mentees
	r.GET("/api/v1/calendar", auth(handlers.Calendar.Month))

	return r
}
