package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/orgmind/assessment-engine/internal/infrastructure/http/middleware"
	"github.com/orgmind/assessment-engine/internal/usecase/auth"
)

// Router holds all handlers
type Router struct {
	insightHandler *Insight
	accessService  *auth.AccessService
}

// NewRouter creates a new router with all handlers
func NewRouter(insightHandler *Insight, accessService *auth.AccessService) *Router {
	return &Router{
		insightHandler: insightHandler,
		accessService:  accessService,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.insightHandler.Health)

	v1 := e.Group("/v1", middleware.EchoAuth(rt.accessService))

	org := v1.Group("/organizations/:id", middleware.OrgAccess(rt.accessService))
	org.GET("/maturity-scores", rt.insightHandler.MaturityScores)
	org.GET("/reality-gaps", rt.insightHandler.RealityGaps)
	org.GET("/consensus-themes", rt.insightHandler.ConsensusThemes)
	org.GET("/analysis-entities", rt.insightHandler.AnalysisEntities)
	org.GET("/team-skills", rt.insightHandler.TeamSkills)
	org.GET("/recommendations", rt.insightHandler.Recommendations)
	org.GET("/assessment-summary", rt.insightHandler.AssessmentSummary)
}
