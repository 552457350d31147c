package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/venturewayfinder/backend/api/handler"
)

type Handlers struct {
	Ideas   *apiHandler.IdeasHandler
	Journey *apiHandler.JourneyHandler
	Quiz    *apiHandler.QuizHandler
	Profile *apiHandler.ProfileHandler
	Health  *apiHandler.HealthHandler
}

func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Idea matching
	r.POST("/api/v1/ideas/match", authMiddleware(handlers.Ideas.MatchIdeas))

	// Journey task tree
	r.GET("/api/v1/journeys/{id}", authMiddleware(handlers.Journey.GetJourney))
	r.POST("/api/v1/journeys/{id}/tasks", authMiddleware(handlers.Journey.CreateTask))
	r.PUT("/api/v1/journeys/{id}/tasks/{taskId}/deadline", authMiddleware(handlers.Journey.SetDeadline))
	r.PUT("/api/v1/journeys/{id}/tasks/{taskId}/status", authMiddleware(handlers.Journey.SetStatus))
	r.PUT("/api/v1/journeys/{id}/tasks/{taskId}/categories/{categoryId}/collapsed", authMiddleware(handlers.Journey.ToggleCategoryCollapsed))
	r.POST("/api/v1/journeys/{id}/tasks/{taskId}/categories/{categoryId}/subtasks", authMiddleware(handlers.Journey.AddSubtask))
	r.PUT("/api/v1/journeys/{id}/tasks/{taskId}/categories/{categoryId}/subtasks/{subtaskId}", authMiddleware(handlers.Journey.ToggleSubtask))
	r.DELETE("/api/v1/journeys/{id}/tasks/{taskId}/categories/{categoryId}/subtasks/{subtaskId}", authMiddleware(handlers.Journey.RemoveSubtask))

	// Quiz
	r.POST("/api/v1/quiz/results", authMiddleware(handlers.Quiz.Submit))
	r.GET("/api/v1/quiz/results/latest", authMiddleware(handlers.Quiz.Latest))

	// Profiles
	r.GET("/api/v1/profile", authMiddleware(handlers.Profile.GetProfile))
	r.PUT("/api/v1/profile", authMiddleware(handlers.Profile.UpdateProfile))
	r.GET("/api/v1/business-profile", authMiddleware(handlers.Profile.GetBusinessProfile))
	r.PUT("/api/v1/business-profile", authMiddleware(handlers.Profile.UpdateBusinessProfile))
	r.POST("/api/v1/business-profile/import", authMiddleware(handlers.Profile.ImportBusinessProfile))

	return r
}
