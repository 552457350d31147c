package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/venturewayfinder/backend/api/transport"
	"github.com/venturewayfinder/backend/domain"
	"github.com/venturewayfinder/backend/pkg/httpcontext"
	journeyUC "github.com/venturewayfinder/backend/usecase/journey"
)

type JourneyHandler struct {
	baseHandler
	uc *journeyUC.UseCase
}

func NewJourneyHandler(uc *journeyUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *JourneyHandler {
	return &JourneyHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Fetch a journey snapshot
// @Tags journeys
// @Router /api/v1/journeys/{id} [get]
func (h *JourneyHandler) GetJourney(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	journey, err := h.uc.GetJourney(stdCtx, userID, h.pathValue(ctx, "id"))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, journey)
}

// @Summary Create a task from a journey step template
// @Tags journeys
// @Router /api/v1/journeys/{id}/tasks [post]
func (h *JourneyHandler) CreateTask(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.CreateTaskRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.StepID == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	journey, err := h.uc.CreateTaskFromStep(stdCtx, userID, h.pathValue(ctx, "id"), req.StepID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, journey)
}

// @Summary Set a subtask's completion flag
// @Tags journeys
// @Router /api/v1/journeys/{id}/tasks/{taskId}/categories/{categoryId}/subtasks/{subtaskId} [put]
func (h *JourneyHandler) ToggleSubtask(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.ToggleSubtaskRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.Completed == nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	journey, err := h.uc.ToggleSubtask(stdCtx, userID,
		h.pathValue(ctx, "id"),
		h.pathValue(ctx, "taskId"),
		h.pathValue(ctx, "categoryId"),
		h.pathValue(ctx, "subtaskId"),
		*req.Completed,
	)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, journey)
}

// @Summary Add a subtask to a category
// @Tags journeys
// @Router /api/v1/journeys/{id}/tasks/{taskId}/categories/{categoryId}/subtasks [post]
func (h *JourneyHandler) AddSubtask(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.AddSubtaskRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	journey, err := h.uc.AddSubtask(stdCtx, userID,
		h.pathValue(ctx, "id"),
		h.pathValue(ctx, "taskId"),
		h.pathValue(ctx, "categoryId"),
		req.Title,
	)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, journey)
}

// @Summary Remove a subtask
// @Tags journeys
// @Router /api/v1/journeys/{id}/tasks/{taskId}/categories/{categoryId}/subtasks/{subtaskId} [delete]
func (h *JourneyHandler) RemoveSubtask(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	journey, err := h.uc.RemoveSubtask(stdCtx, userID,
		h.pathValue(ctx, "id"),
		h.pathValue(ctx, "taskId"),
		h.pathValue(ctx, "categoryId"),
		h.pathValue(ctx, "subtaskId"),
	)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, journey)
}

// @Summary Toggle a category's collapsed flag
// @Tags journeys
// @Router /api/v1/journeys/{id}/tasks/{taskId}/categories/{categoryId}/collapsed [put]
func (h *JourneyHandler) ToggleCategoryCollapsed(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	journey, err := h.uc.ToggleCategoryCollapsed(stdCtx, userID,
		h.pathValue(ctx, "id"),
		h.pathValue(ctx, "taskId"),
		h.pathValue(ctx, "categoryId"),
	)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, journey)
}

// @Summary Set or clear a task deadline
// @Tags journeys
// @Router /api/v1/journeys/{id}/tasks/{taskId}/deadline [put]
func (h *JourneyHandler) SetDeadline(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.DeadlineRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	var deadline *time.Time
	if req.Deadline != "" {
		parsed, err := time.Parse(time.RFC3339, req.Deadline)
		if err != nil {
			h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "deadline must be RFC 3339", nil))
			return
		}
		deadline = &parsed
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	journey, err := h.uc.SetDeadline(stdCtx, userID,
		h.pathValue(ctx, "id"),
		h.pathValue(ctx, "taskId"),
		deadline,
	)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, journey)
}

// @Summary Set task status directly
// @Tags journeys
// @Router /api/v1/journeys/{id}/tasks/{taskId}/status [put]
func (h *JourneyHandler) SetStatus(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.StatusRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	journey, err := h.uc.SetStatusExplicit(stdCtx, userID,
		h.pathValue(ctx, "id"),
		h.pathValue(ctx, "taskId"),
		req.Status,
	)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, journey)
}
