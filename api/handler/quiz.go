package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/venturewayfinder/backend/api/transport"
	"github.com/venturewayfinder/backend/domain"
	"github.com/venturewayfinder/backend/pkg/httpcontext"
	quizUC "github.com/venturewayfinder/backend/usecase/quiz"
)

type QuizHandler struct {
	baseHandler
	uc *quizUC.UseCase
}

func NewQuizHandler(uc *quizUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *QuizHandler {
	return &QuizHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Submit quiz answers
// @Tags quiz
// @Router /api/v1/quiz/results [post]
func (h *QuizHandler) Submit(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.QuizSubmitRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	result, err := h.uc.Submit(stdCtx, userID, req.Answers)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, result)
}

// @Summary Fetch the user's latest quiz result
// @Tags quiz
// @Router /api/v1/quiz/results/latest [get]
func (h *QuizHandler) Latest(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	result, err := h.uc.LatestResult(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, result)
}
