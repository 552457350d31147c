package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/venturewayfinder/backend/api/transport"
	"github.com/venturewayfinder/backend/domain"
	"github.com/venturewayfinder/backend/pkg/httpcontext"
	matcherUC "github.com/venturewayfinder/backend/usecase/matcher"
)

type IdeasHandler struct {
	baseHandler
	uc *matcherUC.UseCase
}

func NewIdeasHandler(uc *matcherUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *IdeasHandler {
	return &IdeasHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Match business ideas against user preferences
// @Tags ideas
// @Router /api/v1/ideas/match [post]
func (h *IdeasHandler) MatchIdeas(ctx *fasthttp.RequestCtx) {
	if h.userID(ctx) == "" {
		return
	}

	var req transport.MatchRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	input := domain.UserPreferenceInput{
		Passions:    req.Passions,
		TimePerWeek: req.TimePerWeek,
		Budget:      req.Budget,
		Skills:      req.Skills,
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	results, err := h.uc.MatchIdeas(stdCtx, input)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, results)
}
