package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/venturewayfinder/backend/api/transport"
	"github.com/venturewayfinder/backend/domain"
	"github.com/venturewayfinder/backend/pkg/httpcontext"
	profileUC "github.com/venturewayfinder/backend/usecase/profile"
)

type ProfileHandler struct {
	baseHandler
	uc *profileUC.UseCase
}

func NewProfileHandler(uc *profileUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Get profile
// @Tags profile
// @Success 200 {object} transport.Envelope
// @Router /api/v1/profile [get]
func (h *ProfileHandler) GetProfile(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	user, err := h.uc.GetUser(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, user)
}

// @Summary Update profile
// @Tags profile
// @Accept json
// @Produce json
// @Router /api/v1/profile [put]
func (h *ProfileHandler) UpdateProfile(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.ProfileUpdateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	user := &domain.User{
		ID:           userID,
		Email:        req.Email,
		Role:         req.Role,
		Subscription: req.Subscription,
		Status:       req.Status,
		Metadata:     req.Meta,
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateUser(stdCtx, user)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Get business profile
// @Tags profile
// @Router /api/v1/business-profile [get]
func (h *ProfileHandler) GetBusinessProfile(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	profile, err := h.uc.GetBusinessProfile(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, profile)
}

// @Summary Update business profile
// @Tags profile
// @Router /api/v1/business-profile [put]
func (h *ProfileHandler) UpdateBusinessProfile(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.BusinessProfileRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	existing, err := h.uc.GetBusinessProfile(stdCtx, userID)
	if err != nil && !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		h.respondError(ctx, err)
		return
	}

	profile := &domain.BusinessProfile{
		UserID:       userID,
		BusinessName: req.BusinessName,
		Problem:      req.Problem,
		Solution:     req.Solution,
		TargetMarket: req.TargetMarket,
		RevenueModel: req.RevenueModel,
		Stage:        req.Stage,
		Notes:        req.Notes,
	}
	if existing != nil {
		profile.ID = existing.ID
		profile.Version = existing.Version
		profile.CreatedAt = existing.CreatedAt
	}

	saved, err := h.uc.SaveBusinessProfile(stdCtx, profile)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, saved)
}

// @Summary Import a legacy business profile blob
// @Tags profile
// @Router /api/v1/business-profile/import [post]
func (h *ProfileHandler) ImportBusinessProfile(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	profile, err := h.uc.ImportLegacyProfile(stdCtx, userID, ctx.PostBody())
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, profile)
}
