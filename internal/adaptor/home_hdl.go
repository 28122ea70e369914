package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"realtor-listings/internal/data/repository"
	"realtor-listings/internal/dto/request"
	"realtor-listings/internal/usecase"
	"realtor-listings/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HomeHandler struct {
	service usecase.HomeService
	log     *zap.Logger
}

func NewHomeHandler(service usecase.HomeService, log *zap.Logger) *HomeHandler {
	return &HomeHandler{
		service: service,
		log:     log.With(zap.String("handler", "home")),
	}
}

// GetHomes handles GET /home
// home?city=Toronto&minPrice=1000000&maxPrice=1500000&propertyType=RESIDENTIAL
func (h *HomeHandler) GetHomes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter, err := repository.NewHomeFilter(
		query.Get("city"),
		query.Get("minPrice"),
		query.Get("maxPrice"),
		query.Get("propertyType"),
	)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	page := &request.PaginatedRequest{
		Page:    h.parseInt(query.Get("page"), 1),
		PerPage: h.parseInt(query.Get("perPage"), 10),
	}

	homes, err := h.service.GetHomes(r.Context(), filter, page)
	if err != nil {
		h.handleServiceError(w, err, "get homes")
		return
	}

	utils.ResponseSuccess(w, "Homes retrieved successfully", homes)
}

// GetHome handles GET /home/{id}
func (h *HomeHandler) GetHome(w http.ResponseWriter, r *http.Request) {
	homeID, ok := h.parseID(w, r)
	if !ok {
		return
	}

	home, err := h.service.GetHomeByID(r.Context(), homeID)
	if err != nil {
		h.handleServiceError(w, err, "get home by ID")
		return
	}

	utils.ResponseSuccess(w, "Home retrieved successfully", home)
}

// CreateHome handles POST /home (realtor only)
func (h *HomeHandler) CreateHome(w http.ResponseWriter, r *http.Request) {
	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateHomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	home, err := h.service.CreateHome(r.Context(), callerID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create home")
		return
	}

	utils.ResponseCreated(w, "Home created successfully", home)
}

// UpdateHome handles PATCH /home/{id} (realtor + ownership)
func (h *HomeHandler) UpdateHome(w http.ResponseWriter, r *http.Request) {
	homeID, ok := h.parseID(w, r)
	if !ok {
		return
	}

	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateHomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	home, err := h.service.UpdateHome(r.Context(), homeID, callerID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update home")
		return
	}

	utils.ResponseSuccess(w, "Home updated successfully", home)
}

// DeleteHome handles DELETE /home/{id} (realtor + ownership)
func (h *HomeHandler) DeleteHome(w http.ResponseWriter, r *http.Request) {
	homeID, ok := h.parseID(w, r)
	if !ok {
		return
	}

	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.DeleteHome(r.Context(), homeID, callerID); err != nil {
		h.handleServiceError(w, err, "delete home")
		return
	}

	utils.ResponseSuccess(w, "Home deleted successfully", nil)
}

// Inquire handles POST /home/{id}/inquire (buyer only)
func (h *HomeHandler) Inquire(w http.ResponseWriter, r *http.Request) {
	homeID, ok := h.parseID(w, r)
	if !ok {
		return
	}

	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.InquireRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	message, err := h.service.Inquire(r.Context(), homeID, callerID, &req)
	if err != nil {
		h.handleServiceError(w, err, "send inquiry")
		return
	}

	utils.ResponseCreated(w, "Inquiry sent successfully", message)
}

// GetHomeMessages handles GET /home/{id}/messages (realtor + ownership)
func (h *HomeHandler) GetHomeMessages(w http.ResponseWriter, r *http.Request) {
	homeID, ok := h.parseID(w, r)
	if !ok {
		return
	}

	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	messages, err := h.service.GetHomeMessages(r.Context(), homeID, callerID)
	if err != nil {
		h.handleServiceError(w, err, "get home messages")
		return
	}

	utils.ResponseSuccess(w, "Messages retrieved successfully", messages)
}

// handleServiceError maps service errors to HTTP responses
func (h *HomeHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrForbidden):
		h.log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case strings.Contains(err.Error(), "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// parseID reads the {id} path parameter
func (h *HomeHandler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idParam := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil || id < 1 {
		utils.ResponseBadRequest(w, "Invalid home ID", nil)
		return 0, false
	}
	return id, true
}

// parseInt helper
func (h *HomeHandler) parseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}
