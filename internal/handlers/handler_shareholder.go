package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habilafinance/finledger_backend/internal/apperrors"
	portssvc "github.com/habilafinance/finledger_backend/internal/core/ports/services"
	"github.com/habilafinance/finledger_backend/internal/dto"
	"github.com/habilafinance/finledger_backend/internal/middleware"
)

// shareholderHandler handles HTTP requests related to shareholders.
type shareholderHandler struct {
	shareholderService portssvc.ShareholderSvcFacade
}

func newShareholderHandler(ss portssvc.ShareholderSvcFacade) *shareholderHandler {
	return &shareholderHandler{shareholderService: ss}
}

// registerShareholderRoutes registers routes related to shareholders.
func registerShareholderRoutes(rg *gin.RouterGroup, shareholderService portssvc.ShareholderSvcFacade) {
	h := newShareholderHandler(shareholderService)

	shareholders := rg.Group("/shareholders")
	{
		shareholders.POST("", h.createShareholder)
		shareholders.GET("", h.listShareholders)
		shareholders.GET("/:id", h.getShareholderByID)
		shareholders.PUT("/:id", h.updateShareholder)
		shareholders.DELETE("/:id", h.removeShareholder)
	}
}

// createShareholder godoc
// @Summary Register a shareholder
// @Description Registers a new shareholder; rejects the request when the 100-unit capacity would be exceeded
// @Tags shareholders
// @Accept  json
// @Produce  json
// @Param   shareholder body dto.CreateShareholderRequest true "Shareholder details"
// @Success 201 {object} dto.ShareholderResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Unit capacity exceeded"
// @Failure 500 {object} ErrorResponse "Failed to create shareholder"
// @Security BearerAuth
// @Router /shareholders [post]
func (h *shareholderHandler) createShareholder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateShareholderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateShareholder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	createdSh, err := h.shareholderService.CreateShareholder(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrCapacityExceeded) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create shareholder", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create shareholder"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToShareholderResponse(createdSh))
}

// listShareholders godoc
// @Summary List shareholders
// @Description Retrieves the roster with the allocated and remaining unit totals
// @Tags shareholders
// @Produce  json
// @Param   active query bool false "Only active shareholders"
// @Success 200 {object} dto.ListShareholdersResponse
// @Failure 500 {object} ErrorResponse "Failed to list shareholders"
// @Security BearerAuth
// @Router /shareholders [get]
func (h *shareholderHandler) listShareholders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	activeOnly := c.Query("active") == "true"

	roster, allocated, err := h.shareholderService.ListShareholders(c.Request.Context(), activeOnly)
	if err != nil {
		logger.Error("Failed to list shareholders", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list shareholders"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListShareholdersResponse(roster, allocated))
}

// getShareholderByID godoc
// @Summary Get a shareholder
// @Description Retrieves a single shareholder by their ID
// @Tags shareholders
// @Produce  json
// @Param   id path string true "Shareholder ID"
// @Success 200 {object} dto.ShareholderResponse
// @Failure 404 {object} ErrorResponse "Shareholder not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve shareholder"
// @Security BearerAuth
// @Router /shareholders/{id} [get]
func (h *shareholderHandler) getShareholderByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shareholderID := c.Param("id")

	sh, err := h.shareholderService.GetShareholderByID(c.Request.Context(), shareholderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Shareholder not found"})
		} else {
			logger.Error("Failed to get shareholder", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve shareholder"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToShareholderResponse(sh))
}

// updateShareholder godoc
// @Summary Update a shareholder
// @Description Replaces a shareholder's details; unit changes run through the capacity check
// @Tags shareholders
// @Accept  json
// @Produce  json
// @Param   id path string true "Shareholder ID"
// @Param   shareholder body dto.UpdateShareholderRequest true "Shareholder details"
// @Success 200 {object} dto.ShareholderResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Shareholder not found"
// @Failure 409 {object} ErrorResponse "Unit capacity exceeded"
// @Failure 500 {object} ErrorResponse "Failed to update shareholder"
// @Security BearerAuth
// @Router /shareholders/{id} [put]
func (h *shareholderHandler) updateShareholder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shareholderID := c.Param("id")

	var req dto.UpdateShareholderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updatedSh, err := h.shareholderService.UpdateShareholder(c.Request.Context(), shareholderID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Shareholder not found"})
		} else if errors.Is(err, apperrors.ErrCapacityExceeded) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to update shareholder", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update shareholder"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToShareholderResponse(updatedSh))
}

// removeShareholder godoc
// @Summary Remove a shareholder
// @Description Removes a shareholder; the storage backend decides between deactivation and deletion
// @Tags shareholders
// @Produce  json
// @Param   id path string true "Shareholder ID"
// @Success 204 "Removed"
// @Failure 404 {object} ErrorResponse "Shareholder not found"
// @Failure 500 {object} ErrorResponse "Failed to remove shareholder"
// @Security BearerAuth
// @Router /shareholders/{id} [delete]
func (h *shareholderHandler) removeShareholder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shareholderID := c.Param("id")

	err := h.shareholderService.RemoveShareholder(c.Request.Context(), shareholderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Shareholder not found"})
		} else {
			logger.Error("Failed to remove shareholder", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to remove shareholder"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
