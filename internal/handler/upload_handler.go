package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lakehire/internal/errors"
	"lakehire/internal/service"
)

// UploadHandler implements the ticketed CV upload sub-protocol: the client
// first requests a pre-authorized target, then PUTs the raw bytes to it.
type UploadHandler struct {
	uploadService service.UploadService
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// RequestUploadRequest describes the file the client intends to send.
type RequestUploadRequest struct {
	Filename    string `json:"filename" validate:"required"`
	ContentType string `json:"content_type" validate:"required"`
	Size        int64  `json:"size" validate:"required,gt=0"`
}

// RequestUpload godoc
// @Summary Request a pre-authorized CV upload target
// @Tags uploads
// @Accept json
// @Produce json
// @Param request body RequestUploadRequest true "File metadata"
// @Success 200 {object} service.UploadTarget
// @Failure 400 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /cv/upload [post]
func (h *UploadHandler) RequestUpload(c echo.Context) error {
	var req RequestUploadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	target, err := h.uploadService.RequestCVUpload(c.Request().Context(), req.Filename, req.ContentType, req.Size)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, target)
}

// Receive godoc
// @Summary Receive CV bytes for a previously issued ticket
// @Tags uploads
// @Accept octet-stream
// @Produce json
// @Param ticket path string true "Upload ticket"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 410 {object} errors.ErrorResponse
// @Router /cv/files/{ticket} [put]
func (h *UploadHandler) Receive(c echo.Context) error {
	ticket := c.Param("ticket")
	if ticket == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing ticket")
	}

	path, err := h.uploadService.ReceiveCV(c.Request().Context(), ticket, c.Request().Body)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]string{"path": path})
}
