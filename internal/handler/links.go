package handler

import (
	"errors"
	"net/http"
	"strconv"

	"qrlinx/internal/backend"
	"qrlinx/internal/model"
	"qrlinx/internal/repository"
	"qrlinx/internal/service"

	"github.com/gin-gonic/gin"
)

// CreationView is the presented result of a link creation
type CreationView struct {
	Link         LinkView       `json:"link"`
	ShortURL     string         `json:"short_url"`
	QRCodeBase64 string         `json:"qrcode_base64,omitempty"`
	QRStatus     model.QRStatus `json:"qr_status"`
	QRDetail     string         `json:"qr_detail,omitempty"`
}

// LinkHandler handles the link list, link creation and analytics selection
type LinkHandler struct {
	dashboard service.DashboardInterface
	presenter *Presenter
}

// NewLinkHandler creates a new LinkHandler
func NewLinkHandler(dashboard service.DashboardInterface, presenter *Presenter) *LinkHandler {
	return &LinkHandler{dashboard: dashboard, presenter: presenter}
}

// RequireSession rejects requests until a user is signed in
func RequireSession(dashboard service.DashboardInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if dashboard.OwnerID() == "" {
			failure(c, http.StatusUnauthorized, "Sign in required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// List handles GET /api/v1/links
// @Summary List links
// @Description Lists the signed-in user's links filtered by q and sorted by host
// @Tags links
// @Produce json
// @Param q query string false "Case-insensitive URL filter"
// @Success 200 {object} Response{data=[]LinkView}
// @Router /api/v1/links [get]
func (h *LinkHandler) List(c *gin.Context) {
	links := h.dashboard.Links(c.Query("q"))
	success(c, http.StatusOK, h.presenter.Links(links))
}

// Create handles POST /api/v1/links
// @Summary Create a short link with its QR code
// @Description Returns 207 when the link was created but its QR code was not
// @Tags links
// @Accept json
// @Produce json
// @Param request body model.CreateLinkRequest true "Create request"
// @Success 201 {object} Response{data=CreationView}
// @Success 207 {object} Response{data=CreationView}
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/links [post]
func (h *LinkHandler) Create(c *gin.Context) {
	var req model.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failure(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	result, err := h.dashboard.Create(c.Request.Context(), req.URL)
	h.writeCreation(c, result, err, http.StatusCreated)
}

// RetryQR handles POST /api/v1/links/qr/retry
// @Summary Retry the QR code of the last created link
// @Tags links
// @Produce json
// @Success 200 {object} Response{data=CreationView}
// @Success 207 {object} Response{data=CreationView}
// @Router /api/v1/links/qr/retry [post]
func (h *LinkHandler) RetryQR(c *gin.Context) {
	result, err := h.dashboard.RetryQR(c.Request.Context())
	h.writeCreation(c, result, err, http.StatusOK)
}

// DismissResult handles DELETE /api/v1/links/result
// @Summary Dismiss the last creation result
// @Tags links
// @Success 200 {object} Response
// @Router /api/v1/links/result [delete]
func (h *LinkHandler) DismissResult(c *gin.Context) {
	h.dashboard.DismissResult()
	success(c, http.StatusOK, nil)
}

// Delete handles DELETE /api/v1/links/:id
// @Summary Delete a link
// @Tags links
// @Param id path int true "Link ID"
// @Param confirm query bool true "Must be true"
// @Success 200 {object} Response
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/links/{id} [delete]
func (h *LinkHandler) Delete(c *gin.Context) {
	id, ok := linkID(c)
	if !ok {
		return
	}
	confirmed, _ := strconv.ParseBool(c.Query("confirm"))

	err := h.dashboard.Delete(c.Request.Context(), id, confirmed)
	switch {
	case err == nil:
		success(c, http.StatusOK, nil)
	case errors.Is(err, service.ErrConfirmationRequired):
		failure(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrLinkNotFound), errors.Is(err, repository.ErrLinkNotFound):
		failure(c, http.StatusNotFound, "Link not found")
	case errors.Is(err, service.ErrBusy):
		failure(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrNotStarted):
		failure(c, http.StatusUnauthorized, "Sign in required")
	default:
		failure(c, http.StatusInternalServerError, "Failed to delete link")
	}
}

// Select handles POST /api/v1/links/:id/select
// @Summary Select a link and load its analytics
// @Tags analytics
// @Produce json
// @Param id path int true "Link ID"
// @Success 200 {object} Response{data=AnalyticsView}
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/links/{id}/select [post]
func (h *LinkHandler) Select(c *gin.Context) {
	id, ok := linkID(c)
	if !ok {
		return
	}

	view, err := h.dashboard.Select(c.Request.Context(), id)
	switch {
	case err == nil:
		success(c, http.StatusOK, h.presenter.Analytics(view))
	case errors.Is(err, service.ErrLinkNotFound):
		failure(c, http.StatusNotFound, "Link not found")
	case errors.Is(err, service.ErrStaleSelection):
		failure(c, http.StatusConflict, "Another link was selected")
	case errors.Is(err, service.ErrNotStarted):
		failure(c, http.StatusUnauthorized, "Sign in required")
	default:
		failure(c, http.StatusBadGateway, "Analytics unavailable")
	}
}

// Analytics handles GET /api/v1/analytics
// @Summary Current analytics state
// @Tags analytics
// @Produce json
// @Success 200 {object} Response{data=AnalyticsState}
// @Router /api/v1/analytics [get]
func (h *LinkHandler) Analytics(c *gin.Context) {
	success(c, http.StatusOK, h.presenter.State(h.dashboard.Current()))
}

func (h *LinkHandler) writeCreation(c *gin.Context, result *model.CreationResult, err error, okStatus int) {
	if result != nil {
		view := CreationView{
			Link:         h.presenter.Link(result.Link),
			ShortURL:     result.ShortURL,
			QRCodeBase64: result.QRCodeBase64,
			QRStatus:     result.QRStatus,
			QRDetail:     result.QRDetail,
		}
		if err != nil {
			c.JSON(http.StatusMultiStatus, Response{Code: http.StatusMultiStatus, Message: err.Error(), Data: view})
			return
		}
		success(c, okStatus, view)
		return
	}

	var cerr *service.CreationError
	var apiErr *backend.APIError
	switch {
	case errors.Is(err, service.ErrEmptyURL):
		failure(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNoResult):
		failure(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrBusy):
		failure(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrNotStarted):
		failure(c, http.StatusUnauthorized, "Sign in required")
	case errors.As(err, &cerr) && errors.As(err, &apiErr) && apiErr.Status < 500:
		failure(c, http.StatusUnprocessableEntity, cerr.Detail)
	case errors.As(err, &cerr):
		failure(c, http.StatusBadGateway, cerr.Detail)
	default:
		failure(c, http.StatusInternalServerError, "Failed to create link")
	}
}

func linkID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		failure(c, http.StatusBadRequest, "Invalid link id")
		return 0, false
	}
	return id, true
}
