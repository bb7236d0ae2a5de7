package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"qrlink/internal/domain/qrcode"
	reqdto "qrlink/internal/handler/dto/request"
	resdto "qrlink/internal/handler/dto/response"
	"qrlink/internal/handler/httperr"
	"qrlink/internal/handler/middleware"
	"qrlink/internal/pkg/errs"
	"qrlink/internal/usecase/commands"
	"qrlink/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type QRCodeHandler struct {
	cmds commands.QRCodeCommands
	q    queries.QRCodeQueries
}

func NewQRCodeHandler(cmds commands.QRCodeCommands, q queries.QRCodeQueries) *QRCodeHandler {
	return &QRCodeHandler{cmds: cmds, q: q}
}

// @Summary List QR codes
// @Description List the authenticated shop's QR codes, newest first, enriched with catalog data
// @Tags codes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.QRCodeResponse
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/codes [get]
func (h *QRCodeHandler) List(c *gin.Context) {
	shop, ok := middleware.GetShop(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing shop in context"), "Unauthorized", nil)
		return
	}
	items, err := h.q.ListByShop(c.Request.Context(), shop)
	if err != nil {
		abortQRCodeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"qr_codes": resdto.FromEnrichedList(items)})
}

// @Summary Get QR code
// @Description Get one of the authenticated shop's QR codes, enriched with catalog data
// @Tags codes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Code ID"
// @Success 200 {object} resdto.QRCodeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/codes/{id} [get]
func (h *QRCodeHandler) Get(c *gin.Context) {
	shop, ok := middleware.GetShop(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing shop in context"), "Unauthorized", nil)
		return
	}
	id, ok := parseCodeID(c)
	if !ok {
		return
	}
	enriched, err := h.q.GetEnriched(c.Request.Context(), id, shop)
	if err != nil {
		abortQRCodeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEnriched(enriched))
}

// @Summary Create QR code
// @Description Create a QR code for the authenticated shop
// @Tags codes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpsertQRCodeRequest true "Create request"
// @Success 201 {object} map[string]int64
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/codes [post]
func (h *QRCodeHandler) Create(c *gin.Context) {
	shop, ok := middleware.GetShop(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing shop in context"), "Unauthorized", nil)
		return
	}
	var req reqdto.UpsertQRCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), req.ToCommand(), shop)
	if err != nil {
		abortQRCodeError(c, err)
		return
	}
	c.Header("Location", "/api/codes/"+strconv.FormatInt(result.ID, 10))
	c.JSON(http.StatusCreated, gin.H{"id": result.ID})
}

// @Summary Update QR code
// @Description Update one of the authenticated shop's QR codes
// @Tags codes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Code ID"
// @Param request body reqdto.UpsertQRCodeRequest true "Update request"
// @Success 200 {object} resdto.QRCodeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/codes/{id} [put]
func (h *QRCodeHandler) Update(c *gin.Context) {
	shop, ok := middleware.GetShop(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing shop in context"), "Unauthorized", nil)
		return
	}
	id, ok := parseCodeID(c)
	if !ok {
		return
	}
	var req reqdto.UpsertQRCodeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req.ToCommand(), shop); err != nil {
		abortQRCodeError(c, err)
		return
	}
	enriched, err := h.q.GetEnriched(c.Request.Context(), id, shop)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load qr code", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEnriched(enriched))
}

// @Summary QR code detail
// @Description Public detail view: title plus the QR image as a data URI
// @Tags codes
// @Produce json
// @Param id path int true "Code ID"
// @Success 200 {object} resdto.QRCodeDetailResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /codes/{id} [get]
func (h *QRCodeHandler) Detail(c *gin.Context) {
	id, ok := parseCodeID(c)
	if !ok {
		return
	}
	detail, err := h.q.GetDetail(c.Request.Context(), id)
	if err != nil {
		abortQRCodeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDetail(detail))
}

func parseCodeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = errs.New("non-positive code id")
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid code id", nil)
		return 0, false
	}
	return id, true
}

func abortQRCodeError(c *gin.Context, err error) {
	var vErr *commands.ValidationError
	switch {
	case errors.As(err, &vErr):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", vErr.Fields)
	case errors.Is(err, errs.ErrQRCodeNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errors.Is(err, qrcode.ErrMalformedVariantRef):
		// Stored data failed a structural invariant; this is corruption, not
		// user error.
		slog.Error("stored variant reference is malformed", "path", c.Request.URL.Path, "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Stored destination is invalid", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
