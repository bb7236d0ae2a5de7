package api

import (
	"errors"
	"net/http"

	"qrlink/internal/domain/qrcode"
	"qrlink/internal/pkg/errs"
	"qrlink/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var scansTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "qrlink_scans_total",
		Help: "Scan requests by outcome.",
	},
	[]string{"outcome"},
)

type ScanHandler struct {
	scans commands.ScanCommands
}

func NewScanHandler(scans commands.ScanCommands) *ScanHandler {
	return &ScanHandler{scans: scans}
}

// @Summary Scan a QR code
// @Description Record a scan and redirect to the code's destination
// @Tags scan
// @Param id path int true "Code ID"
// @Success 302
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /codes/{id}/scan [get]
func (h *ScanHandler) Scan(c *gin.Context) {
	id, ok := parseCodeID(c)
	if !ok {
		scansTotal.WithLabelValues("bad_request").Inc()
		return
	}

	url, err := h.scans.RecordScan(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrQRCodeNotFound):
			scansTotal.WithLabelValues("not_found").Inc()
		case errors.Is(err, qrcode.ErrMalformedVariantRef):
			scansTotal.WithLabelValues("malformed").Inc()
		default:
			scansTotal.WithLabelValues("error").Inc()
		}
		abortQRCodeError(c, err)
		return
	}

	scansTotal.WithLabelValues("ok").Inc()
	c.Redirect(http.StatusFound, url)
}
