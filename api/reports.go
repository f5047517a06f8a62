package api

import (
	"net/http"

	"github.com/Domenick1991/seatbooking/internal/service/report"
	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	service report.ReportUseCase
}

func NewReportHandler(service report.ReportUseCase) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) Register(router *gin.RouterGroup) {
	router.GET("/summary", h.summary)
	router.GET("/flights/:id", h.flight)
}

func (h *ReportHandler) summary(c *gin.Context) {
	sum, err := h.service.Summary(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

func (h *ReportHandler) flight(c *gin.Context) {
	id, ok := flightID(c)
	if !ok {
		return
	}
	r, err := h.service.Flight(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}
