package server

import (
	"net/http"
	"strings"

	"github.com/PrimeDigitals001/Prototype-pos/internal/report"
	"github.com/gin-gonic/gin"
)

func (s *Server) ReportOverview(c *gin.Context) {
	period := report.Period(strings.TrimSpace(c.DefaultQuery("period", string(report.PeriodDaily))))

	resp, err := s.reportSvc.Overview(c.Request.Context(), period)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
