// internal/handlers/payment_config_handler.go
package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rywndr/AfiDu/config"
	"github.com/rywndr/AfiDu/internal/prorate"
	"github.com/rywndr/AfiDu/models"
)

// GetPaymentConfigHandler returns the active payment config, creating the
// defaults when none exists.
func GetPaymentConfigHandler(c *gin.Context) {
	cfg, err := models.ActivePaymentConfig(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load payment config"})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

type paymentConfigRequest struct {
	Year               int    `json:"year"`
	MonthlyFee         int64  `json:"monthlyFee" binding:"required"`
	MaxInstallments    int    `json:"maxInstallments" binding:"required"`
	MidSemesterStart   int    `json:"midSemesterStart"`
	MidSemesterEnd     int    `json:"midSemesterEnd"`
	FinalSemesterStart int    `json:"finalSemesterStart"`
	FinalSemesterEnd   int    `json:"finalSemesterEnd"`
	ProrationFormula   string `json:"prorationFormula"`
}

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func (r *paymentConfigRequest) validate() string {
	if r.MonthlyFee <= 0 {
		return "Monthly fee must be greater than zero"
	}
	if r.MaxInstallments < 1 {
		return "Maximum installments must be at least 1"
	}
	for _, m := range []int{r.MidSemesterStart, r.MidSemesterEnd, r.FinalSemesterStart, r.FinalSemesterEnd} {
		if m < 1 || m > 12 {
			return "Semester months must be between 1 and 12"
		}
	}
	if r.MidSemesterStart > r.MidSemesterEnd {
		return "Mid semester end month cannot be before start month"
	}
	if r.FinalSemesterStart > r.FinalSemesterEnd {
		return "Final semester end month cannot be before start month"
	}

	var overlap []string
	for m := r.MidSemesterStart; m <= r.MidSemesterEnd; m++ {
		if m >= r.FinalSemesterStart && m <= r.FinalSemesterEnd {
			overlap = append(overlap, monthNames[m-1])
		}
	}
	if len(overlap) > 0 {
		return fmt.Sprintf("Semesters cannot overlap. Overlapping month(s): %s", strings.Join(overlap, ", "))
	}

	if r.ProrationFormula != "" {
		if err := prorate.Validate(r.ProrationFormula); err != nil {
			return err.Error()
		}
	}
	return ""
}

// UpdatePaymentConfigHandler replaces the active payment settings.
func UpdatePaymentConfigHandler(c *gin.Context) {
	var req paymentConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid config data: " + err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	cfg, err := models.ActivePaymentConfig(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load payment config"})
		return
	}

	cfg.Year = req.Year
	cfg.MonthlyFee = req.MonthlyFee
	cfg.MaxInstallments = req.MaxInstallments
	cfg.MidSemesterStart = req.MidSemesterStart
	cfg.MidSemesterEnd = req.MidSemesterEnd
	cfg.FinalSemesterStart = req.FinalSemesterStart
	cfg.FinalSemesterEnd = req.FinalSemesterEnd
	if req.ProrationFormula != "" {
		cfg.ProrationFormula = req.ProrationFormula
	}
	cfg.IsActive = true

	if err := config.DB.Save(&cfg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save payment config"})
		return
	}

	c.JSON(http.StatusOK, cfg)
}
