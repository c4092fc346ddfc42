// internal/handlers/installment_data_handler.go
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rywndr/AfiDu/config"
	"github.com/rywndr/AfiDu/internal/prorate"
	"github.com/rywndr/AfiDu/models"
)

const installmentCacheTTL = 5 * time.Minute

func installmentCacheKey(paymentID uint) string {
	return fmt.Sprintf("payment:%d:installments", paymentID)
}

type installmentHistoryEntry struct {
	Number int    `json:"number"`
	Amount int64  `json:"amount"`
	Date   string `json:"date"`
}

// installmentDataResponse mirrors what the edit modal consumes. Success is
// only true when stored per-installment detail exists; without it the
// client applies its documented equal-split fallback, and
// suggestedAmounts carries the server's proration hint for display.
type installmentDataResponse struct {
	Success          bool                      `json:"success"`
	Records          []installmentHistoryEntry `json:"installmentRecords"`
	Details          map[string]int64          `json:"installmentDetails,omitempty"`
	SuggestedAmounts []int64                   `json:"suggestedAmounts,omitempty"`
	Message          string                    `json:"message,omitempty"`
}

// GetInstallmentDataHandler serves the installment history and stored
// per-installment amounts for one payment. Responses are cached in redis.
func GetInstallmentDataHandler(c *gin.Context) {
	paymentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid payment ID"})
		return
	}

	if config.RDB != nil {
		cached, err := config.RDB.Get(config.Ctx, installmentCacheKey(uint(paymentID))).Result()
		if err == nil {
			var resp installmentDataResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	var payment models.Payment
	if err := config.DB.First(&payment, paymentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Payment not found"})
		return
	}

	var records []models.InstallmentRecord
	if err := config.DB.
		Where("payment_id = ?", payment.ID).
		Order("number asc").
		Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not fetch installments"})
		return
	}

	resp := installmentDataResponse{
		Records: make([]installmentHistoryEntry, 0, len(records)),
	}
	for _, r := range records {
		resp.Records = append(resp.Records, installmentHistoryEntry{
			Number: r.Number,
			Amount: r.Amount,
			Date:   r.PaidAt.Format("02.01.2006"),
		})
	}

	if len(records) > 0 {
		resp.Success = true
		resp.Details = make(map[string]int64, len(records))
		for _, r := range records {
			resp.Details[fmt.Sprintf("installment_%d", r.Number)] = r.Amount
		}
	} else if payment.IsInstallment && payment.InstallmentCount > 0 {
		// older records never stored per-installment detail; offer the
		// configured proration as a hint, but report the absence honestly
		cfg, err := models.ActivePaymentConfig(config.DB)
		if err == nil {
			suggested, err := prorate.Split(cfg.ProrationFormula, payment.AmountPaid, payment.InstallmentCount)
			if err != nil {
				slog.Warn("proration formula failed", "formula", cfg.ProrationFormula, "error", err)
			} else {
				resp.SuggestedAmounts = suggested
			}
		}
		resp.Message = "No stored installment detail for this payment"
	}

	if config.RDB != nil {
		if body, err := json.Marshal(resp); err == nil {
			config.RDB.Set(config.Ctx, installmentCacheKey(payment.ID), body, installmentCacheTTL)
		}
	}

	c.JSON(http.StatusOK, resp)
}

func invalidateInstallmentCache(paymentID uint) {
	if config.RDB == nil {
		return
	}
	config.RDB.Del(config.Ctx, installmentCacheKey(paymentID))
}
