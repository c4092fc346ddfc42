// internal/handlers/payment_update_handler.go
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rywndr/AfiDu/config"
	"github.com/rywndr/AfiDu/internal/allocation"
	"github.com/rywndr/AfiDu/models"
)

// submissionRequest is the payload produced by the edit session's
// submission projection.
type submissionRequest struct {
	Mode                    allocation.Mode          `json:"mode" binding:"required"`
	AmountPaid              int64                    `json:"amountPaid"`
	Installments            []allocation.Installment `json:"installments"`
	AutoConvertedFromSingle bool                     `json:"autoConvertedFromSingle"`
}

func submitError(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": false, "message": message})
}

// UpdatePaymentHandler applies a validated allocation to a payment
// record. The same validator the editing client runs is applied again
// here; the client is not the trust boundary.
func UpdatePaymentHandler(c *gin.Context) {
	paymentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid payment ID"})
		return
	}

	var req submissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid payment data: " + err.Error()})
		return
	}

	var payment models.Payment
	if err := config.DB.First(&payment, paymentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Payment not found"})
		return
	}

	cfg, err := models.ActivePaymentConfig(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not load payment config"})
		return
	}

	alloc, msg := rebuildAllocation(payment.ID, cfg, req)
	if msg != "" {
		submitError(c, msg)
		return
	}
	if err := alloc.ValidateForSubmit(); err != nil {
		submitError(c, err.Error())
		return
	}

	now := time.Now()
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("payment_id = ?", payment.ID).
			Delete(&models.InstallmentRecord{}).Error; err != nil {
			return err
		}
		for _, ins := range alloc.Installments {
			record := models.InstallmentRecord{
				PaymentID: payment.ID,
				Number:    ins.Number,
				Amount:    ins.Amount,
				PaidAt:    now,
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}

		// persist what was validated, never the raw payload figure
		payment.AmountPaid = alloc.TotalPaid()
		payment.InstallmentCount = len(alloc.Installments)
		payment.PaymentDate = &now
		payment.Recalculate(cfg.MonthlyFee)
		return tx.Save(&payment).Error
	})
	if err != nil {
		slog.Error("failed to save payment", "payment_id", payment.ID, "error", err)
		submitError(c, "Could not save payment")
		return
	}

	invalidateInstallmentCache(payment.ID)

	if req.AutoConvertedFromSingle {
		slog.Info("partial single payment recorded as installment",
			"payment_id", payment.ID, "amount", req.AmountPaid)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"amountPaid":      payment.AmountPaid,
		"remainingAmount": payment.RemainingAmount,
		"paid":            payment.Paid,
	})
}

// rebuildAllocation reconstructs the working state the client submitted so
// the shared validator can run server-side. Returns a user-facing message
// when the payload itself is malformed.
func rebuildAllocation(paymentID uint, cfg models.PaymentConfig, req submissionRequest) (*allocation.Allocation, string) {
	ob := allocation.Obligation{
		ID:              paymentID,
		FeeAmount:       cfg.MonthlyFee,
		MaxInstallments: cfg.MaxInstallments,
	}
	alloc := &allocation.Allocation{Obligation: ob, Mode: req.Mode}

	switch req.Mode {
	case allocation.ModeSingle:
		if req.AmountPaid < 0 {
			return nil, "Payment amount cannot be negative"
		}
		// a stray installments array in single mode is ignored: the
		// allocation carries no installments and zero are persisted
		alloc.SingleAmount = req.AmountPaid
	case allocation.ModeInstallment:
		if len(req.Installments) == 0 {
			return nil, "At least one installment is required"
		}
		if len(req.Installments) > cfg.MaxInstallments {
			return nil, fmt.Sprintf("Maximum of %d installments allowed", cfg.MaxInstallments)
		}
		for i, ins := range req.Installments {
			if ins.Number != i+1 {
				return nil, "Installment numbers must be contiguous starting at 1"
			}
			if ins.Amount < 0 {
				return nil, "Installment amounts cannot be negative"
			}
		}
		alloc.Installments = req.Installments
	default:
		return nil, "Unknown payment mode"
	}

	if req.AmountPaid != alloc.TotalPaid() {
		return nil, "Amount paid does not match the installment total"
	}
	return alloc, ""
}
