// models/payment.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment is one student's monthly fee record. Amounts are whole IDR.
type Payment struct {
	gorm.Model
	StudentID uint    `json:"studentId" gorm:"not null;uniqueIndex:idx_student_period"`
	Student   Student `json:"student,omitempty"`
	Year      int     `json:"year" gorm:"uniqueIndex:idx_student_period"`
	Month     int     `json:"month" gorm:"uniqueIndex:idx_student_period"`

	Paid             bool       `json:"paid"`
	AmountPaid       int64      `json:"amountPaid" gorm:"type:numeric(12,0);default:0"`
	IsInstallment    bool       `json:"isInstallment"`
	InstallmentCount int        `json:"installmentCount"`
	RemainingAmount  int64      `json:"remainingAmount" gorm:"type:numeric(12,0);default:0"`
	PaymentDate      *time.Time `json:"paymentDate"`

	Installments []InstallmentRecord `json:"installments,omitempty"`
}

// Recalculate derives the reconciliation fields from AmountPaid against
// the active monthly fee. Remaining never goes negative; a strictly
// partial total marks the payment as an installment (cicilan); paying the
// full fee or more marks it settled.
func (p *Payment) Recalculate(monthlyFee int64) {
	diff := monthlyFee - p.AmountPaid
	if diff < 0 {
		diff = 0
	}
	p.RemainingAmount = diff
	p.IsInstallment = p.AmountPaid > 0 && p.AmountPaid < monthlyFee
	p.Paid = p.AmountPaid >= monthlyFee
}

// InstallmentRecord stores one settled installment of a payment, the
// source of both the read-only history ledger and the per-installment
// detail map served to the edit modal.
type InstallmentRecord struct {
	gorm.Model
	PaymentID uint      `json:"paymentId" gorm:"not null;index"`
	Number    int       `json:"number" gorm:"not null"`
	Amount    int64     `json:"amount" gorm:"type:numeric(12,0)"`
	PaidAt    time.Time `json:"paidAt"`
}
