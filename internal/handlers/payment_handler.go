// internal/handlers/payment_handler.go
package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rywndr/AfiDu/config"
	"github.com/rywndr/AfiDu/models"
)

// StudentPaymentRow is one row of the yearly payment grid: a student plus
// their twelve monthly payment records.
type StudentPaymentRow struct {
	Student  models.Student         `json:"student"`
	Payments map[int]models.Payment `json:"payments"`
}

// reportYear resolves the "year" query param, defaulting to the current year.
func reportYear(c *gin.Context) int {
	if y, err := strconv.Atoi(c.Query("year")); err == nil && y > 0 {
		return y
	}
	return time.Now().Year()
}

// ListPaymentsHandler serves the payment grid for one year. Students can
// be narrowed by a name search (q) and a class filter; missing monthly
// records are created on the fly so every cell of the grid exists.
func ListPaymentsHandler(c *gin.Context) {
	year := reportYear(c)

	query := config.DB.Model(&models.Student{}).Preload("Class")

	if q := c.Query("q"); q != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}
	if classFilter := c.Query("class_filter"); classFilter != "" {
		query = query.Where("class_id = ?", classFilter)
	}

	var totalRows int64
	if err := query.Count(&totalRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not count students"})
		return
	}

	var students []models.Student
	if err := query.Scopes(Paginate(c)).Order("name").Find(&students).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch students"})
		return
	}

	cfg, err := models.ActivePaymentConfig(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load payment config"})
		return
	}

	rows := make([]StudentPaymentRow, 0, len(students))
	for _, student := range students {
		monthly := make(map[int]models.Payment, 12)
		for month := 1; month <= 12; month++ {
			var payment models.Payment
			err := config.DB.
				Where(models.Payment{StudentID: student.ID, Year: year, Month: month}).
				FirstOrCreate(&payment).Error
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load payments"})
				return
			}
			monthly[month] = payment
		}
		rows = append(rows, StudentPaymentRow{Student: student, Payments: monthly})
	}

	resp := CreatePaginatedResponse(c, rows, totalRows)
	c.JSON(http.StatusOK, gin.H{
		"year":            year,
		"monthlyFee":      cfg.MonthlyFee,
		"maxInstallments": cfg.MaxInstallments,
		"data":            resp.Data,
		"totalRows":       resp.TotalRows,
		"totalPages":      resp.TotalPages,
		"currentPage":     resp.CurrentPage,
		"perPage":         resp.PerPage,
	})
}

// TogglePaymentHandler flips a payment's paid status without touching the
// recorded amounts. Used from the grid checkboxes.
func TogglePaymentHandler(c *gin.Context) {
	paymentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment ID"})
		return
	}

	var payment models.Payment
	if err := config.DB.First(&payment, paymentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}

	if err := config.DB.Model(&payment).Update("paid", !payment.Paid).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"paid": !payment.Paid})
}
