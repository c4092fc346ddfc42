// internal/handlers/report_handler.go
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/rywndr/AfiDu/config"
	"github.com/rywndr/AfiDu/models"
)

// ExportPaymentReportHandler streams the yearly payment grid as an .xlsx
// file: one row per student, one column per month, plus totals and the
// outstanding amount against the yearly fee.
func ExportPaymentReportHandler(c *gin.Context) {
	year := reportYear(c)

	cfg, err := models.ActivePaymentConfig(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load payment config"})
		return
	}

	var students []models.Student
	if err := config.DB.Preload("Class").Order("name").Find(&students).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch students"})
		return
	}

	f := excelize.NewFile()
	sheetName := fmt.Sprintf("Payments %d", year)
	index, err := f.NewSheet(sheetName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create report sheet"})
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Student", "Class", "Level"}
	for m := time.January; m <= time.December; m++ {
		headers = append(headers, m.String()[:3])
	}
	headers = append(headers, "Total Paid", "Outstanding")
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, student := range students {
		row := i + 2

		var payments []models.Payment
		if err := config.DB.
			Where("student_id = ? AND year = ?", student.ID, year).
			Find(&payments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch payments"})
			return
		}
		byMonth := make(map[int]models.Payment, len(payments))
		for _, p := range payments {
			byMonth[p.Month] = p
		}

		className := ""
		if student.Class != nil {
			className = student.Class.Name
		}
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), student.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), className)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), student.Level)

		var totalPaid int64
		for month := 1; month <= 12; month++ {
			cell, _ := excelize.CoordinatesToCellName(3+month, row)
			p, ok := byMonth[month]
			if !ok {
				f.SetCellValue(sheetName, cell, 0)
				continue
			}
			f.SetCellValue(sheetName, cell, p.AmountPaid)
			if p.IsInstallment {
				// tandai cicilan yang belum lunas
				f.SetCellValue(sheetName, cell, fmt.Sprintf("%d (%d/%d)", p.AmountPaid, p.InstallmentCount, cfg.MaxInstallments))
			}
			totalPaid += p.AmountPaid
		}

		outstanding := cfg.MonthlyFee*12 - totalPaid
		if outstanding < 0 {
			outstanding = 0
		}
		totalCell, _ := excelize.CoordinatesToCellName(len(headers)-1, row)
		outCell, _ := excelize.CoordinatesToCellName(len(headers), row)
		f.SetCellValue(sheetName, totalCell, totalPaid)
		f.SetCellValue(sheetName, outCell, outstanding)
	}

	fileName := fmt.Sprintf("payment_report_%d_%s.xlsx", year, time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
	}
}
