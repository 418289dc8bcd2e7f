package handler

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"github.com/yourusername/quizroom-api/internal/handler/dto"
	"github.com/yourusername/quizroom-api/internal/middleware"
	"github.com/yourusername/quizroom-api/internal/service"
)

// SubmissionHandler обрабатывает сдачу викторин и отчёты по попыткам
type SubmissionHandler struct {
	submissionService *service.SubmissionService
}

// NewSubmissionHandler создает новый обработчик попыток
func NewSubmissionHandler(submissionService *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

// SubmitRequest представляет запрос на сдачу викторины.
// Длина answers должна совпадать с количеством вопросов; пропущенный
// вопрос передаётся сигнальным значением -1
type SubmitRequest struct {
	Answers []int `json:"answers" binding:"required"`
}

// SubmitQuiz оценивает ответы и сохраняет попытку
func (h *SubmissionHandler) SubmitQuiz(c *gin.Context) {
	quizID := c.MustGet("quizID").(string)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.submissionService.SubmitQuiz(quizID, userID, req.Answers)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GradeResponse{
		Score:              result.Score,
		CorrectAnswers:     result.CorrectAnswers,
		TotalQuestions:     result.TotalQuestions,
		CorrectAnswersList: result.CorrectIndices,
	})
}

// ListSubmissions возвращает все попытки для администратора, новые первыми
func (h *SubmissionHandler) ListSubmissions(c *gin.Context) {
	records, err := h.submissionService.ListAllSubmissions()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSubmissionListView(records))
}

// ListMySubmissions возвращает попытки текущего пользователя, новые первыми
func (h *SubmissionHandler) ListMySubmissions(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	records, err := h.submissionService.ListUserSubmissions(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMySubmissionListView(records))
}

// ExportSubmissions экспортирует все попытки в CSV или Excel формате
// GET /api/submissions/export?format=csv|xlsx
func (h *SubmissionHandler) ExportSubmissions(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")

	records, err := h.submissionService.ListAllSubmissions()
	if err != nil {
		respondError(c, err)
		return
	}

	views := dto.NewSubmissionListView(records)
	filename := fmt.Sprintf("submissions_%s", time.Now().Format("2006-01-02"))

	switch format {
	case "xlsx":
		h.exportXLSX(c, views, filename)
	default:
		h.exportCSV(c, views, filename)
	}
}

var exportHeaders = []string{"Student", "Quiz", "Score", "Correct", "Total questions", "Submitted at"}

// exportCSV экспортирует попытки в CSV с правильным экранированием спецсимволов
func (h *SubmissionHandler) exportCSV(c *gin.Context, views []dto.SubmissionView, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))

	// BOM для корректного отображения UTF-8 в Excel
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	// Используем encoding/csv для правильного экранирования запятых/кавычек
	writer := csv.NewWriter(c.Writer)

	writer.Write(exportHeaders)

	for _, v := range views {
		writer.Write([]string{
			sanitizeForExcel(v.StudentName),
			sanitizeForExcel(v.QuizTitle),
			strconv.Itoa(v.Score),
			strconv.Itoa(v.CorrectAnswers),
			strconv.Itoa(v.TotalQuestions),
			v.SubmittedAt.Format(time.RFC3339),
		})
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Printf("[SubmissionHandler] Ошибка записи CSV в response: %v", err)
	}
}

// exportXLSX экспортирует попытки в Excel с использованием StreamWriter
func (h *SubmissionHandler) exportXLSX(c *gin.Context, views []dto.SubmissionView, filename string) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Submissions"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[SubmissionHandler] Ошибка создания StreamWriter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel file"})
		return
	}

	headers := make([]interface{}, len(exportHeaders))
	for i, hdr := range exportHeaders {
		headers[i] = hdr
	}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[SubmissionHandler] Ошибка записи заголовков: %v", err)
	}

	for i, v := range views {
		rowNum := i + 2 // Начинаем с 2 строки (1 - заголовки)
		cell := fmt.Sprintf("A%d", rowNum)
		row := []interface{}{
			sanitizeForExcel(v.StudentName),
			sanitizeForExcel(v.QuizTitle),
			v.Score,
			v.CorrectAnswers,
			v.TotalQuestions,
			v.SubmittedAt.Format(time.RFC3339),
		}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[SubmissionHandler] Ошибка записи строки %d: %v", rowNum, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[SubmissionHandler] Ошибка при Flush: %v", err)
	}

	if err := f.Write(c.Writer); err != nil {
		log.Printf("[SubmissionHandler] Ошибка записи Excel в response: %v", err)
	}
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	if s[0] == '=' || s[0] == '+' || s[0] == '-' || s[0] == '@' || s[0] == '\t' || s[0] == '\r' {
		return "'" + s
	}
	return s
}
