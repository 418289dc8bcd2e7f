package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/quizroom-api/internal/domain/entity"
	"github.com/yourusername/quizroom-api/internal/handler/dto"
	"github.com/yourusername/quizroom-api/internal/middleware"
	"github.com/yourusername/quizroom-api/internal/service"
)

// QuizHandler обрабатывает запросы, связанные с викторинами
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик викторин
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// QuestionPayload представляет вопрос в запросе на создание/обновление.
// CorrectAnswer — указатель, чтобы binding:"required" не отбрасывал индекс 0
type QuestionPayload struct {
	Question      string   `json:"question" binding:"required,notblank,max=500"`
	Options       []string `json:"options" binding:"required,len=4,dive,required,notblank"`
	CorrectAnswer *int     `json:"correctAnswer" binding:"required,min=0,max=3"`
}

// QuizPayload представляет запрос на создание или обновление викторины
type QuizPayload struct {
	Title     string            `json:"title" binding:"required,notblank,max=200"`
	Questions []QuestionPayload `json:"questions" binding:"required,min=1,dive"`
}

// toEntities преобразует полезную нагрузку в доменные вопросы
func (p *QuizPayload) toEntities() []entity.Question {
	questions := make([]entity.Question, len(p.Questions))
	for i, q := range p.Questions {
		questions[i] = entity.Question{
			Text:          q.Question,
			Options:       entity.StringArray(q.Options),
			CorrectAnswer: *q.CorrectAnswer,
		}
	}
	return questions
}

// includeAnswers возвращает true, если роль читателя раскрывает правильные ответы
func includeAnswers(c *gin.Context) bool {
	role, _ := c.Get(middleware.ContextRole)
	return role == entity.RoleAdmin
}

// CreateQuiz обрабатывает запрос на создание викторины (только admin)
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var req QuizPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quiz, err := h.quizService.CreateQuiz(req.Title, req.toEntities())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewQuizView(quiz, true))
}

// GetQuiz возвращает викторину в проекции, соответствующей роли читателя:
// студент не видит поле correctAnswer вовсе
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quizID := c.MustGet("quizID").(string)

	quiz, err := h.quizService.GetQuiz(quizID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuizView(quiz, includeAnswers(c)))
}

// ListQuizzes возвращает список викторин, новые первыми.
// Списочная проекция фильтруется по роли так же, как одиночная
func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	quizzes, err := h.quizService.ListQuizzes()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuizListView(quizzes, includeAnswers(c)))
}

// UpdateQuiz обрабатывает запрос на обновление викторины (только admin).
// Набор вопросов заменяется целиком
func (h *QuizHandler) UpdateQuiz(c *gin.Context) {
	quizID := c.MustGet("quizID").(string)

	var req QuizPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quiz, err := h.quizService.UpdateQuiz(quizID, req.Title, req.toEntities())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuizView(quiz, true))
}

// DeleteQuiz обрабатывает запрос на удаление викторины (только admin)
func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	quizID := c.MustGet("quizID").(string)

	if err := h.quizService.DeleteQuiz(quizID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Quiz deleted successfully"})
}
