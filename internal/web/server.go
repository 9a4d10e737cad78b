package web

import (
	"embed"
	"html/template"
	"log"
	"net/http"
	"time"

	"gymlog/clients/ai"
	"gymlog/internal/config"
	"gymlog/internal/parser"
	"gymlog/internal/storage"

	"github.com/gin-gonic/gin"
)

//go:embed templates/index.html
var content embed.FS

// Пользователь по умолчанию для записей с веб-формы
const (
	defaultUserID   = "default_user"
	defaultUsername = "User"
)

// Server обрабатывает HTTP-запросы веб-интерфейса
type Server struct {
	store  storage.Store
	parser *ai.WorkoutParser
}

// logRequest - тело запроса POST /log
type logRequest struct {
	Input    string `json:"input"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// NewRouter создаёт gin-роутер со всеми маршрутами
func NewRouter(store storage.Store, cfg *config.Config) *gin.Engine {
	var workoutParser *ai.WorkoutParser
	if cfg.GoogleAPIKey != "" {
		client := ai.NewClient(cfg.GoogleAPIKey)
		if cfg.GeminiModel != "" {
			client.SetModel(cfg.GeminiModel)
		}
		workoutParser = ai.NewWorkoutParser(client)
		log.Println("Gemini парсер инициализирован")
	} else {
		log.Println("GOOGLE_API_KEY не задан, работает только локальный парсер")
	}

	s := &Server{store: store, parser: workoutParser}

	t := template.Must(template.ParseFS(content, "templates/index.html"))

	engine := gin.Default()
	engine.SetHTMLTemplate(t)

	engine.GET("/", s.handleIndex)
	engine.POST("/log", s.handleLog)
	engine.GET("/health", s.handleHealth)

	return engine
}

// handleIndex отдаёт страницу с формой
func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

// handleLog принимает текст тренировки, разбирает и сохраняет
func (s *Server) handleLog(c *gin.Context) {
	var req logRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректный JSON"})
		return
	}

	input := req.Input
	if input == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "нет текста тренировки"})
		return
	}

	userID := req.UserID
	if userID == "" {
		userID = defaultUserID
	}
	username := req.Username
	if username == "" {
		username = defaultUsername
	}

	log.Printf("Разбор тренировки: %q", input)
	workout, err := parser.ParseInput(s.parser, input, userID, username, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ошибка разбора: " + err.Error()})
		return
	}

	workoutIDs, err := s.store.LogEntries(workout.Entries)
	if err != nil {
		log.Printf("Ошибка сохранения: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "ошибка сохранения: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"entries_logged": len(workout.Entries),
		"workout_ids":    workoutIDs,
		"message":        "записи сохранены",
	})
}

// handleHealth - проверка живости сервиса
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
