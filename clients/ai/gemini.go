package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	GeminiAPIURL = "https://generativelanguage.googleapis.com/v1beta/models"
	// Доступные модели Google AI Studio:
	// - "gemini-2.5-flash" - быстрая, основная
	// - "gemini-2.5-pro" - медленнее, точнее
	// - "gemini-2.0-flash" - предыдущее поколение
	DefaultModel  = "gemini-2.5-flash"
	FallbackModel = "gemini-2.0-flash"
)

// Client - клиент для работы с Gemini API
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	model      string
}

// Part - фрагмент контента
type Part struct {
	Text string `json:"text"`
}

// Content - контент сообщения
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// GenerationConfig - параметры генерации
type GenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

// generateRequest - запрос к API
type generateRequest struct {
	Contents         []Content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

// generateResponse - ответ от API
type generateResponse struct {
	Candidates []struct {
		Content      Content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// NewClient создаёт новый клиент Gemini
func NewClient(apiKey string) *Client {
	return NewClientWithURL(GeminiAPIURL, apiKey, DefaultModel)
}

// NewClientWithURL создаёт клиент с нестандартным URL (для тестов и прокси)
func NewClientWithURL(baseURL, apiKey, model string) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		model: model,
	}
}

// SetModel устанавливает модель
func (c *Client) SetModel(model string) {
	c.model = model
}

// Generate отправляет промпт и возвращает текст ответа
func (c *Client) Generate(prompt string, temperature float64) (string, error) {
	// Пробуем основную модель, при ошибке - fallback
	models := []string{c.model}
	if c.model != FallbackModel {
		models = append(models, FallbackModel)
	}

	var lastErr error
	for _, model := range models {
		result, err := c.generateWithModel(prompt, temperature, model)
		if err == nil {
			return result, nil
		}
		lastErr = err
	}
	return "", lastErr
}

// generateWithModel выполняет запрос к конкретной модели
func (c *Client) generateWithModel(prompt string, temperature float64, model string) (string, error) {
	req := generateRequest{
		Contents: []Content{
			{Parts: []Part{{Text: prompt}}},
		},
		GenerationConfig: &GenerationConfig{
			Temperature:     temperature,
			MaxOutputTokens: 4096,
		},
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("ошибка сериализации: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", c.baseURL, model, c.apiKey)
	httpReq, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("ошибка создания запроса: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("ошибка запроса: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	var genResp generateResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return "", fmt.Errorf("ошибка парсинга ответа: %w", err)
	}

	if genResp.Error != nil {
		return "", fmt.Errorf("ошибка API: %s", genResp.Error.Message)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("пустой ответ от API")
	}

	return genResp.Candidates[0].Content.Parts[0].Text, nil
}
