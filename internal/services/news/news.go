// Package services содержит бизнес-логику новостного прокси.
//
// Сервис ищет корейские новости по категории подписки. Сбой внешнего API
// или пустой результат после языкового фильтра не превращаются в ошибку:
// клиент получает фиксированные статьи категории с source="fallback".
package services

import (
	"context"
	"log/slog"

	"github.com/PParksung/smart-subscription-manager/internal/lib/sl"
	"github.com/PParksung/smart-subscription-manager/internal/models"
	"github.com/PParksung/smart-subscription-manager/internal/newsapi"
)

// Источники данных в ответе.
const (
	SourceNewsAPI  = "newsapi"
	SourceFallback = "fallback"
)

// newsLanguage язык поиска статей.
const newsLanguage = "ko"

// NewsProvider описывает интерфейс клиента NewsAPI.
type NewsProvider interface {
	Everything(ctx context.Context, query, language string, pageSize int) (*newsapi.EverythingResponse, error)
}

// NewsService отдаёт новости по категории подписки.
type NewsService struct {
	client NewsProvider
	log    *slog.Logger
}

// NewNewsService создает новый экземпляр NewsService.
func NewNewsService(client NewsProvider, log *slog.Logger) *NewsService {
	return &NewsService{
		client: client,
		log:    log,
	}
}

// GetByCategory возвращает до pageSize корейских статей по категории.
// Никогда не возвращает ошибку: при сбое внешнего API или отсутствии
// корейских статей подставляются фиксированные статьи категории.
func (s *NewsService) GetByCategory(ctx context.Context, category string, pageSize int) *models.NewsResult {
	query := searchQuery(category)

	resp, err := s.client.Everything(ctx, query, newsLanguage, pageSize)
	if err != nil {
		s.log.Warn("news api call failed, using fallback",
			slog.String("category", category), sl.Err(err))
		return s.fallback(category, pageSize)
	}

	articles := make([]models.NewsArticle, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		// Оставляем только статьи с хотя бы одним хангыль-слогом
		if !containsKorean(a.Title) && !containsKorean(a.Description) {
			continue
		}
		name := a.Source.Name
		if name == "" {
			name = "Unknown"
		}
		articles = append(articles, models.NewsArticle{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
			Source:      models.NewsSource{Name: name},
		})
		if len(articles) == pageSize {
			break
		}
	}

	// Вызов успешен, но ни одна статья не прошла фильтр — тоже fallback
	if len(articles) == 0 {
		s.log.Info("news api returned no korean articles, using fallback",
			slog.String("category", category))
		return s.fallback(category, pageSize)
	}

	return &models.NewsResult{
		Category:     category,
		Articles:     articles,
		Source:       SourceNewsAPI,
		TotalResults: resp.TotalResults,
	}
}

func (s *NewsService) fallback(category string, pageSize int) *models.NewsResult {
	return &models.NewsResult{
		Category: category,
		Articles: fallbackArticles(category, pageSize),
		Source:   SourceFallback,
	}
}

// containsKorean сообщает, содержит ли строка хотя бы один символ
// из блока хангыль-слогов (U+AC00..U+D7A3).
func containsKorean(text string) bool {
	for _, r := range text {
		if r >= 0xAC00 && r <= 0xD7A3 {
			return true
		}
	}
	return false
}
