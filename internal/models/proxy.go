package models

// ExchangeRates результат запроса курсов валют.
// Поле Source показывает, получены значения от внешнего API
// ("external_api") или подставлены резервные ("fallback").
type ExchangeRates struct {
	Base   string             `json:"base"`
	Date   string             `json:"date"`
	Rates  map[string]float64 `json:"rates"`
	Source string             `json:"source"`
}

// NewsArticle статья в ответе новостного прокси.
type NewsArticle struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	PublishedAt string     `json:"publishedAt"`
	Source      NewsSource `json:"source"`
}

// NewsSource издание, опубликовавшее статью.
type NewsSource struct {
	Name string `json:"name"`
}

// NewsResult результат запроса новостей по категории.
// Source — "newsapi" при живом ответе внешнего API, "fallback" при
// подстановке статичных статей. TotalResults заполнен только для "newsapi".
type NewsResult struct {
	Category     string        `json:"category"`
	Articles     []NewsArticle `json:"articles"`
	Source       string        `json:"source"`
	TotalResults int           `json:"totalResults,omitempty"`
}
