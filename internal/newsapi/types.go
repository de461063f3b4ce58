package newsapi

// EverythingResponse ответ NewsAPI на запрос /everything.
// Поля Code и Message заполнены только при status != "ok".
type EverythingResponse struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
	Code         string    `json:"code,omitempty"`
	Message      string    `json:"message,omitempty"`
}

// Article статья в ответе NewsAPI.
type Article struct {
	Source      Source `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
}

// Source издание, опубликовавшее статью.
type Source struct {
	Name string `json:"name"`
}
