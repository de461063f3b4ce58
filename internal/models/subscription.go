package models

import "time"

// Статусы подписки.
const (
	StatusActive    = "active"
	StatusPaused    = "paused"
	StatusCancelled = "cancelled"
	StatusExpired   = "expired"
)

// DefaultCurrency валюта, подставляемая при создании подписки без явной валюты.
const DefaultCurrency = "KRW"

// Subscription представляет собой основную модель подписки,
// используемую в бизнес-логике и хранилище data/subscriptions.json.
// Платёжные даты хранятся строками в формате 2006-01-02, как их
// присылает и отображает клиент, пустая строка означает отсутствие даты.
type Subscription struct {
	ID              int64     `json:"id"`                        // Синтетический идентификатор подписки
	UserID          int64     `json:"userId"`                    // Идентификатор владельца
	Name            string    `json:"name"`                      // Название сервиса подписки
	Description     string    `json:"description,omitempty"`     // Произвольное описание
	Category        string    `json:"category,omitempty"`        // Категория (entertainment, music, ...)
	Amount          float64   `json:"amount"`                    // Стоимость за один платёжный период
	Currency        string    `json:"currency"`                  // Валюта, по умолчанию KRW
	BillingCycle    string    `json:"billingCycle,omitempty"`    // Период оплаты: monthly/yearly/weekly/quarterly/biannual
	NextPaymentDate string    `json:"nextPaymentDate,omitempty"` // Дата следующего платежа
	LastPaymentDate string    `json:"lastPaymentDate,omitempty"` // Дата последнего платежа
	Status          string    `json:"status"`                    // Статус, по умолчанию active
	ServiceIcon     string    `json:"serviceIcon,omitempty"`     // Иконка для отображения
	ServiceColor    string    `json:"serviceColor,omitempty"`    // Цвет для отображения
	CancellationURL string    `json:"cancellationUrl,omitempty"` // Ссылка на страницу отмены
	AutoDetected    bool      `json:"autoDetected,omitempty"`    // Подписка найдена автоматически
	PausedUntil     string    `json:"pausedUntil,omitempty"`     // Дата окончания паузы
	DisplayOrder    int       `json:"displayOrder"`              // Порядок отображения, пересчитывается при reorder
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
