package models

// SignupRequest используется для приёма данных регистрации из JSON-запроса.
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`           // Имя пользователя
	Email    string `json:"email" validate:"required,email"`    // Электронная почта
	Password string `json:"password" validate:"required,min=8"` // Пароль, минимум 8 символов
}

// LoginRequest используется для приёма данных входа из JSON-запроса.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateEntryRequest используется для приёма данных новой подписки
// из JSON-запроса, прежде чем конвертировать их в Subscription.
// Даты приходят строками, чтобы их можно было валидировать вручную.
type CreateEntryRequest struct {
	Name            string  `json:"name" validate:"required"` // Название сервиса
	Description     string  `json:"description,omitempty" validate:"omitempty"`
	Category        string  `json:"category,omitempty" validate:"omitempty"`
	Amount          float64 `json:"amount,omitempty" validate:"omitempty,gte=0"`
	Currency        string  `json:"currency,omitempty" validate:"omitempty"`
	BillingCycle    string  `json:"billingCycle,omitempty" validate:"omitempty,oneof=monthly yearly weekly quarterly biannual"`
	NextPaymentDate string  `json:"nextPaymentDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	LastPaymentDate string  `json:"lastPaymentDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status          string  `json:"status,omitempty" validate:"omitempty,oneof=active paused cancelled expired"`
	ServiceIcon     string  `json:"serviceIcon,omitempty" validate:"omitempty"`
	ServiceColor    string  `json:"serviceColor,omitempty" validate:"omitempty"`
	CancellationURL string  `json:"cancellationUrl,omitempty" validate:"omitempty,url"`
	AutoDetected    bool    `json:"autoDetected,omitempty"`
	PausedUntil     string  `json:"pausedUntil,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateEntryRequest используется при частичном обновлении подписки.
// nil-поле означает «оставить без изменений», поэтому все поля — указатели.
// Поля id и userId из запроса игнорируются и всегда сохраняются исходными.
type UpdateEntryRequest struct {
	Name            *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Description     *string  `json:"description,omitempty"`
	Category        *string  `json:"category,omitempty"`
	Amount          *float64 `json:"amount,omitempty" validate:"omitempty,gte=0"`
	Currency        *string  `json:"currency,omitempty"`
	BillingCycle    *string  `json:"billingCycle,omitempty" validate:"omitempty,oneof=monthly yearly weekly quarterly biannual"`
	NextPaymentDate *string  `json:"nextPaymentDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	LastPaymentDate *string  `json:"lastPaymentDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status          *string  `json:"status,omitempty" validate:"omitempty,oneof=active paused cancelled expired"`
	ServiceIcon     *string  `json:"serviceIcon,omitempty"`
	ServiceColor    *string  `json:"serviceColor,omitempty"`
	CancellationURL *string  `json:"cancellationUrl,omitempty" validate:"omitempty,url"`
	AutoDetected    *bool    `json:"autoDetected,omitempty"`
	PausedUntil     *string  `json:"pausedUntil,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// ReorderRequest используется для приёма нового порядка подписок (drag & drop).
type ReorderRequest struct {
	OrderedIDs []int64 `json:"orderedIds" validate:"required"`
}

// DebugLogRequest используется для приёма отладочного лога с клиента.
type DebugLogRequest struct {
	Level   string         `json:"level"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}
