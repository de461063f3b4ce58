// Package models содержит доменные модели пользователя, подписки и сессии,
// а также структуры для приёма данных из JSON-запросов.
// Структуры используются в бизнес-логике и при работе с файловым хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
// Запись целиком сериализуется в data/users.json.
type User struct {
	ID           int64     `json:"id"`           // Синтетический идентификатор пользователя
	Name         string    `json:"name"`         // Отображаемое имя
	Email        string    `json:"email"`        // Электронная почта (уникальная среди пользователей)
	PasswordHash string    `json:"passwordHash"` // Bcrypt-хэш пароля, никогда не попадает в ответы API
	CreatedAt    time.Time `json:"createdAt"`    // Дата регистрации
	UpdatedAt    time.Time `json:"updatedAt"`    // Дата последнего изменения
}

// PublicUser содержит только те поля пользователя, которые
// возвращаются клиенту в ответах API.
type PublicUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public возвращает представление пользователя без учётных данных.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
