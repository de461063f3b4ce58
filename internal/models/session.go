package models

import "time"

// Session хранит идентичность вошедшего пользователя на стороне сервера.
// Клиент получает только идентификатор сессии в cookie.
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"userId"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
