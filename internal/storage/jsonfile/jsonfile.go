// Package jsonfile реализует хранилище данных на основе плоских JSON-файлов
// для управления подписками и пользователями. Каждая коллекция — это массив
// объектов в отдельном файле (users.json, subscriptions.json); любая операция
// читает файл целиком, изменяет данные в памяти и перезаписывает файл целиком.
//
// Вся запись идёт под одним мьютексом процесса (единственный писатель),
// сама перезапись выполняется через временный файл и rename, чтобы падение
// посреди записи не оставило коллекцию в повреждённом виде.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/PParksung/smart-subscription-manager/internal/models"
)

// Ошибки уровня хранилища.
var (
	// ErrUserNotFound возвращается, когда пользователь не найден в коллекции.
	ErrUserNotFound = errors.New("user not found")
	// ErrEntryNotFound возвращается, когда подписка не найдена среди подписок пользователя.
	ErrEntryNotFound = errors.New("subscription not found")
)

const (
	usersFile   = "users.json"
	entriesFile = "subscriptions.json"
)

// Storage инкапсулирует каталог с JSON-файлами коллекций
// и реализует методы работы с подписками и пользователями.
type Storage struct {
	mu          sync.Mutex
	usersPath   string
	entriesPath string
}

// New создаёт каталог данных (если его нет) и возвращает хранилище.
func New(dataDir string) (*Storage, error) {
	const op = "storage.New"

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Storage{
		usersPath:   filepath.Join(dataDir, usersFile),
		entriesPath: filepath.Join(dataDir, entriesFile),
	}, nil
}

// readCollection читает массив объектов из файла.
// Отсутствующий файл читается как пустая коллекция.
func readCollection[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// writeCollection перезаписывает файл коллекции целиком.
// Запись атомарна относительно читателей: сначала временный файл, потом rename.
func writeCollection[T any](path string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func (s *Storage) readUsers() ([]models.User, error) {
	return readCollection[models.User](s.usersPath)
}

func (s *Storage) writeUsers(users []models.User) error {
	return writeCollection(s.usersPath, users)
}

func (s *Storage) readEntries() ([]models.Subscription, error) {
	return readCollection[models.Subscription](s.entriesPath)
}

func (s *Storage) writeEntries(entries []models.Subscription) error {
	return writeCollection(s.entriesPath, entries)
}
