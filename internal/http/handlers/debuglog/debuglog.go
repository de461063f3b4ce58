// Package debuglog реализует HTTP-обработчик приёма отладочных логов клиента.
//
// Handler принимает произвольный лог-пэйлоад {level, message, data} и
// печатает его человекочитаемым блоком в вывод сервера. Запрос всегда
// завершается успехом и не несёт состояния.
package debuglog

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/PParksung/smart-subscription-manager/internal/http/response"
	"github.com/PParksung/smart-subscription-manager/internal/lib/sl"
	"github.com/PParksung/smart-subscription-manager/internal/models"
)

const separator = "================================================================================"

// Handler обрабатывает запросы на запись отладочного лога.
type Handler struct {
	log *slog.Logger // Логгер для записи информации и ошибок
	out io.Writer    // Приёмник отладочного блока, в приложении это stdout
}

// New создает новый Handler с переданными логгером и приёмником вывода.
func New(log *slog.Logger, out io.Writer) *Handler {
	return &Handler{
		log: log,
		out: out,
	}
}

// ServeHTTP обрабатывает HTTP-запрос на запись отладочного лога.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.debuglog"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DebugLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	if req.Level == "" {
		req.Level = "INFO"
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05")

	var b strings.Builder
	b.WriteString(separator + "\n")
	fmt.Fprintf(&b, "[%s] [FRONTEND] [%s] %s\n", timestamp, req.Level, req.Message)
	if len(req.Data) > 0 {
		b.WriteString("data:\n")
		keys := make([]string, 0, len(req.Data))
		for k := range req.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "  %s: %v\n", k, req.Data[k])
		}
	}
	b.WriteString(separator + "\n")

	if _, err := io.WriteString(h.out, b.String()); err != nil {
		log.Error("failed to write debug block", sl.Err(err))
	}

	render.JSON(w, r, response.OK("log recorded"))
}
