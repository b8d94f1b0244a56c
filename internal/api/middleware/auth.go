package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/aldnch/GolfTeeService/internal/api/handlers"
)

type contextKey string

const (
	memberIDKey  contextKey = "memberID"
	sessionIDKey contextKey = "sessionID"
)

// HeaderMemberID заголовок с ID аутентифицированного участника.
// Аутентификацию выполняет внешний шлюз, сервис доверяет заголовку.
const HeaderMemberID = "X-Member-ID"

// HeaderSessionID заголовок сессии интерфейса. Набор выбранных слотов
// привязан к сессии: новая сессия начинается с пустого набора.
const HeaderSessionID = "X-Session-ID"

// Auth извлекает участника из заголовка и кладет его в контекст.
// Запросы без корректного заголовка отклоняются.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderMemberID)
		if raw == "" {
			handlers.RespondUnauthorized(w, "missing "+HeaderMemberID+" header")
			return
		}

		memberID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || memberID <= 0 {
			handlers.RespondUnauthorized(w, "invalid "+HeaderMemberID+" header")
			return
		}

		ctx := context.WithValue(r.Context(), memberIDKey, memberID)
		if sessionID := r.Header.Get(HeaderSessionID); sessionID != "" {
			ctx = context.WithValue(ctx, sessionIDKey, sessionID)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// MemberIDFrom возвращает ID участника из контекста
func MemberIDFrom(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(memberIDKey).(int64)
	return id, ok
}

// SessionIDFrom возвращает ID сессии из контекста
func SessionIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionIDKey).(string)
	return id, ok
}
