package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/SMC-CateringService/internal/api/handlers"
)

const adminTokenHeader = "X-Admin-Token"

// AdminAuth middleware операторских маршрутов: сверяет X-Admin-Token с
// токеном из конфигурации. Пустой настроенный токен закрывает доступ совсем.
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(adminTokenHeader)

			if token == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				handlers.RespondForbidden(w, "доступ запрещён")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
