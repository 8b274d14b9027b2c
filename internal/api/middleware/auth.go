// Package middleware HTTP middleware: идентичность оператора и метрики.
package middleware

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/auth"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Заголовки идентичности, проставляемые внешним identity-провайдером
const (
	HeaderUserID    = "X-User-ID"
	HeaderUserName  = "X-User-Name"
	HeaderUserRole  = "X-User-Role"
	HeaderCompanyID = "X-Company-ID"
)

// Auth разбирает заголовки идентичности и кладет auth.Identity в контекст.
// Запросы без валидных X-User-ID и X-Company-ID отклоняются.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(r.Header.Get(HeaderUserID), 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "missing or invalid X-User-ID header")
			return
		}

		companyID, err := strconv.ParseInt(r.Header.Get(HeaderCompanyID), 10, 64)
		if err != nil || companyID <= 0 {
			handlers.RespondUnauthorized(w, "missing or invalid X-Company-ID header")
			return
		}

		role := r.Header.Get(HeaderUserRole)
		switch role {
		case domain.RoleManager, domain.RoleAdmin, domain.RoleSuperuser:
		case "":
			role = domain.RoleManager
		default:
			handlers.RespondUnauthorized(w, "unknown X-User-Role header")
			return
		}

		identity := &auth.Identity{
			UserID:    userID,
			UserName:  r.Header.Get(HeaderUserName),
			Role:      role,
			CompanyID: companyID,
		}

		next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
	})
}
