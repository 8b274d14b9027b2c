// Package auth описывает идентичность оператора, разрешённую внешним
// identity-провайдером и передаваемую в заголовках запроса.
package auth

import "github.com/m04kA/SMC-ParkingService/internal/domain"

// Identity идентичность оператора для текущего запроса.
// Передается явным параметром во все сервисы и usecase,
// ничего не читается из глобального состояния.
type Identity struct {
	UserID    int64
	UserName  string
	Role      string
	CompanyID int64 // двор (pátio), к которому привязан оператор
}

// CanSeeAllBoxes менеджер видит только свои кассы; админ и суперпользователь -
// все кассы в рамках двора.
func (i Identity) CanSeeAllBoxes() bool {
	return i.Role == domain.RoleAdmin || i.Role == domain.RoleSuperuser
}
