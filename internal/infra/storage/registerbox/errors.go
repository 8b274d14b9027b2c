package registerbox

import "errors"

var (
	// ErrBoxNotFound возвращается, когда касса не найдена
	ErrBoxNotFound = errors.New("registerbox.repository: register box not found")

	// ErrLineNotFound возвращается, когда проводка не найдена
	ErrLineNotFound = errors.New("registerbox.repository: register line not found")

	// ErrBoxNotOpen возвращается при попытке закрыть уже закрытую кассу
	ErrBoxNotOpen = errors.New("registerbox.repository: register box is not open")

	// ErrOpenBoxExists возвращается при нарушении частичного уникального
	// индекса "одна открытая касса на оператора"
	ErrOpenBoxExists = errors.New("registerbox.repository: operator already has an open box")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("registerbox.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("registerbox.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("registerbox.repository: failed to scan row")
)
