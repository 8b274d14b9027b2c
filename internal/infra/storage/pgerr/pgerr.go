// Package pgerr классификация ошибок драйвера PostgreSQL
package pgerr

import (
	"errors"

	"github.com/lib/pq"
)

const (
	uniqueViolation = "23505"
	checkViolation  = "23514"
)

// IsUniqueViolation проверяет нарушение уникального индекса.
// Частичные уникальные индексы закрепляют инварианты "одна открытая касса
// на оператора" и "одно активное правило тарификации на двор".
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	return false
}

// IsCheckViolation проверяет нарушение CHECK-ограничения
func IsCheckViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == checkViolation
	}
	return false
}
