package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound          = errors.New("recurso não encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrServerUnavailable = errors.New("servidor não está respondendo")
	ErrUnknownPeriod     = errors.New("período desconhecido")
)

// APIError erro reportado pela API externa (resposta não-2xx com corpo {"error": "..."}).
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (HTTP %d)", e.Message, e.Status)
}

// Is permite errors.Is(err, ErrNotFound) para respostas 404.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.Status == 404
}

// ValidationError campos obrigatórios ausentes ou inválidos, detectados antes de qualquer requisição.
type ValidationError struct {
	Fields map[string]string // campo JSON -> regra violada
}

// NewValidationError constrói o erro com um único campo.
func NewValidationError(field, rule string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: rule}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "entrada inválida: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }
