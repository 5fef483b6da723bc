package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"` // só em VALIDATION: campo -> regra
}

// MessageResponse confirmação de escrita repassada da API externa.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse saída de GET /api/health.
type HealthResponse struct {
	Status   string `json:"status"`             // "ok" enquanto o BFF responde
	Upstream string `json:"upstream"`           // "ok" | "indisponivel"
	Erro     string `json:"erro,omitempty"`     // mensagem da falha do upstream
	Snapshot string `json:"snapshot,omitempty"` // horário da última carga, RFC3339
}

// WriteResponse resultado de uma escrita: mensagem da API e avisos da recarga posterior.
type WriteResponse struct {
	Message string            `json:"message"`
	Falhas  map[string]string `json:"falhas,omitempty"`
}
