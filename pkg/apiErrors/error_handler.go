package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro padronizados da API
const (
	// Erros de validação (VAL)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de recurso (RES)
	ErrClientNotFound      = "RES_001" // Cliente não encontrado
	ErrPlannerItemNotFound = "RES_002" // Item do planner não encontrado
	ErrTaskNotFound        = "RES_003" // Tarefa não encontrada
	ErrInvoiceNotFound     = "RES_004" // Fatura não encontrada
	ErrNoActiveProjection  = "RES_005" // Nenhuma projeção ativa para a data atual

	// Erros do servidor (SRV)
	ErrInternalServer   = "SRV_001" // Erro interno do servidor
	ErrStorageOperation = "SRV_002" // Erro de operação no armazenamento
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrClientNotFound:      http.StatusNotFound,
	ErrPlannerItemNotFound: http.StatusNotFound,
	ErrTaskNotFound:        http.StatusNotFound,
	ErrInvoiceNotFound:     http.StatusNotFound,
	ErrNoActiveProjection:  http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrStorageOperation:    http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
