package studio

import "errors"

// Erros específicos para o contexto do estúdio
var (
	// Erros de validação
	ErrMissingRequiredData = errors.New("missing required data")
	ErrInvalidValue        = errors.New("invalid value")
	ErrInvalidDateRange    = errors.New("start date must not be after end date")

	// Erros de consulta
	ErrClientNotFound      = errors.New("client not found")
	ErrPlannerItemNotFound = errors.New("planner item not found")
	ErrTaskNotFound        = errors.New("task not found")
	ErrInvoiceNotFound     = errors.New("invoice not found")

	// Erros de persistência
	ErrStorageOperation = errors.New("storage operation error")
	ErrGenerateID       = errors.New("error generating reference")
)
