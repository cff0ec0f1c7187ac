package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/studio-manager-api/internal/usecases/studio"
	"github.com/vfg2006/studio-manager-api/pkg/apiErrors"
)

// parseIDParam extrai e converte o parâmetro :id da URL
func parseIDParam(r *http.Request) (int64, bool) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if idStr == "" {
		return 0, false
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, false
	}

	return id, true
}

// writeStudioError converte erros do usecase em respostas padronizadas
func writeStudioError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, studio.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, studio.ErrInvalidValue), errors.Is(err, studio.ErrInvalidDateRange):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, studio.ErrClientNotFound):
		apiErrors.WriteError(w, apiErrors.ErrClientNotFound, "Cliente não encontrado", nil)
	case errors.Is(err, studio.ErrPlannerItemNotFound):
		apiErrors.WriteError(w, apiErrors.ErrPlannerItemNotFound, "Item do planner não encontrado", nil)
	case errors.Is(err, studio.ErrTaskNotFound):
		apiErrors.WriteError(w, apiErrors.ErrTaskNotFound, "Tarefa não encontrada", nil)
	case errors.Is(err, studio.ErrInvoiceNotFound):
		apiErrors.WriteError(w, apiErrors.ErrInvoiceNotFound, "Fatura não encontrada", nil)
	case errors.Is(err, studio.ErrStorageOperation):
		apiErrors.WriteError(w, apiErrors.ErrStorageOperation, "Erro ao gravar o documento", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}
