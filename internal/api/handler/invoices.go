package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/studio-manager-api/internal/usecases/studio"
	"github.com/vfg2006/studio-manager-api/pkg/apiErrors"
)

// ListInvoices lista as faturas ordenadas por vencimento crescente
func ListInvoices(service studio.StudioService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		invoices := service.ListInvoices()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(invoices); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CreateInvoice cadastra uma nova fatura para um cliente
func CreateInvoice(service studio.StudioService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateInvoice")

		var input studio.CreateInvoiceInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Erro ao decodificar requisição", nil)
			return
		}

		invoice, err := service.CreateInvoice(r.Context(), input)
		if err != nil {
			logrus.Error(err)
			writeStudioError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(invoice); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// PayInvoice marca uma fatura como paga com a data de hoje
func PayInvoice(service studio.StudioService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseIDParam(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da fatura inválido", nil)
			return
		}

		invoice, err := service.MarkInvoicePaid(r.Context(), id)
		if err != nil {
			logrus.Error(err)
			writeStudioError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(invoice); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
