package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/studio-manager-api/internal/usecases/studio"
	"github.com/vfg2006/studio-manager-api/pkg/apiErrors"
)

// ListClients lista todos os clientes na ordem de cadastro
func ListClients(service studio.StudioService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clients := service.ListClients()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(clients); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CreateClient cadastra um novo cliente
func CreateClient(service studio.StudioService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateClient")

		var input studio.CreateClientInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Erro ao decodificar requisição", nil)
			return
		}

		client, err := service.CreateClient(r.Context(), input)
		if err != nil {
			logrus.Error(err)
			writeStudioError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(client); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// UpdateClient substitui o cadastro de um cliente existente
func UpdateClient(service studio.StudioService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseIDParam(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do cliente inválido", nil)
			return
		}

		var input studio.CreateClientInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Erro ao decodificar requisição", nil)
			return
		}

		client, err := service.UpdateClient(r.Context(), id, input)
		if err != nil {
			logrus.Error(err)
			writeStudioError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(client); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
