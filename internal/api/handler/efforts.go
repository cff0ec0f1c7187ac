package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/studio-manager-api/internal/usecases/studio"
	"github.com/vfg2006/studio-manager-api/pkg/apiErrors"
)

// ListEfforts lista os registros de esforço, mais recentes primeiro
func ListEfforts(service studio.StudioService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		efforts := service.ListEfforts()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(efforts); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CreateEffortLog registra tempo e produção dedicados a um cliente
func CreateEffortLog(service studio.StudioService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateEffortLog")

		var input studio.CreateEffortLogInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Erro ao decodificar requisição", nil)
			return
		}

		effort, err := service.CreateEffortLog(r.Context(), input)
		if err != nil {
			logrus.Error(err)
			writeStudioError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(effort); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
