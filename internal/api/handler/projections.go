package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/studio-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/studio-manager-api/internal/usecases/studio"
	"github.com/vfg2006/studio-manager-api/pkg/apiErrors"
)

// ListProjections lista as projeções na ordem de criação
func ListProjections(service studio.StudioService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projections := service.ListProjections()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(projections); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CreateProjection cadastra uma nova projeção de receita
func CreateProjection(service studio.StudioService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateProjection")

		var input studio.CreateProjectionInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Erro ao decodificar requisição", nil)
			return
		}

		projection, err := service.CreateProjection(r.Context(), input)
		if err != nil {
			logrus.Error(err)
			writeStudioError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(projection); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetActiveProjection retorna a projeção ativa com seu progresso, ou
// 404 quando nenhuma projeção cobre a data de hoje
func GetActiveProjection(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		progress := reporter.ActiveProjectionProgress()
		if progress == nil {
			apiErrors.WriteError(w, apiErrors.ErrNoActiveProjection, "Nenhuma projeção ativa para a data atual", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(progress); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
