package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/studio-manager-api/internal/domain"
	"github.com/vfg2006/studio-manager-api/internal/usecases/studio"
	"github.com/vfg2006/studio-manager-api/pkg/apiErrors"
)

// ListPlanner lista o conteúdo agendado ordenado por data crescente
func ListPlanner(service studio.StudioService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := service.ListPlanner()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(items); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CreatePlannerItem agenda um novo conteúdo para um cliente
func CreatePlannerItem(service studio.StudioService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreatePlannerItem")

		var input studio.CreatePlannerItemInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Erro ao decodificar requisição", nil)
			return
		}

		item, err := service.CreatePlannerItem(r.Context(), input)
		if err != nil {
			logrus.Error(err)
			writeStudioError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(item); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdatePlannerStatus troca o status de um item do planner
func UpdatePlannerStatus(service studio.StudioService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseIDParam(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do item inválido", nil)
			return
		}

		var req updateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Erro ao decodificar requisição", nil)
			return
		}

		if req.Status == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Status não informado", nil)
			return
		}

		item, err := service.UpdatePlannerStatus(r.Context(), id, domain.PlannerStatus(req.Status))
		if err != nil {
			logrus.Error(err)
			writeStudioError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(item); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
