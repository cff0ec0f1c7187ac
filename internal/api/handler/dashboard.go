package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/studio-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/studio-manager-api/pkg/apiErrors"
)

// GetDashboard retorna todas as visões derivadas da tela principal:
// conteúdo de hoje e da semana, vencidos, resumo de esforço, progresso
// da projeção ativa, faturas vencidas e total pendente
func GetDashboard(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard := service.Dashboard()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(dashboard); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
