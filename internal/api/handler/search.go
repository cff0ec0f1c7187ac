package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/studio-manager-api/internal/usecases/searching"
	"github.com/vfg2006/studio-manager-api/pkg/apiErrors"
)

// SearchAll filtra clientes, planner, tarefas e faturas pela consulta
// `q`. Consulta vazia devolve as quatro coleções vazias.
func SearchAll(service searching.Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")

		results := service.Search(query)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(results); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
