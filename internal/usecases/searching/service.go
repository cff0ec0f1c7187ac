// Package searching implementa a busca textual sobre as coleções do
// documento: substring case-insensitive, sem ranking, preservando a
// ordem de inserção de cada coleção.
package searching

import (
	"strings"

	"github.com/vfg2006/studio-manager-api/internal/domain"
)

// StateProvider fornece um snapshot estável do documento do estúdio
type StateProvider interface {
	Snapshot() *domain.Document
}

// Searcher expõe a busca para a camada HTTP
type Searcher interface {
	Search(query string) domain.SearchResults
}

type Service struct {
	state StateProvider
}

func NewService(state StateProvider) *Service {
	return &Service{
		state: state,
	}
}

func (s *Service) Search(query string) domain.SearchResults {
	return Search(s.state.Snapshot(), query)
}

// Search filtra clientes, itens do planner, tarefas e faturas pela
// consulta. Consulta vazia ou só com espaços devolve resultados vazios
// para as quatro categorias, nunca "tudo".
func Search(doc *domain.Document, query string) domain.SearchResults {
	results := domain.SearchResults{
		Clients:  []domain.Client{},
		Planner:  []domain.PlannerItem{},
		Tasks:    []domain.Task{},
		Invoices: []domain.Invoice{},
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return results
	}

	for _, client := range doc.Clients {
		if matches(q, client.Name, client.Brand, client.Notes) {
			results.Clients = append(results.Clients, client)
		}
	}

	for _, item := range doc.Planner {
		if matches(q, item.Title, item.Caption, doc.ClientName(item.ClientID)) {
			results.Planner = append(results.Planner, item)
		}
	}

	for _, task := range doc.Tasks {
		if matches(q, task.Title, task.Description, task.Assignee) {
			results.Tasks = append(results.Tasks, task)
		}
	}

	for _, invoice := range doc.Invoices {
		if matches(q, doc.ClientName(invoice.ClientID)) {
			results.Invoices = append(results.Invoices, invoice)
		}
	}

	return results
}

func matches(q string, fields ...string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
