// Package studio é o dono do estado da aplicação: mantém o documento
// raiz em memória, aplica as mutações e grava o documento inteiro no
// armazenamento após cada mudança.
package studio

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/studio-manager-api/infrastructure/repository"
	"github.com/vfg2006/studio-manager-api/internal/domain"
	"github.com/vfg2006/studio-manager-api/internal/usecases/normalizing"
	"github.com/vfg2006/studio-manager-api/pkg/utils"
)

// StudioService expõe consultas e mutações sobre o documento do estúdio.
// Não existe operação de exclusão: registros só são criados ou
// atualizados.
type StudioService interface {
	Snapshot() *domain.Document

	ListClients() []domain.Client
	ListPlanner() []domain.PlannerItem
	ListEfforts() []domain.EffortLog
	ListTasks() []domain.Task
	ListInvoices() []domain.Invoice
	ListProjections() []domain.Projection

	CreateClient(ctx context.Context, input CreateClientInput) (*domain.Client, error)
	UpdateClient(ctx context.Context, id int64, input CreateClientInput) (*domain.Client, error)
	CreatePlannerItem(ctx context.Context, input CreatePlannerItemInput) (*domain.PlannerItem, error)
	UpdatePlannerStatus(ctx context.Context, id int64, status domain.PlannerStatus) (*domain.PlannerItem, error)
	CreateEffortLog(ctx context.Context, input CreateEffortLogInput) (*domain.EffortLog, error)
	CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	UpdateTaskStatus(ctx context.Context, id int64, status domain.TaskStatus) (*domain.Task, error)
	CreateInvoice(ctx context.Context, input CreateInvoiceInput) (*domain.Invoice, error)
	MarkInvoicePaid(ctx context.Context, id int64) (*domain.Invoice, error)
	CreateProjection(ctx context.Context, input CreateProjectionInput) (*domain.Projection, error)

	NormalizeStatuses(ctx context.Context) (int, error)
}

// CreateClientInput também serve para a atualização, já que a
// atualização substitui o registro inteiro
type CreateClientInput struct {
	Name      string              `json:"name"`
	Brand     string              `json:"brand"`
	Retainer  float64             `json:"retainer"`
	StartDate domain.Date         `json:"startDate"`
	Status    domain.ClientStatus `json:"status"`
	Notes     string              `json:"notes"`
}

type CreatePlannerItemInput struct {
	ClientID int64                `json:"clientId"`
	Date     domain.Date          `json:"date"`
	Platform string               `json:"platform"`
	Type     string               `json:"type"`
	Title    string               `json:"title"`
	Caption  string               `json:"caption"`
	Status   domain.PlannerStatus `json:"status"`
}

type CreateEffortLogInput struct {
	ClientID int64       `json:"clientId"`
	Date     domain.Date `json:"date"`
	Posts    int         `json:"posts"`
	Reels    int         `json:"reels"`
	Minutes  int         `json:"minutes"`
	Notes    string      `json:"notes"`
}

type CreateTaskInput struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	ClientID    int64               `json:"clientId"`
	Assignee    string              `json:"assignee"`
	Status      domain.TaskStatus   `json:"status"`
	Priority    domain.TaskPriority `json:"priority"`
	DueDate     *domain.Date        `json:"dueDate"`
}

type CreateInvoiceInput struct {
	ClientID int64        `json:"clientId"`
	Month    domain.Month `json:"month"`
	Amount   float64      `json:"amount"`
	DueDate  domain.Date  `json:"dueDate"`
}

type CreateProjectionInput struct {
	StartDate     domain.Date           `json:"startDate"`
	EndDate       domain.Date           `json:"endDate"`
	Type          domain.ProjectionType `json:"type"`
	RevenueTarget float64               `json:"revenueTarget"`
	ClientTarget  int                   `json:"clientTarget"`
	Note          string                `json:"note"`
}

type Service struct {
	repo repository.DocumentRepository
	now  func() time.Time

	mu  sync.Mutex
	doc *domain.Document
}

func NewService(repo repository.DocumentRepository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
		doc:  domain.NewDocument(),
	}
}

// WithClock troca a fonte de tempo (usado em testes)
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Load carrega o documento persistido para a memória. Deve ser chamado
// uma vez na subida da aplicação, antes do servidor aceitar tráfego.
func (s *Service) Load(ctx context.Context) error {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"clients":     len(doc.Clients),
		"planner":     len(doc.Planner),
		"efforts":     len(doc.Efforts),
		"tasks":       len(doc.Tasks),
		"invoices":    len(doc.Invoices),
		"projections": len(doc.Projections),
	}).Info("Documento do estúdio carregado")

	return nil
}

// NormalizeStatuses roda a normalização de status vencidos sobre o
// documento atual e persiste apenas se algo mudou
func (s *Service) NormalizeStatuses(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := domain.DateOf(s.now())

	changed := normalizing.Normalize(s.doc, today)
	if changed == 0 {
		return 0, nil
	}

	if err := s.repo.Save(ctx, s.doc); err != nil {
		return changed, errors.Wrap(err, "erro ao persistir documento normalizado")
	}

	logrus.WithFields(logrus.Fields{
		"changed": changed,
		"today":   today.String(),
	}).Info("Normalização de status concluída")

	return changed, nil
}

// Snapshot devolve uma cópia profunda do documento para as funções de
// agregação e busca
func (s *Service) Snapshot() *domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.doc.Clone()
}

func (s *Service) ListClients() []domain.Client {
	return s.Snapshot().Clients
}

// ListPlanner devolve os itens do planner ordenados por data crescente
func (s *Service) ListPlanner() []domain.PlannerItem {
	items := s.Snapshot().Planner

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})

	return items
}

// ListEfforts devolve os registros de esforço ordenados por data decrescente
func (s *Service) ListEfforts() []domain.EffortLog {
	efforts := s.Snapshot().Efforts

	sort.SliceStable(efforts, func(i, j int) bool {
		return efforts[j].Date.Before(efforts[i].Date)
	})

	return efforts
}

func (s *Service) ListTasks() []domain.Task {
	return s.Snapshot().Tasks
}

// ListInvoices devolve as faturas ordenadas por vencimento crescente
func (s *Service) ListInvoices() []domain.Invoice {
	invoices := s.Snapshot().Invoices

	sort.SliceStable(invoices, func(i, j int) bool {
		return invoices[i].DueDate.Before(invoices[j].DueDate)
	})

	return invoices
}

func (s *Service) ListProjections() []domain.Projection {
	return s.Snapshot().Projections
}

func (s *Service) CreateClient(ctx context.Context, input CreateClientInput) (*domain.Client, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.Wrap(ErrMissingRequiredData, "nome do cliente é obrigatório")
	}

	if input.Retainer < 0 {
		return nil, errors.Wrap(ErrInvalidValue, "retainer não pode ser negativo")
	}

	status := input.Status
	if status == "" {
		status = domain.ClientStatusActive
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	client := domain.Client{
		ID:        s.doc.AllocateID(),
		Name:      input.Name,
		Brand:     input.Brand,
		Retainer:  input.Retainer,
		StartDate: input.StartDate,
		Status:    status,
		Notes:     input.Notes,
	}

	s.doc.Clients = append(s.doc.Clients, client)

	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	return &client, nil
}

// UpdateClient substitui o registro inteiro do cliente, preservando o ID
func (s *Service) UpdateClient(ctx context.Context, id int64, input CreateClientInput) (*domain.Client, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.Wrap(ErrMissingRequiredData, "nome do cliente é obrigatório")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	client := s.doc.ClientByID(id)
	if client == nil {
		return nil, ErrClientNotFound
	}

	client.Name = input.Name
	client.Brand = input.Brand
	client.Retainer = input.Retainer
	client.StartDate = input.StartDate
	client.Notes = input.Notes
	if input.Status != "" {
		client.Status = input.Status
	}

	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	updated := *client
	return &updated, nil
}

func (s *Service) CreatePlannerItem(ctx context.Context, input CreatePlannerItemInput) (*domain.PlannerItem, error) {
	if input.ClientID == 0 || input.Date.IsZero() {
		return nil, errors.Wrap(ErrMissingRequiredData, "cliente e data são obrigatórios")
	}

	status := input.Status
	if status == "" {
		status = domain.PlannerStatusPlanned
	}
	if !validPlannerStatus(status) {
		return nil, errors.Wrapf(ErrInvalidValue, "status de planner desconhecido: %s", status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := domain.PlannerItem{
		ID:       s.doc.AllocateID(),
		ClientID: input.ClientID,
		Date:     input.Date,
		Platform: input.Platform,
		Type:     input.Type,
		Title:    input.Title,
		Caption:  input.Caption,
		Status:   status,
	}

	s.doc.Planner = append(s.doc.Planner, item)

	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	return &item, nil
}

// UpdatePlannerStatus troca apenas o campo status de um item do planner
func (s *Service) UpdatePlannerStatus(ctx context.Context, id int64, status domain.PlannerStatus) (*domain.PlannerItem, error) {
	if !validPlannerStatus(status) {
		return nil, errors.Wrapf(ErrInvalidValue, "status de planner desconhecido: %s", status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Planner {
		if s.doc.Planner[i].ID != id {
			continue
		}

		s.doc.Planner[i].Status = status

		if err := s.persist(ctx); err != nil {
			return nil, err
		}

		item := s.doc.Planner[i]
		return &item, nil
	}

	return nil, ErrPlannerItemNotFound
}

func (s *Service) CreateEffortLog(ctx context.Context, input CreateEffortLogInput) (*domain.EffortLog, error) {
	if input.ClientID == 0 || input.Date.IsZero() {
		return nil, errors.Wrap(ErrMissingRequiredData, "cliente e data são obrigatórios")
	}

	if input.Posts < 0 || input.Reels < 0 || input.Minutes < 0 {
		return nil, errors.Wrap(ErrInvalidValue, "contadores de esforço não podem ser negativos")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	effort := domain.EffortLog{
		ID:       s.doc.AllocateID(),
		ClientID: input.ClientID,
		Date:     input.Date,
		Posts:    input.Posts,
		Reels:    input.Reels,
		Minutes:  input.Minutes,
		Notes:    input.Notes,
	}

	s.doc.Efforts = append(s.doc.Efforts, effort)

	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	return &effort, nil
}

func (s *Service) CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, errors.Wrap(ErrMissingRequiredData, "título da tarefa é obrigatório")
	}

	status := input.Status
	if status == "" {
		status = domain.TaskStatusPending
	}
	if !validTaskStatus(status) {
		return nil, errors.Wrapf(ErrInvalidValue, "status de tarefa desconhecido: %s", status)
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.TaskPriorityMedium
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := domain.Task{
		ID:          s.doc.AllocateID(),
		Title:       input.Title,
		Description: input.Description,
		ClientID:    input.ClientID,
		Assignee:    input.Assignee,
		Status:      status,
		Priority:    priority,
		DueDate:     input.DueDate,
	}

	s.doc.Tasks = append(s.doc.Tasks, task)

	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	return &task, nil
}

// UpdateTaskStatus troca apenas o campo status de uma tarefa
func (s *Service) UpdateTaskStatus(ctx context.Context, id int64, status domain.TaskStatus) (*domain.Task, error) {
	if !validTaskStatus(status) {
		return nil, errors.Wrapf(ErrInvalidValue, "status de tarefa desconhecido: %s", status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Tasks {
		if s.doc.Tasks[i].ID != id {
			continue
		}

		s.doc.Tasks[i].Status = status

		if err := s.persist(ctx); err != nil {
			return nil, err
		}

		task := s.doc.Tasks[i]
		return &task, nil
	}

	return nil, ErrTaskNotFound
}

func (s *Service) CreateInvoice(ctx context.Context, input CreateInvoiceInput) (*domain.Invoice, error) {
	if input.ClientID == 0 || input.Month.IsZero() || input.DueDate.IsZero() {
		return nil, errors.Wrap(ErrMissingRequiredData, "cliente, competência e vencimento são obrigatórios")
	}

	if input.Amount < 0 {
		return nil, errors.Wrap(ErrInvalidValue, "valor da fatura não pode ser negativo")
	}

	reference, err := utils.GenerateReference()
	if err != nil {
		return nil, errors.Wrap(ErrGenerateID, err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	invoice := domain.Invoice{
		ID:        s.doc.AllocateID(),
		Reference: "INV-" + reference,
		ClientID:  input.ClientID,
		Month:     input.Month,
		Amount:    input.Amount,
		DueDate:   input.DueDate,
		Status:    domain.InvoiceStatusPending,
	}

	s.doc.Invoices = append(s.doc.Invoices, invoice)

	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	return &invoice, nil
}

// MarkInvoicePaid marca a fatura como paga e registra a data de pagamento
func (s *Service) MarkInvoicePaid(ctx context.Context, id int64) (*domain.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Invoices {
		if s.doc.Invoices[i].ID != id {
			continue
		}

		paidDate := domain.DateOf(s.now())
		s.doc.Invoices[i].Status = domain.InvoiceStatusPaid
		s.doc.Invoices[i].PaidDate = &paidDate

		if err := s.persist(ctx); err != nil {
			return nil, err
		}

		invoice := s.doc.Invoices[i]
		return &invoice, nil
	}

	return nil, ErrInvoiceNotFound
}

func (s *Service) CreateProjection(ctx context.Context, input CreateProjectionInput) (*domain.Projection, error) {
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return nil, errors.Wrap(ErrMissingRequiredData, "datas de início e fim são obrigatórias")
	}

	if input.EndDate.Before(input.StartDate) {
		return nil, ErrInvalidDateRange
	}

	if input.RevenueTarget < 0 || input.ClientTarget < 0 {
		return nil, errors.Wrap(ErrInvalidValue, "metas não podem ser negativas")
	}

	projectionType := input.Type
	if projectionType == "" {
		projectionType = domain.ProjectionTypeMonthly
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	projection := domain.Projection{
		ID:            s.doc.AllocateID(),
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		Type:          projectionType,
		RevenueTarget: input.RevenueTarget,
		ClientTarget:  input.ClientTarget,
		Note:          input.Note,
	}

	s.doc.Projections = append(s.doc.Projections, projection)

	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	return &projection, nil
}

// persist grava o documento inteiro. Chamado com o mutex já adquirido.
func (s *Service) persist(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.doc); err != nil {
		logrus.WithError(err).Error("Erro ao persistir o documento do estúdio")
		return errors.Wrap(ErrStorageOperation, err.Error())
	}

	return nil
}

func validPlannerStatus(status domain.PlannerStatus) bool {
	switch status {
	case domain.PlannerStatusPlanned, domain.PlannerStatusDone,
		domain.PlannerStatusOverdue, domain.PlannerStatusSkipped:
		return true
	}
	return false
}

func validTaskStatus(status domain.TaskStatus) bool {
	switch status {
	case domain.TaskStatusPending, domain.TaskStatusInProgress,
		domain.TaskStatusCompleted, domain.TaskStatusOverdue:
		return true
	}
	return false
}
