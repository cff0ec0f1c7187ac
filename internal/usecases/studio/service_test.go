package studio

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/studio-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/studio-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var testClock = func() time.Time {
	return time.Date(2024, time.January, 16, 10, 0, 0, 0, time.UTC)
}

func newTestService(t *testing.T) (*Service, *mocks.MockDocumentRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDocumentRepository(ctrl)

	service := NewService(repo).WithClock(testClock)

	return service, repo
}

func TestCreateClient(t *testing.T) {
	service, repo := newTestService(t)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	client, err := service.CreateClient(context.Background(), CreateClientInput{
		Name:     "Acme Corp",
		Brand:    "acme.social",
		Retainer: 2500,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), client.ID)
	assert.Equal(t, "Acme Corp", client.Name)
	// Status ausente assume o padrão ativo
	assert.Equal(t, domain.ClientStatusActive, client.Status)
}

func TestCreateClient_ValidationDoesNotPersist(t *testing.T) {
	// Nenhuma expectativa de Save: validação falha antes de tocar o documento
	service, _ := newTestService(t)

	tests := []struct {
		name    string
		input   CreateClientInput
		wantErr error
	}{
		{
			name:    "nome vazio",
			input:   CreateClientInput{Name: "   "},
			wantErr: ErrMissingRequiredData,
		},
		{
			name:    "retainer negativo",
			input:   CreateClientInput{Name: "Acme", Retainer: -10},
			wantErr: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := service.CreateClient(context.Background(), tt.input)

			assert.Nil(t, client)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Empty(t, service.ListClients())
}

func TestUpdateClient(t *testing.T) {
	service, repo := newTestService(t)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	created, err := service.CreateClient(context.Background(), CreateClientInput{Name: "Acme"})
	require.NoError(t, err)

	updated, err := service.UpdateClient(context.Background(), created.ID, CreateClientInput{
		Name:   "Acme Corp",
		Status: domain.ClientStatusPaused,
	})

	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Acme Corp", updated.Name)
	assert.Equal(t, domain.ClientStatusPaused, updated.Status)
}

func TestUpdateClient_NotFound(t *testing.T) {
	service, _ := newTestService(t)

	updated, err := service.UpdateClient(context.Background(), 99, CreateClientInput{Name: "Acme"})

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestAllocateID_MonotonicAcrossCollections(t *testing.T) {
	// A sequência é única para o documento inteiro, não por coleção
	service, repo := newTestService(t)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	client, err := service.CreateClient(context.Background(), CreateClientInput{Name: "Acme"})
	require.NoError(t, err)

	item, err := service.CreatePlannerItem(context.Background(), CreatePlannerItemInput{
		ClientID: client.ID,
		Date:     domain.NewDate(2024, time.January, 20),
	})
	require.NoError(t, err)

	task, err := service.CreateTask(context.Background(), CreateTaskInput{Title: "Aprovar artes"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), client.ID)
	assert.Equal(t, int64(2), item.ID)
	assert.Equal(t, int64(3), task.ID)
}

func TestCreatePlannerItem_Defaults(t *testing.T) {
	service, repo := newTestService(t)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	item, err := service.CreatePlannerItem(context.Background(), CreatePlannerItemInput{
		ClientID: 1,
		Date:     domain.NewDate(2024, time.January, 20),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.PlannerStatusPlanned, item.Status)
}

func TestCreatePlannerItem_InvalidStatus(t *testing.T) {
	service, _ := newTestService(t)

	item, err := service.CreatePlannerItem(context.Background(), CreatePlannerItemInput{
		ClientID: 1,
		Date:     domain.NewDate(2024, time.January, 20),
		Status:   "archived",
	})

	assert.Nil(t, item)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestUpdatePlannerStatus(t *testing.T) {
	service, repo := newTestService(t)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	item, err := service.CreatePlannerItem(context.Background(), CreatePlannerItemInput{
		ClientID: 1,
		Date:     domain.NewDate(2024, time.January, 20),
	})
	require.NoError(t, err)

	updated, err := service.UpdatePlannerStatus(context.Background(), item.ID, domain.PlannerStatusDone)

	require.NoError(t, err)
	assert.Equal(t, domain.PlannerStatusDone, updated.Status)

	_, err = service.UpdatePlannerStatus(context.Background(), 99, domain.PlannerStatusDone)
	assert.ErrorIs(t, err, ErrPlannerItemNotFound)
}

func TestCreateEffortLog_RejectsNegativeCounters(t *testing.T) {
	service, _ := newTestService(t)

	effort, err := service.CreateEffortLog(context.Background(), CreateEffortLogInput{
		ClientID: 1,
		Date:     domain.NewDate(2024, time.January, 15),
		Minutes:  -30,
	})

	assert.Nil(t, effort)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestCreateTask_Defaults(t *testing.T) {
	service, repo := newTestService(t)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	task, err := service.CreateTask(context.Background(), CreateTaskInput{Title: "Fechar relatório"})

	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusPending, task.Status)
	assert.Equal(t, domain.TaskPriorityMedium, task.Priority)
	assert.Nil(t, task.DueDate)
}

func TestUpdateTaskStatus(t *testing.T) {
	service, repo := newTestService(t)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	task, err := service.CreateTask(context.Background(), CreateTaskInput{Title: "Fechar relatório"})
	require.NoError(t, err)

	updated, err := service.UpdateTaskStatus(context.Background(), task.ID, domain.TaskStatusCompleted)

	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusCompleted, updated.Status)

	_, err = service.UpdateTaskStatus(context.Background(), task.ID, "cancelled")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestCreateInvoice(t *testing.T) {
	service, repo := newTestService(t)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	month, err := domain.ParseMonth("2024-01")
	require.NoError(t, err)

	invoice, err := service.CreateInvoice(context.Background(), CreateInvoiceInput{
		ClientID: 1,
		Month:    month,
		Amount:   1500,
		DueDate:  domain.NewDate(2024, time.January, 31),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusPending, invoice.Status)
	// Referência legível no formato INV-XXXXXX
	assert.Len(t, invoice.Reference, 10)
	assert.Equal(t, "INV-", invoice.Reference[:4])
	assert.Nil(t, invoice.PaidDate)
}

func TestMarkInvoicePaid(t *testing.T) {
	service, repo := newTestService(t)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	month, err := domain.ParseMonth("2024-01")
	require.NoError(t, err)

	invoice, err := service.CreateInvoice(context.Background(), CreateInvoiceInput{
		ClientID: 1,
		Month:    month,
		Amount:   1500,
		DueDate:  domain.NewDate(2024, time.January, 31),
	})
	require.NoError(t, err)

	paid, err := service.MarkInvoicePaid(context.Background(), invoice.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusPaid, paid.Status)
	require.NotNil(t, paid.PaidDate)
	// Data de pagamento vem do relógio do serviço
	assert.Equal(t, "2024-01-16", paid.PaidDate.String())

	_, err = service.MarkInvoicePaid(context.Background(), 99)
	assert.ErrorIs(t, err, ErrInvoiceNotFound)
}

func TestCreateProjection_InvalidRange(t *testing.T) {
	service, _ := newTestService(t)

	projection, err := service.CreateProjection(context.Background(), CreateProjectionInput{
		StartDate: domain.NewDate(2024, time.February, 1),
		EndDate:   domain.NewDate(2024, time.January, 1),
	})

	assert.Nil(t, projection)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestListOrderings(t *testing.T) {
	service, repo := newTestService(t)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	_, err := service.CreatePlannerItem(context.Background(), CreatePlannerItemInput{
		ClientID: 1, Date: domain.NewDate(2024, time.January, 20),
	})
	require.NoError(t, err)
	_, err = service.CreatePlannerItem(context.Background(), CreatePlannerItemInput{
		ClientID: 1, Date: domain.NewDate(2024, time.January, 10),
	})
	require.NoError(t, err)

	_, err = service.CreateEffortLog(context.Background(), CreateEffortLogInput{
		ClientID: 1, Date: domain.NewDate(2024, time.January, 5), Minutes: 30,
	})
	require.NoError(t, err)
	_, err = service.CreateEffortLog(context.Background(), CreateEffortLogInput{
		ClientID: 1, Date: domain.NewDate(2024, time.January, 12), Minutes: 45,
	})
	require.NoError(t, err)

	planner := service.ListPlanner()
	require.Len(t, planner, 2)
	assert.Equal(t, "2024-01-10", planner[0].Date.String())
	assert.Equal(t, "2024-01-20", planner[1].Date.String())

	efforts := service.ListEfforts()
	require.Len(t, efforts, 2)
	assert.Equal(t, "2024-01-12", efforts[0].Date.String())
	assert.Equal(t, "2024-01-05", efforts[1].Date.String())
}

func TestNormalizeStatuses(t *testing.T) {
	service, repo := newTestService(t)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	// Item vencido: data anterior ao relógio do serviço
	_, err := service.CreatePlannerItem(context.Background(), CreatePlannerItemInput{
		ClientID: 1, Date: domain.NewDate(2024, time.January, 10),
	})
	require.NoError(t, err)

	changed, err := service.NormalizeStatuses(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, changed)

	planner := service.ListPlanner()
	require.Len(t, planner, 1)
	assert.Equal(t, domain.PlannerStatusOverdue, planner[0].Status)
}

func TestNormalizeStatuses_NoChangesSkipsSave(t *testing.T) {
	// Nenhuma expectativa de Save: sem mudanças não há persistência
	service, _ := newTestService(t)

	changed, err := service.NormalizeStatuses(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, changed)
}

func TestPersistFailureSurfacesStorageError(t *testing.T) {
	service, repo := newTestService(t)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disco cheio"))

	client, err := service.CreateClient(context.Background(), CreateClientInput{Name: "Acme"})

	assert.Nil(t, client)
	assert.ErrorIs(t, err, ErrStorageOperation)
}

func TestSnapshotIsIsolated(t *testing.T) {
	service, repo := newTestService(t)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	_, err := service.CreateClient(context.Background(), CreateClientInput{Name: "Acme"})
	require.NoError(t, err)

	snapshot := service.Snapshot()
	snapshot.Clients[0].Name = "Mutado"

	clients := service.ListClients()
	require.Len(t, clients, 1)
	assert.Equal(t, "Acme", clients[0].Name)
}
