package repository

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/studio-manager-api/infrastructure/store/mocks"
	"github.com/vfg2006/studio-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestLoad_MissingKeyReturnsEmptyDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockDocumentStore(ctrl)
	st.EXPECT().Get(gomock.Any()).Return(nil, nil)

	repo := NewDocumentRepository(st)

	doc, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(1), doc.NextID)
	assert.Empty(t, doc.Clients)
	assert.Empty(t, doc.Planner)
}

func TestLoad_MalformedPayloadDegradesToEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockDocumentStore(ctrl)
	st.EXPECT().Get(gomock.Any()).Return([]byte("{nao é json"), nil)

	repo := NewDocumentRepository(st)

	doc, err := repo.Load(context.Background())

	// Payload malformado nunca vira erro para o chamador
	require.NoError(t, err)
	assert.Equal(t, int64(1), doc.NextID)
	assert.Empty(t, doc.Invoices)
}

func TestLoad_StoreErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockDocumentStore(ctrl)
	st.EXPECT().Get(gomock.Any()).Return(nil, errors.New("conexão recusada"))

	repo := NewDocumentRepository(st)

	doc, err := repo.Load(context.Background())

	assert.Nil(t, doc)
	assert.Error(t, err)
}

func TestLoad_NextIDNeverBelowOne(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockDocumentStore(ctrl)
	st.EXPECT().Get(gomock.Any()).Return([]byte(`{"schemaVersion":1,"nextId":0}`), nil)

	repo := NewDocumentRepository(st)

	doc, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(1), doc.NextID)
}

func TestSaveThenLoadRoundtrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockDocumentStore(ctrl)

	var saved []byte
	st.EXPECT().Set(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, payload []byte) error {
			saved = payload
			return nil
		})
	st.EXPECT().Get(gomock.Any()).DoAndReturn(
		func(_ context.Context) ([]byte, error) {
			return saved, nil
		})

	repo := NewDocumentRepository(st)

	doc := domain.NewDocument()
	doc.NextID = 5
	doc.Clients = append(doc.Clients, domain.Client{
		ID:        1,
		Name:      "Acme Corp",
		StartDate: domain.NewDate(2024, time.January, 2),
		Status:    domain.ClientStatusActive,
	})

	require.NoError(t, repo.Save(context.Background(), doc))

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)

	// Save carimba a versão do schema antes de serializar
	assert.Equal(t, domain.SchemaVersion, loaded.SchemaVersion)
	assert.Equal(t, int64(5), loaded.NextID)
	require.Len(t, loaded.Clients, 1)
	assert.Equal(t, "Acme Corp", loaded.Clients[0].Name)
	assert.Equal(t, "2024-01-02", loaded.Clients[0].StartDate.String())
}

func TestSave_StoreErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockDocumentStore(ctrl)
	st.EXPECT().Set(gomock.Any(), gomock.Any()).Return(errors.New("disco cheio"))

	repo := NewDocumentRepository(st)

	err := repo.Save(context.Background(), domain.NewDocument())

	assert.Error(t, err)
}
