package repository

import (
	"context"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/studio-manager-api/infrastructure/store"
	"github.com/vfg2006/studio-manager-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DocumentRepository carrega e grava o documento raiz do estúdio
type DocumentRepository interface {
	Load(ctx context.Context) (*domain.Document, error)
	Save(ctx context.Context, doc *domain.Document) error
}

type documentRepository struct {
	store store.DocumentStore
}

func NewDocumentRepository(st store.DocumentStore) DocumentRepository {
	return &documentRepository{
		store: st,
	}
}

// Load lê o documento do armazenamento. Chave ausente ou payload
// malformado degradam para o documento vazio padrão; um payload
// malformado é registrado mas nunca vira erro para o chamador.
func (r *documentRepository) Load(ctx context.Context) (*domain.Document, error) {
	payload, err := r.store.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o documento do armazenamento")
	}

	if payload == nil {
		logrus.Info("Documento ainda não existe, iniciando com o documento vazio")
		return domain.NewDocument(), nil
	}

	doc := domain.NewDocument()
	if err := json.Unmarshal(payload, doc); err != nil {
		logrus.WithError(err).Warn("Documento persistido malformado, iniciando com o documento vazio")
		return domain.NewDocument(), nil
	}

	if doc.NextID <= 0 {
		doc.NextID = 1
	}

	return doc, nil
}

// Save serializa e sobrescreve o documento inteiro no armazenamento
func (r *documentRepository) Save(ctx context.Context, doc *domain.Document) error {
	doc.SchemaVersion = domain.SchemaVersion

	payload, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar o documento")
	}

	if err := r.store.Set(ctx, payload); err != nil {
		return errors.Wrap(err, "erro ao gravar o documento no armazenamento")
	}

	return nil
}
