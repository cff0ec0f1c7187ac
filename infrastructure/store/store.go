package store

import "context"

// DocumentKey é a chave fixa sob a qual o documento do estúdio é guardado
const DocumentKey = "studio_dashboard"

// DocumentStore é a porta de armazenamento chave-valor do documento.
// Get devolve (nil, nil) quando a chave ainda não existe; Set sobrescreve
// o payload inteiro. Não há transações nem versionamento.
type DocumentStore interface {
	Get(ctx context.Context) ([]byte, error)
	Set(ctx context.Context, payload []byte) error
}
