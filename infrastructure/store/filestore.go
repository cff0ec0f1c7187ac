package store

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// FileStore persiste o documento em um único arquivo JSON no disco.
// É a opção padrão para uso local, espelhando o armazenamento
// chave-valor original de um único usuário.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Get(_ context.Context) ([]byte, error) {
	payload, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			// Chave ausente: primeiro acesso
			return nil, nil
		}
		return nil, errors.Wrapf(err, "erro ao ler o documento de %s", f.path)
	}

	return payload, nil
}

func (f *FileStore) Set(_ context.Context, payload []byte) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "erro ao criar o diretório %s", dir)
	}

	// Escrita em arquivo temporário + rename para não corromper o
	// documento se o processo morrer no meio da escrita
	tmp, err := os.CreateTemp(dir, ".studio-*.json")
	if err != nil {
		return errors.Wrap(err, "erro ao criar arquivo temporário")
	}

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrap(err, "erro ao escrever o documento")
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "erro ao fechar arquivo temporário")
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrapf(err, "erro ao gravar o documento em %s", f.path)
	}

	return nil
}
