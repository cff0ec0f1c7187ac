package store

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/studio-manager-api/infrastructure/database/postgres"
)

const documentsTable = "documents"

// PostgresStore persiste o documento em uma tabela chave-valor no
// Postgres, um registro por chave com o payload em JSONB.
type PostgresStore struct {
	conn postgres.Conn
	key  string
}

func NewPostgresStore(ctx context.Context, conn postgres.Conn) (*PostgresStore, error) {
	s := &PostgresStore{
		conn: conn,
		key:  DocumentKey,
	}

	if err := s.ensureTable(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *PostgresStore) ensureTable(ctx context.Context) error {
	_, err := s.conn.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS documents (
			key        TEXT PRIMARY KEY,
			payload    JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return errors.Wrap(err, "erro ao preparar a tabela de documentos")
	}

	return nil
}

func (s *PostgresStore) Get(ctx context.Context) ([]byte, error) {
	querySQL, queryArgs, err := squirrel.
		Select("d.payload").
		From(documentsTable + " d").
		Where(squirrel.Eq{"d.key": s.key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := s.conn.QueryRow(ctx, querySQL, queryArgs...)

	var payload []byte
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao buscar o documento")
	}

	return payload, nil
}

func (s *PostgresStore) Set(ctx context.Context, payload []byte) error {
	upsertSQL, upsertArgs, err := squirrel.
		Insert(documentsTable).
		Columns("key", "payload", "updated_at").
		Values(s.key, payload, squirrel.Expr("now()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := s.conn.Exec(ctx, upsertSQL, upsertArgs...); err != nil {
		return errors.Wrap(err, "erro ao gravar o documento")
	}

	return nil
}
