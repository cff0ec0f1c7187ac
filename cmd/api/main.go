package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/studio-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/studio-manager-api/infrastructure/repository"
	"github.com/vfg2006/studio-manager-api/infrastructure/store"
	"github.com/vfg2006/studio-manager-api/internal/api"
	"github.com/vfg2006/studio-manager-api/internal/config"
	"github.com/vfg2006/studio-manager-api/internal/scheduler"
	"github.com/vfg2006/studio-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/studio-manager-api/internal/usecases/searching"
	"github.com/vfg2006/studio-manager-api/internal/usecases/studio"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	docStore := newDocumentStore(ctx, cfg)

	docRepo := repository.NewDocumentRepository(docStore)

	studioService := studio.NewService(docRepo)
	if err := studioService.Load(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o documento do estúdio")
	}

	// Normalização de status roda uma vez na subida, antes de qualquer visão
	changed, err := studioService.NormalizeStatuses(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro na normalização inicial de status")
	} else if changed > 0 {
		logrus.WithField("changed", changed).Info("Status vencidos atualizados na subida")
	}

	reporter := reporting.NewService(studioService)
	searcher := searching.NewService(studioService)

	statusRefreshService := scheduler.NewStatusRefreshService(studioService, cfg)
	if err := statusRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de normalização de status")
	} else {
		logrus.Info("Agendador de normalização de status iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		studioService,
		reporter,
		searcher,
		statusRefreshService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// newDocumentStore escolhe o armazenamento do documento conforme a configuração
func newDocumentStore(ctx context.Context, cfg *config.Config) store.DocumentStore {
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		conn := pgconn(ctx, cfg.Database)

		pgStore, err := store.NewPostgresStore(ctx, conn)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao preparar o armazenamento no PostgreSQL")
		}

		logrus.Info("Documento será persistido no PostgreSQL")
		return pgStore

	default:
		logrus.WithField("path", cfg.Storage.Path).Info("Documento será persistido em arquivo")
		return store.NewFileStore(cfg.Storage.Path)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
