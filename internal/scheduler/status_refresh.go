// Package scheduler contém o serviço de agendamento da normalização
// diária de status do documento
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/studio-manager-api/internal/config"
)

// Normalizer é o contrato que o serviço de refresh usa para recalcular
// os status vencidos do documento
type Normalizer interface {
	NormalizeStatuses(ctx context.Context) (int, error)
}

type StatusRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

type StatusRefreshService struct {
	scheduler              *gocron.Scheduler
	normalizer             Normalizer
	config                 StatusRefreshConfig
	refreshRunning         bool
	refreshMutex           sync.Mutex
	lastRefreshStartedAt   time.Time
	lastRefreshCompletedAt time.Time
}

func NewStatusRefreshService(
	normalizer Normalizer,
	cfg *config.Config,
) *StatusRefreshService {
	refreshConfig := StatusRefreshConfig{
		CronSchedule: cfg.StatusRefresh.CronSchedule, // Default: meia-noite todos os dias
		Enabled:      cfg.StatusRefresh.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
	}).Info("Configuração do agendador de normalização de status carregada")

	return &StatusRefreshService{
		scheduler:  scheduler,
		normalizer: normalizer,
		config:     refreshConfig,
	}
}

func (s *StatusRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de normalização de status desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de normalização de status")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RefreshStatuses(ctx); err != nil {
			logrus.WithError(err).Error("Erro na normalização agendada de status")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar a normalização de status: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Parar o cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de normalização de status")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshStatuses roda a normalização imediatamente, garantindo que
// apenas uma execução aconteça por vez
func (s *StatusRefreshService) RefreshStatuses(ctx context.Context) error {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	if s.refreshRunning {
		logrus.Warn("Normalização de status já está em execução")
		return nil
	}

	s.refreshRunning = true
	s.lastRefreshStartedAt = time.Now()
	defer func() {
		s.refreshRunning = false
		s.lastRefreshCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando normalização de status do documento")

	changed, err := s.normalizer.NormalizeStatuses(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao normalizar os status do documento")
		return err
	}

	logrus.WithField("changed", changed).Info("Normalização de status do documento concluída")

	return nil
}

// TriggerManualRefresh dispara uma normalização fora do horário agendado
func (s *StatusRefreshService) TriggerManualRefresh() {
	go func() {
		if err := s.RefreshStatuses(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na normalização manual de status")
		}
	}()
}

// GetStatus retorna o estado atual do agendador para o endpoint de cron
func (s *StatusRefreshService) GetStatus() map[string]any {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	return map[string]any{
		"enabled":           s.config.Enabled,
		"cron_schedule":     s.config.CronSchedule,
		"running":           s.refreshRunning,
		"last_started_at":   formatTime(s.lastRefreshStartedAt),
		"last_completed_at": formatTime(s.lastRefreshCompletedAt),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
