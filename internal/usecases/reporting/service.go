package reporting

import (
	"time"

	"github.com/vfg2006/studio-manager-api/internal/domain"
)

// StateProvider fornece um snapshot estável do documento do estúdio
type StateProvider interface {
	Snapshot() *domain.Document
}

// Reporter expõe as visões derivadas para a camada HTTP
type Reporter interface {
	Dashboard() *domain.Dashboard
	ActiveProjectionProgress() *domain.ProjectionProgress
}

type Service struct {
	state StateProvider
	now   func() time.Time
}

func NewService(state StateProvider) *Service {
	return &Service{
		state: state,
		now:   time.Now,
	}
}

// WithClock troca a fonte de tempo (usado em testes)
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Dashboard() *domain.Dashboard {
	return BuildDashboard(s.state.Snapshot(), domain.DateOf(s.now()))
}

func (s *Service) ActiveProjectionProgress() *domain.ProjectionProgress {
	doc := s.state.Snapshot()

	projection := ActiveProjection(doc, domain.DateOf(s.now()))
	if projection == nil {
		return nil
	}

	progress := ProjectionProgress(doc, *projection)
	return &progress
}
