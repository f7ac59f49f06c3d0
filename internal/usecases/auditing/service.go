package auditing

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/growth-insights-api/infrastructure/repository"
	"github.com/vfg2006/growth-insights-api/internal/domain"
	"github.com/vfg2006/growth-insights-api/internal/usecases"
)

type AuditService interface {
	CreateAudit(ctx context.Context, audit *domain.SiteAudit) (*domain.SiteAudit, error)
	GetAudit(ctx context.Context, id uint) (*domain.SiteAudit, error)
	ListAudits(ctx context.Context, siteID uint, filter domain.ListFilter) ([]*domain.SiteAudit, error)
	UpdateAuditStatus(ctx context.Context, id uint, request *domain.UpdateAuditStatusRequest) (*domain.SiteAudit, error)
	DeleteAudit(ctx context.Context, id uint) error

	AddPageInsight(ctx context.Context, page *domain.PageInsight) (*domain.PageInsight, error)
	ListPageInsights(ctx context.Context, auditID uint, filter domain.ListFilter) ([]*domain.PageInsight, error)
	DeletePageInsight(ctx context.Context, id uint) error

	RecordEvent(ctx context.Context, event *domain.InsightEvent) (*domain.InsightEvent, error)
	ListEvents(ctx context.Context, siteID uint, filter domain.InsightEventFilter) ([]*domain.InsightEvent, error)
	DeleteEvent(ctx context.Context, id uint) error

	CreateAIInsight(ctx context.Context, insight *domain.AIInsight) (*domain.AIInsight, error)
	GetAIInsight(ctx context.Context, id uint) (*domain.AIInsight, error)
	ListAIInsights(ctx context.Context, entityID uint, filter domain.AIInsightFilter) ([]*domain.AIInsight, error)
	DeleteAIInsight(ctx context.Context, id uint) error
}

type Service struct {
	siteRepository         repository.SiteRepository
	auditRepository        repository.SiteAuditRepository
	pageInsightRepository  repository.PageInsightRepository
	insightEventRepository repository.InsightEventRepository
	aiInsightRepository    repository.AIInsightRepository
	now                    func() time.Time
}

func NewService(
	siteRepository repository.SiteRepository,
	auditRepository repository.SiteAuditRepository,
	pageInsightRepository repository.PageInsightRepository,
	insightEventRepository repository.InsightEventRepository,
	aiInsightRepository repository.AIInsightRepository,
) AuditService {
	return &Service{
		siteRepository:         siteRepository,
		auditRepository:        auditRepository,
		pageInsightRepository:  pageInsightRepository,
		insightEventRepository: insightEventRepository,
		aiInsightRepository:    aiInsightRepository,
		now:                    time.Now,
	}
}

func (s *Service) requireSite(ctx context.Context, siteID uint) error {
	site, err := s.siteRepository.GetByID(ctx, siteID)
	if err != nil {
		return usecases.FromRepository(err, "Falha ao buscar site")
	}
	if site == nil || !domain.CanAccessEntity(ctx, site.EntityID) {
		return usecases.NotFound(ErrSiteNotFound.Error())
	}
	return nil
}

func scoped(ctx context.Context) bool {
	_, ok := domain.EntityScope(ctx)
	return ok
}

// CreateAudit abre uma auditoria; novas auditorias sempre começam pendentes
func (s *Service) CreateAudit(ctx context.Context, audit *domain.SiteAudit) (*domain.SiteAudit, error) {
	if err := s.requireSite(ctx, audit.SiteID); err != nil {
		return nil, err
	}

	audit.Status = domain.AuditStatusPending
	audit.StartedAt = nil
	audit.CompletedAt = nil

	if err := s.auditRepository.Create(ctx, audit); err != nil {
		return nil, usecases.FromRepository(err, "Falha ao salvar auditoria")
	}
	return audit, nil
}

func (s *Service) GetAudit(ctx context.Context, id uint) (*domain.SiteAudit, error) {
	audit, err := s.auditRepository.GetByID(ctx, id)
	if err != nil {
		return nil, usecases.FromRepository(err, "Falha ao buscar auditoria")
	}
	if audit == nil {
		return nil, usecases.NotFound(ErrAuditNotFound.Error())
	}
	if scoped(ctx) && s.requireSite(ctx, audit.SiteID) != nil {
		return nil, usecases.NotFound(ErrAuditNotFound.Error())
	}
	return audit, nil
}

func (s *Service) ListAudits(ctx context.Context, siteID uint, filter domain.ListFilter) ([]*domain.SiteAudit, error) {
	if scoped(ctx) {
		if err := s.requireSite(ctx, siteID); err != nil {
			return nil, err
		}
	}

	audits, err := s.auditRepository.ListBySite(ctx, siteID, filter)
	if err != nil {
		return nil, usecases.FromRepository(err, "Falha ao listar auditorias")
	}
	return audits, nil
}

// UpdateAuditStatus move a auditoria pelo ciclo pending → running → completed|failed
func (s *Service) UpdateAuditStatus(ctx context.Context, id uint, request *domain.UpdateAuditStatusRequest) (*domain.SiteAudit, error) {
	audit, err := s.GetAudit(ctx, id)
	if err != nil {
		return nil, err
	}

	if !request.Status.IsValid() {
		return nil, usecases.FromRepository(
			domain.NewValidationError("status", "status inválido %q", request.Status), "")
	}
	if !audit.Status.CanTransitionTo(request.Status) {
		return nil, usecases.FromRepository(domain.ErrInvalidTransition,
			fmt.Sprintf("Não é possível mudar a auditoria de %s para %s", audit.Status, request.Status))
	}

	now := s.now()
	switch request.Status {
	case domain.AuditStatusRunning:
		audit.StartedAt = &now
	case domain.AuditStatusCompleted, domain.AuditStatusFailed:
		if audit.StartedAt == nil {
			audit.StartedAt = &now
		}
		audit.CompletedAt = &now
	}

	audit.Status = request.Status
	if request.Score != nil {
		audit.Score = request.Score
	}
	if request.IssuesCount != nil {
		audit.IssuesCount = *request.IssuesCount
	}
	if request.Summary != nil {
		audit.Summary = request.Summary
	}

	if err := s.auditRepository.Update(ctx, audit); err != nil {
		return nil, usecases.FromRepository(err, ErrAuditNotFound.Error())
	}
	return audit, nil
}

func (s *Service) DeleteAudit(ctx context.Context, id uint) error {
	if scoped(ctx) {
		if _, err := s.GetAudit(ctx, id); err != nil {
			return err
		}
	}

	if err := s.auditRepository.Delete(ctx, id); err != nil {
		return usecases.FromRepository(err, ErrAuditNotFound.Error())
	}
	return nil
}

// AddPageInsight herda o site da auditoria, que precisa existir
func (s *Service) AddPageInsight(ctx context.Context, page *domain.PageInsight) (*domain.PageInsight, error) {
	audit, err := s.GetAudit(ctx, page.AuditID)
	if err != nil {
		return nil, err
	}
	page.SiteID = audit.SiteID

	if err := s.pageInsightRepository.Create(ctx, page); err != nil {
		return nil, usecases.FromRepository(err, "Falha ao salvar página auditada")
	}
	return page, nil
}

func (s *Service) ListPageInsights(ctx context.Context, auditID uint, filter domain.ListFilter) ([]*domain.PageInsight, error) {
	if scoped(ctx) {
		if _, err := s.GetAudit(ctx, auditID); err != nil {
			return nil, err
		}
	}

	pages, err := s.pageInsightRepository.ListByAudit(ctx, auditID, filter)
	if err != nil {
		return nil, usecases.FromRepository(err, "Falha ao listar páginas auditadas")
	}
	return pages, nil
}

func (s *Service) DeletePageInsight(ctx context.Context, id uint) error {
	if scoped(ctx) {
		page, err := s.pageInsightRepository.GetByID(ctx, id)
		if err != nil {
			return usecases.FromRepository(err, "Falha ao buscar página auditada")
		}
		if page == nil || s.requireSite(ctx, page.SiteID) != nil {
			return usecases.NotFound(ErrPageInsightNotFound.Error())
		}
	}

	if err := s.pageInsightRepository.Delete(ctx, id); err != nil {
		return usecases.FromRepository(err, ErrPageInsightNotFound.Error())
	}
	return nil
}

func (s *Service) RecordEvent(ctx context.Context, event *domain.InsightEvent) (*domain.InsightEvent, error) {
	if err := s.requireSite(ctx, event.SiteID); err != nil {
		return nil, err
	}

	if err := s.insightEventRepository.Create(ctx, event); err != nil {
		return nil, usecases.FromRepository(err, "Falha ao salvar evento")
	}
	return event, nil
}

func (s *Service) ListEvents(ctx context.Context, siteID uint, filter domain.InsightEventFilter) ([]*domain.InsightEvent, error) {
	if scoped(ctx) {
		if err := s.requireSite(ctx, siteID); err != nil {
			return nil, err
		}
	}
	if filter.Severity != nil && !filter.Severity.IsValid() {
		return nil, usecases.FromRepository(
			domain.NewValidationError("severity", "severidade inválida %q", *filter.Severity), "")
	}

	events, err := s.insightEventRepository.ListBySite(ctx, siteID, filter)
	if err != nil {
		return nil, usecases.FromRepository(err, "Falha ao listar eventos")
	}
	return events, nil
}

func (s *Service) DeleteEvent(ctx context.Context, id uint) error {
	if scoped(ctx) {
		event, err := s.insightEventRepository.GetByID(ctx, id)
		if err != nil {
			return usecases.FromRepository(err, "Falha ao buscar evento")
		}
		if event == nil || s.requireSite(ctx, event.SiteID) != nil {
			return usecases.NotFound(ErrEventNotFound.Error())
		}
	}

	if err := s.insightEventRepository.Delete(ctx, id); err != nil {
		return usecases.FromRepository(err, ErrEventNotFound.Error())
	}
	return nil
}

func (s *Service) CreateAIInsight(ctx context.Context, insight *domain.AIInsight) (*domain.AIInsight, error) {
	if scope, ok := domain.EntityScope(ctx); ok {
		if insight.EntityID == 0 {
			insight.EntityID = scope
		}
		if insight.EntityID != scope {
			return nil, usecases.Forbidden("Não é possível criar insights para outra entidade")
		}
	}
	if insight.SiteID != nil && *insight.SiteID != 0 {
		if err := s.requireSite(ctx, *insight.SiteID); err != nil {
			return nil, err
		}
	}

	if err := s.aiInsightRepository.Create(ctx, insight); err != nil {
		return nil, usecases.FromRepository(err, "Falha ao salvar insight")
	}
	return insight, nil
}

func (s *Service) GetAIInsight(ctx context.Context, id uint) (*domain.AIInsight, error) {
	insight, err := s.aiInsightRepository.GetByID(ctx, id)
	if err != nil {
		return nil, usecases.FromRepository(err, "Falha ao buscar insight")
	}
	if insight == nil || !domain.CanAccessEntity(ctx, insight.EntityID) {
		return nil, usecases.NotFound(ErrAIInsightNotFound.Error())
	}
	return insight, nil
}

func (s *Service) ListAIInsights(ctx context.Context, entityID uint, filter domain.AIInsightFilter) ([]*domain.AIInsight, error) {
	if scope, ok := domain.EntityScope(ctx); ok {
		if entityID != 0 && entityID != scope {
			return nil, usecases.Forbidden("Não é possível listar insights de outra entidade")
		}
		entityID = scope
	}

	insights, err := s.aiInsightRepository.ListByEntity(ctx, entityID, filter)
	if err != nil {
		return nil, usecases.FromRepository(err, "Falha ao listar insights")
	}
	return insights, nil
}

func (s *Service) DeleteAIInsight(ctx context.Context, id uint) error {
	if scoped(ctx) {
		if _, err := s.GetAIInsight(ctx, id); err != nil {
			return err
		}
	}

	if err := s.aiInsightRepository.Delete(ctx, id); err != nil {
		return usecases.FromRepository(err, ErrAIInsightNotFound.Error())
	}
	return nil
}
