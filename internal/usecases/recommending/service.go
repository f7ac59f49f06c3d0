package recommending

import (
	"context"

	"github.com/vfg2006/growth-insights-api/infrastructure/repository"
	"github.com/vfg2006/growth-insights-api/internal/domain"
	"github.com/vfg2006/growth-insights-api/internal/usecases"
)

type RecommendationService interface {
	Create(ctx context.Context, recommendation *domain.Recommendation) (*domain.Recommendation, error)
	Get(ctx context.Context, id uint) (*domain.Recommendation, error)
	ListByEntity(ctx context.Context, entityID uint, filter domain.ListFilter) ([]*domain.Recommendation, error)
	Update(ctx context.Context, recommendation *domain.Recommendation) (*domain.Recommendation, error)
	Delete(ctx context.Context, id uint) error
}

type Service struct {
	recommendationRepository repository.RecommendationRepository
	channelRepository        repository.ChannelRepository
}

func NewService(
	recommendationRepository repository.RecommendationRepository,
	channelRepository repository.ChannelRepository,
) RecommendationService {
	return &Service{
		recommendationRepository: recommendationRepository,
		channelRepository:        channelRepository,
	}
}

func (s *Service) Create(ctx context.Context, rec *domain.Recommendation) (*domain.Recommendation, error) {
	if scope, ok := domain.EntityScope(ctx); ok {
		if rec.EntityID == 0 {
			rec.EntityID = scope
		}
		if rec.EntityID != scope {
			return nil, usecases.Forbidden("Não é possível criar recomendações para outra entidade")
		}
	}
	if err := s.checkChannels(ctx, rec.RecommendedChannels); err != nil {
		return nil, err
	}

	if err := s.recommendationRepository.Create(ctx, rec); err != nil {
		return nil, usecases.FromRepository(err, "Falha ao salvar recomendação")
	}
	return rec, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*domain.Recommendation, error) {
	rec, err := s.recommendationRepository.GetByID(ctx, id)
	if err != nil {
		return nil, usecases.FromRepository(err, "Falha ao buscar recomendação")
	}
	if rec == nil || !domain.CanAccessEntity(ctx, rec.EntityID) {
		return nil, usecases.NotFound(ErrRecommendationNotFound.Error())
	}
	return rec, nil
}

func (s *Service) ListByEntity(ctx context.Context, entityID uint, filter domain.ListFilter) ([]*domain.Recommendation, error) {
	if scope, ok := domain.EntityScope(ctx); ok {
		if entityID != 0 && entityID != scope {
			return nil, usecases.Forbidden("Não é possível listar recomendações de outra entidade")
		}
		entityID = scope
	}

	recs, err := s.recommendationRepository.ListByEntity(ctx, entityID, filter)
	if err != nil {
		return nil, usecases.FromRepository(err, "Falha ao listar recomendações")
	}
	return recs, nil
}

func (s *Service) Update(ctx context.Context, rec *domain.Recommendation) (*domain.Recommendation, error) {
	if _, ok := domain.EntityScope(ctx); ok {
		current, err := s.Get(ctx, rec.ID)
		if err != nil {
			return nil, err
		}
		rec.EntityID = current.EntityID
	}
	if err := s.checkChannels(ctx, rec.RecommendedChannels); err != nil {
		return nil, err
	}

	if err := s.recommendationRepository.Update(ctx, rec); err != nil {
		return nil, usecases.FromRepository(err, ErrRecommendationNotFound.Error())
	}
	return rec, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if _, ok := domain.EntityScope(ctx); ok {
		if _, err := s.Get(ctx, id); err != nil {
			return err
		}
	}

	if err := s.recommendationRepository.Delete(ctx, id); err != nil {
		return usecases.FromRepository(err, ErrRecommendationNotFound.Error())
	}
	return nil
}

// checkChannels garante que canais citados pelo nome existem no catálogo.
// Itens que não são texto (objetos com detalhes) são aceitos como vieram.
func (s *Service) checkChannels(ctx context.Context, channels domain.JSONList) error {
	for _, item := range channels {
		name, ok := item.(string)
		if !ok {
			continue
		}

		channel, err := s.channelRepository.GetByName(ctx, name)
		if err != nil {
			return usecases.FromRepository(err, "Falha ao buscar canal")
		}
		if channel == nil {
			return usecases.FromRepository(
				domain.NewValidationError("recommended_channels", "canal %q não existe no catálogo", name), "")
		}
	}
	return nil
}
