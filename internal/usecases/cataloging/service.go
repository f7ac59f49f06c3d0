package cataloging

import (
	"context"
	"strings"

	"github.com/vfg2006/growth-insights-api/infrastructure/repository"
	"github.com/vfg2006/growth-insights-api/internal/domain"
	"github.com/vfg2006/growth-insights-api/internal/usecases"
)

type CatalogService interface {
	CreateChannel(ctx context.Context, channel *domain.Channel) (*domain.Channel, error)
	GetChannel(ctx context.Context, id uint) (*domain.Channel, error)
	GetChannelByName(ctx context.Context, name string) (*domain.Channel, error)
	ListChannels(ctx context.Context, filter domain.ChannelFilter) ([]*domain.Channel, error)
	UpdateChannel(ctx context.Context, request *domain.UpdateChannelRequest) (*domain.Channel, error)
	DeleteChannel(ctx context.Context, id uint) error

	CreateBenchmark(ctx context.Context, benchmark *domain.Benchmark) (*domain.Benchmark, error)
	GetBenchmark(ctx context.Context, id uint) (*domain.Benchmark, error)
	GetLatestBenchmark(ctx context.Context, industry string) (*domain.Benchmark, error)
	ListBenchmarks(ctx context.Context, filter domain.BenchmarkFilter) ([]*domain.Benchmark, error)
	UpdateBenchmark(ctx context.Context, benchmark *domain.Benchmark) (*domain.Benchmark, error)
	DeleteBenchmark(ctx context.Context, id uint) error
}

type Service struct {
	channelRepository   repository.ChannelRepository
	benchmarkRepository repository.BenchmarkRepository
}

func NewService(
	channelRepository repository.ChannelRepository,
	benchmarkRepository repository.BenchmarkRepository,
) CatalogService {
	return &Service{
		channelRepository:   channelRepository,
		benchmarkRepository: benchmarkRepository,
	}
}

func (s *Service) CreateChannel(ctx context.Context, channel *domain.Channel) (*domain.Channel, error) {
	if err := s.channelRepository.Create(ctx, channel); err != nil {
		return nil, usecases.FromRepository(err, "Falha ao salvar canal")
	}
	return channel, nil
}

func (s *Service) GetChannel(ctx context.Context, id uint) (*domain.Channel, error) {
	channel, err := s.channelRepository.GetByID(ctx, id)
	if err != nil {
		return nil, usecases.FromRepository(err, "Falha ao buscar canal")
	}
	if channel == nil {
		return nil, usecases.NotFound(ErrChannelNotFound.Error())
	}
	return channel, nil
}

func (s *Service) GetChannelByName(ctx context.Context, name string) (*domain.Channel, error) {
	channel, err := s.channelRepository.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, usecases.FromRepository(err, "Falha ao buscar canal")
	}
	if channel == nil {
		return nil, usecases.NotFound(ErrChannelNotFound.Error())
	}
	return channel, nil
}

func (s *Service) ListChannels(ctx context.Context, filter domain.ChannelFilter) ([]*domain.Channel, error) {
	if filter.Category != nil && !filter.Category.IsValid() {
		return nil, usecases.FromRepository(
			domain.NewValidationError("category", "categoria inválida %q", *filter.Category), "")
	}

	channels, err := s.channelRepository.List(ctx, filter)
	if err != nil {
		return nil, usecases.FromRepository(err, "Falha ao listar canais")
	}
	return channels, nil
}

// UpdateChannel aplica apenas os campos enviados e revalida o canal inteiro
func (s *Service) UpdateChannel(ctx context.Context, request *domain.UpdateChannelRequest) (*domain.Channel, error) {
	channel, err := s.GetChannel(ctx, request.ID)
	if err != nil {
		return nil, err
	}

	request.Apply(channel)

	if err := s.channelRepository.Update(ctx, channel); err != nil {
		return nil, usecases.FromRepository(err, "Falha ao atualizar canal")
	}
	return channel, nil
}

func (s *Service) DeleteChannel(ctx context.Context, id uint) error {
	if err := s.channelRepository.Delete(ctx, id); err != nil {
		return usecases.FromRepository(err, ErrChannelNotFound.Error())
	}
	return nil
}

func (s *Service) CreateBenchmark(ctx context.Context, benchmark *domain.Benchmark) (*domain.Benchmark, error) {
	if err := s.benchmarkRepository.Create(ctx, benchmark); err != nil {
		return nil, usecases.FromRepository(err, "Falha ao salvar benchmark")
	}
	return benchmark, nil
}

func (s *Service) GetBenchmark(ctx context.Context, id uint) (*domain.Benchmark, error) {
	benchmark, err := s.benchmarkRepository.GetByID(ctx, id)
	if err != nil {
		return nil, usecases.FromRepository(err, "Falha ao buscar benchmark")
	}
	if benchmark == nil {
		return nil, usecases.NotFound(ErrBenchmarkNotFound.Error())
	}
	return benchmark, nil
}

func (s *Service) GetLatestBenchmark(ctx context.Context, industry string) (*domain.Benchmark, error) {
	benchmark, err := s.benchmarkRepository.GetLatestByIndustry(ctx, strings.TrimSpace(industry))
	if err != nil {
		return nil, usecases.FromRepository(err, "Falha ao buscar benchmark")
	}
	if benchmark == nil {
		return nil, usecases.NotFound(ErrBenchmarkNotFound.Error())
	}
	return benchmark, nil
}

func (s *Service) ListBenchmarks(ctx context.Context, filter domain.BenchmarkFilter) ([]*domain.Benchmark, error) {
	benchmarks, err := s.benchmarkRepository.List(ctx, filter)
	if err != nil {
		return nil, usecases.FromRepository(err, "Falha ao listar benchmarks")
	}
	return benchmarks, nil
}

func (s *Service) UpdateBenchmark(ctx context.Context, benchmark *domain.Benchmark) (*domain.Benchmark, error) {
	if err := s.benchmarkRepository.Update(ctx, benchmark); err != nil {
		return nil, usecases.FromRepository(err, ErrBenchmarkNotFound.Error())
	}
	return benchmark, nil
}

func (s *Service) DeleteBenchmark(ctx context.Context, id uint) error {
	if err := s.benchmarkRepository.Delete(ctx, id); err != nil {
		return usecases.FromRepository(err, ErrBenchmarkNotFound.Error())
	}
	return nil
}
