package tracking

import (
	"context"

	"github.com/vfg2006/growth-insights-api/infrastructure/repository"
	"github.com/vfg2006/growth-insights-api/internal/domain"
	"github.com/vfg2006/growth-insights-api/internal/usecases"
	"github.com/vfg2006/growth-insights-api/pkg/apiErrors"
)

type Tracker interface {
	CreateSite(ctx context.Context, site *domain.Site) (*domain.Site, error)
	GetSite(ctx context.Context, id uint) (*domain.Site, error)
	ListSites(ctx context.Context, filter domain.SiteFilter) ([]*domain.Site, error)
	UpdateSite(ctx context.Context, site *domain.Site) (*domain.Site, error)
	DeleteSite(ctx context.Context, id uint) error

	CreateKeyword(ctx context.Context, keyword *domain.Keyword) (*domain.Keyword, error)
	GetKeyword(ctx context.Context, id uint) (*domain.Keyword, error)
	ListKeywords(ctx context.Context, siteID uint, filter domain.ListFilter) ([]*domain.Keyword, error)
	UpdateKeyword(ctx context.Context, keyword *domain.Keyword) (*domain.Keyword, error)
	DeleteKeyword(ctx context.Context, id uint) error

	RecordKeywordSnapshot(ctx context.Context, snapshot *domain.KeywordSnapshot) (*domain.KeywordSnapshot, error)
	ListKeywordSnapshots(ctx context.Context, keywordID uint, dr domain.DateRange, filter domain.ListFilter) ([]*domain.KeywordSnapshot, error)
	DeleteKeywordSnapshot(ctx context.Context, id uint) error

	CaptureSerp(ctx context.Context, snapshot *domain.SerpSnapshot) (*domain.SerpSnapshot, error)
	GetSerpSnapshot(ctx context.Context, id uint) (*domain.SerpSnapshot, error)
	ListSerpSnapshots(ctx context.Context, keywordID uint, dr domain.DateRange, filter domain.ListFilter) ([]*domain.SerpSnapshot, error)
	DeleteSerpSnapshot(ctx context.Context, id uint) error

	RecordRank(ctx context.Context, record *domain.RankRecord) (*domain.RankRecord, error)
	ListRankRecords(ctx context.Context, siteID uint, keywordID *uint, dr domain.DateRange, filter domain.ListFilter) ([]*domain.RankRecord, error)
	DeleteRankRecord(ctx context.Context, id uint) error

	RecordBacklinks(ctx context.Context, snapshot *domain.BacklinkSnapshot) (*domain.BacklinkSnapshot, error)
	GetLatestBacklinks(ctx context.Context, siteID uint) (*domain.BacklinkSnapshot, error)
	ListBacklinkSnapshots(ctx context.Context, siteID uint, dr domain.DateRange, filter domain.ListFilter) ([]*domain.BacklinkSnapshot, error)
	DeleteBacklinkSnapshot(ctx context.Context, id uint) error

	CreateCompetitor(ctx context.Context, competitor *domain.Competitor) (*domain.Competitor, error)
	GetCompetitor(ctx context.Context, id uint) (*domain.Competitor, error)
	ListCompetitors(ctx context.Context, siteID uint, filter domain.ListFilter) ([]*domain.Competitor, error)
	UpdateCompetitor(ctx context.Context, competitor *domain.Competitor) (*domain.Competitor, error)
	DeleteCompetitor(ctx context.Context, id uint) error

	CreateCompetitorGap(ctx context.Context, gap *domain.CompetitorGap) (*domain.CompetitorGap, error)
	ListCompetitorGaps(ctx context.Context, siteID uint, competitorID *uint, filter domain.ListFilter) ([]*domain.CompetitorGap, error)
	UpdateCompetitorGap(ctx context.Context, gap *domain.CompetitorGap) (*domain.CompetitorGap, error)
	DeleteCompetitorGap(ctx context.Context, id uint) error
}

// Repositories agrupa os repositórios usados pelo rastreamento de SEO
type Repositories struct {
	Sites            repository.SiteRepository
	Keywords         repository.KeywordRepository
	KeywordSnapshots repository.KeywordSnapshotRepository
	SerpSnapshots    repository.SerpSnapshotRepository
	RankRecords      repository.RankRecordRepository
	Backlinks        repository.BacklinkSnapshotRepository
	Competitors      repository.CompetitorRepository
	CompetitorGaps   repository.CompetitorGapRepository
}

type Service struct {
	repos Repositories
}

func NewService(repos Repositories) Tracker {
	return &Service{
		repos: repos,
	}
}

// requireSite confirma que o site existe e pertence à entidade do chamador.
// Sites de outras entidades são tratados como inexistentes.
func (s *Service) requireSite(ctx context.Context, siteID uint) (*domain.Site, error) {
	site, err := s.repos.Sites.GetByID(ctx, siteID)
	if err != nil {
		return nil, usecases.FromRepository(err, "Falha ao buscar site")
	}
	if site == nil || !domain.CanAccessEntity(ctx, site.EntityID) {
		return nil, usecases.NotFound(ErrSiteNotFound.Error())
	}
	return site, nil
}

// authorizeSite só consulta o site quando o contexto tem escopo de entidade
func (s *Service) authorizeSite(ctx context.Context, siteID uint) error {
	if _, scoped := domain.EntityScope(ctx); !scoped {
		return nil
	}
	_, err := s.requireSite(ctx, siteID)
	return err
}

func (s *Service) requireKeyword(ctx context.Context, keywordID uint) (*domain.Keyword, error) {
	keyword, err := s.repos.Keywords.GetByID(ctx, keywordID)
	if err != nil {
		return nil, usecases.FromRepository(err, "Falha ao buscar palavra-chave")
	}
	if keyword == nil {
		return nil, usecases.NotFound(ErrKeywordNotFound.Error())
	}
	if err := s.authorizeSite(ctx, keyword.SiteID); err != nil {
		return nil, usecases.NotFound(ErrKeywordNotFound.Error())
	}
	return keyword, nil
}

// authorizeKeyword confere, com escopo de entidade, que a palavra-chave é de um site do chamador
func (s *Service) authorizeKeyword(ctx context.Context, keywordID uint) error {
	if _, scoped := domain.EntityScope(ctx); !scoped {
		return nil
	}
	_, err := s.requireKeyword(ctx, keywordID)
	return err
}

func siteMismatch(details string) error {
	return usecases.NewServiceError(ErrSiteMismatch, apiErrors.ErrInvalidReference, details)
}

func (s *Service) CreateSite(ctx context.Context, site *domain.Site) (*domain.Site, error) {
	if scope, scoped := domain.EntityScope(ctx); scoped {
		if site.EntityID == 0 {
			site.EntityID = scope
		}
		if site.EntityID != scope {
			return nil, usecases.Forbidden("Não é possível criar sites para outra entidade")
		}
	}

	if err := s.repos.Sites.Create(ctx, site); err != nil {
		return nil, usecases.FromRepository(err, "Falha ao salvar site")
	}
	return site, nil
}

func (s *Service) GetSite(ctx context.Context, id uint) (*domain.Site, error) {
	return s.requireSite(ctx, id)
}

func (s *Service) ListSites(ctx context.Context, filter domain.SiteFilter) ([]*domain.Site, error) {
	if scope, scoped := domain.EntityScope(ctx); scoped {
		if filter.EntityID != 0 && filter.EntityID != scope {
			return nil, usecases.Forbidden("Não é possível listar sites de outra entidade")
		}
		filter.EntityID = scope
	}

	sites, err := s.repos.Sites.List(ctx, filter)
	if err != nil {
		return nil, usecases.FromRepository(err, "Falha ao listar sites")
	}
	return sites, nil
}

func (s *Service) UpdateSite(ctx context.Context, site *domain.Site) (*domain.Site, error) {
	current, err := s.requireSite(ctx, site.ID)
	if err != nil {
		return nil, err
	}
	// só administradores movem um site para outra entidade
	if _, scoped := domain.EntityScope(ctx); scoped || site.EntityID == 0 {
		site.EntityID = current.EntityID
	}

	if err := s.repos.Sites.Update(ctx, site); err != nil {
		return nil, usecases.FromRepository(err, ErrSiteNotFound.Error())
	}
	return site, nil
}

func (s *Service) DeleteSite(ctx context.Context, id uint) error {
	if err := s.authorizeSite(ctx, id); err != nil {
		return err
	}

	if err := s.repos.Sites.Delete(ctx, id); err != nil {
		return usecases.FromRepository(err, ErrSiteNotFound.Error())
	}
	return nil
}

func (s *Service) CreateKeyword(ctx context.Context, keyword *domain.Keyword) (*domain.Keyword, error) {
	if _, err := s.requireSite(ctx, keyword.SiteID); err != nil {
		return nil, err
	}

	if err := s.repos.Keywords.Create(ctx, keyword); err != nil {
		return nil, usecases.FromRepository(err, "Falha ao salvar palavra-chave")
	}
	return keyword, nil
}

func (s *Service) GetKeyword(ctx context.Context, id uint) (*domain.Keyword, error) {
	return s.requireKeyword(ctx, id)
}

func (s *Service) ListKeywords(ctx context.Context, siteID uint, filter domain.ListFilter) ([]*domain.Keyword, error) {
	if err := s.authorizeSite(ctx, siteID); err != nil {
		return nil, err
	}

	keywords, err := s.repos.Keywords.ListBySite(ctx, siteID, filter)
	if err != nil {
		return nil, usecases.FromRepository(err, "Falha ao listar palavras-chave")
	}
	return keywords, nil
}

func (s *Service) UpdateKeyword(ctx context.Context, keyword *domain.Keyword) (*domain.Keyword, error) {
	current, err := s.requireKeyword(ctx, keyword.ID)
	if err != nil {
		return nil, err
	}
	// o site da palavra-chave não muda
	keyword.SiteID = current.SiteID

	if err := s.repos.Keywords.Update(ctx, keyword); err != nil {
		return nil, usecases.FromRepository(err, ErrKeywordNotFound.Error())
	}
	return keyword, nil
}

func (s *Service) DeleteKeyword(ctx context.Context, id uint) error {
	if _, scoped := domain.EntityScope(ctx); scoped {
		if _, err := s.requireKeyword(ctx, id); err != nil {
			return err
		}
	}

	if err := s.repos.Keywords.Delete(ctx, id); err != nil {
		return usecases.FromRepository(err, ErrKeywordNotFound.Error())
	}
	return nil
}

func (s *Service) RecordKeywordSnapshot(ctx context.Context, snapshot *domain.KeywordSnapshot) (*domain.KeywordSnapshot, error) {
	if _, err := s.requireKeyword(ctx, snapshot.KeywordID); err != nil {
		return nil, err
	}

	if err := s.repos.KeywordSnapshots.Create(ctx, snapshot); err != nil {
		return nil, usecases.FromRepository(err, "Falha ao salvar snapshot de palavra-chave")
	}
	return snapshot, nil
}

func (s *Service) ListKeywordSnapshots(ctx context.Context, keywordID uint, dr domain.DateRange, filter domain.ListFilter) ([]*domain.KeywordSnapshot, error) {
	if err := s.authorizeKeyword(ctx, keywordID); err != nil {
		return nil, err
	}

	snapshots, err := s.repos.KeywordSnapshots.ListByKeyword(ctx, keywordID, dr, filter)
	if err != nil {
		return nil, usecases.FromRepository(err, "Falha ao listar snapshots de palavra-chave")
	}
	return snapshots, nil
}

func (s *Service) DeleteKeywordSnapshot(ctx context.Context, id uint) error {
	if _, scoped := domain.EntityScope(ctx); scoped {
		snapshot, err := s.repos.KeywordSnapshots.GetByID(ctx, id)
		if err != nil {
			return usecases.FromRepository(err, "Falha ao buscar snapshot de palavra-chave")
		}
		if snapshot == nil || s.authorizeKeyword(ctx, snapshot.KeywordID) != nil {
			return usecases.NotFound(ErrRecordNotFound.Error())
		}
	}

	if err := s.repos.KeywordSnapshots.Delete(ctx, id); err != nil {
		return usecases.FromRepository(err, ErrRecordNotFound.Error())
	}
	return nil
}

// CaptureSerp grava o snapshot da SERP junto com todos os resultados
func (s *Service) CaptureSerp(ctx context.Context, snapshot *domain.SerpSnapshot) (*domain.SerpSnapshot, error) {
	if _, err := s.requireKeyword(ctx, snapshot.KeywordID); err != nil {
		return nil, err
	}

	if err := s.repos.SerpSnapshots.Create(ctx, snapshot); err != nil {
		return nil, usecases.FromRepository(err, "Falha ao salvar snapshot da SERP")
	}
	return snapshot, nil
}

func (s *Service) GetSerpSnapshot(ctx context.Context, id uint) (*domain.SerpSnapshot, error) {
	snapshot, err := s.repos.SerpSnapshots.GetByID(ctx, id)
	if err != nil {
		return nil, usecases.FromRepository(err, "Falha ao buscar snapshot da SERP")
	}
	if snapshot == nil || s.authorizeKeyword(ctx, snapshot.KeywordID) != nil {
		return nil, usecases.NotFound(ErrSerpSnapshotNotFound.Error())
	}
	return snapshot, nil
}

func (s *Service) ListSerpSnapshots(ctx context.Context, keywordID uint, dr domain.DateRange, filter domain.ListFilter) ([]*domain.SerpSnapshot, error) {
	if err := s.authorizeKeyword(ctx, keywordID); err != nil {
		return nil, err
	}

	snapshots, err := s.repos.SerpSnapshots.ListByKeyword(ctx, keywordID, dr, filter)
	if err != nil {
		return nil, usecases.FromRepository(err, "Falha ao listar snapshots da SERP")
	}
	return snapshots, nil
}

func (s *Service) DeleteSerpSnapshot(ctx context.Context, id uint) error {
	if _, scoped := domain.EntityScope(ctx); scoped {
		if _, err := s.GetSerpSnapshot(ctx, id); err != nil {
			return err
		}
	}

	if err := s.repos.SerpSnapshots.Delete(ctx, id); err != nil {
		return usecases.FromRepository(err, ErrSerpSnapshotNotFound.Error())
	}
	return nil
}

func (s *Service) RecordRank(ctx context.Context, record *domain.RankRecord) (*domain.RankRecord, error) {
	keyword, err := s.requireKeyword(ctx, record.KeywordID)
	if err != nil {
		return nil, err
	}
	if record.SiteID == 0 {
		record.SiteID = keyword.SiteID
	}
	if keyword.SiteID != record.SiteID {
		return nil, siteMismatch("A palavra-chave não pertence a este site")
	}

	if err := s.repos.RankRecords.Create(ctx, record); err != nil {
		return nil, usecases.FromRepository(err, "Falha ao salvar posição")
	}
	return record, nil
}

func (s *Service) ListRankRecords(ctx context.Context, siteID uint, keywordID *uint, dr domain.DateRange, filter domain.ListFilter) ([]*domain.RankRecord, error) {
	if err := s.authorizeSite(ctx, siteID); err != nil {
		return nil, err
	}

	if keywordID == nil {
		records, err := s.repos.RankRecords.ListBySite(ctx, siteID, dr, filter)
		if err != nil {
			return nil, usecases.FromRepository(err, "Falha ao listar posições")
		}
		return records, nil
	}

	keyword, err := s.requireKeyword(ctx, *keywordID)
	if err != nil {
		return nil, err
	}
	if keyword.SiteID != siteID {
		return nil, siteMismatch("A palavra-chave não pertence a este site")
	}

	records, err := s.repos.RankRecords.ListByKeyword(ctx, keyword.ID, dr, filter)
	if err != nil {
		return nil, usecases.FromRepository(err, "Falha ao listar posições")
	}
	return records, nil
}

func (s *Service) DeleteRankRecord(ctx context.Context, id uint) error {
	if _, scoped := domain.EntityScope(ctx); scoped {
		record, err := s.repos.RankRecords.GetByID(ctx, id)
		if err != nil {
			return usecases.FromRepository(err, "Falha ao buscar posição")
		}
		if record == nil || s.authorizeSite(ctx, record.SiteID) != nil {
			return usecases.NotFound(ErrRecordNotFound.Error())
		}
	}

	if err := s.repos.RankRecords.Delete(ctx, id); err != nil {
		return usecases.FromRepository(err, ErrRecordNotFound.Error())
	}
	return nil
}

func (s *Service) RecordBacklinks(ctx context.Context, snapshot *domain.BacklinkSnapshot) (*domain.BacklinkSnapshot, error) {
	if _, err := s.requireSite(ctx, snapshot.SiteID); err != nil {
		return nil, err
	}

	if err := s.repos.Backlinks.Create(ctx, snapshot); err != nil {
		return nil, usecases.FromRepository(err, "Falha ao salvar snapshot de backlinks")
	}
	return snapshot, nil
}

func (s *Service) GetLatestBacklinks(ctx context.Context, siteID uint) (*domain.BacklinkSnapshot, error) {
	if err := s.authorizeSite(ctx, siteID); err != nil {
		return nil, err
	}

	snapshot, err := s.repos.Backlinks.GetLatestBySite(ctx, siteID)
	if err != nil {
		return nil, usecases.FromRepository(err, "Falha ao buscar snapshot de backlinks")
	}
	if snapshot == nil {
		return nil, usecases.NotFound(ErrRecordNotFound.Error())
	}
	return snapshot, nil
}

func (s *Service) ListBacklinkSnapshots(ctx context.Context, siteID uint, dr domain.DateRange, filter domain.ListFilter) ([]*domain.BacklinkSnapshot, error) {
	if err := s.authorizeSite(ctx, siteID); err != nil {
		return nil, err
	}

	snapshots, err := s.repos.Backlinks.ListBySite(ctx, siteID, dr, filter)
	if err != nil {
		return nil, usecases.FromRepository(err, "Falha ao listar snapshots de backlinks")
	}
	return snapshots, nil
}

func (s *Service) DeleteBacklinkSnapshot(ctx context.Context, id uint) error {
	if _, scoped := domain.EntityScope(ctx); scoped {
		snapshot, err := s.repos.Backlinks.GetByID(ctx, id)
		if err != nil {
			return usecases.FromRepository(err, "Falha ao buscar snapshot de backlinks")
		}
		if snapshot == nil || s.authorizeSite(ctx, snapshot.SiteID) != nil {
			return usecases.NotFound(ErrRecordNotFound.Error())
		}
	}

	if err := s.repos.Backlinks.Delete(ctx, id); err != nil {
		return usecases.FromRepository(err, ErrRecordNotFound.Error())
	}
	return nil
}

func (s *Service) CreateCompetitor(ctx context.Context, competitor *domain.Competitor) (*domain.Competitor, error) {
	if _, err := s.requireSite(ctx, competitor.SiteID); err != nil {
		return nil, err
	}

	if err := s.repos.Competitors.Create(ctx, competitor); err != nil {
		return nil, usecases.FromRepository(err, "Falha ao salvar concorrente")
	}
	return competitor, nil
}

func (s *Service) GetCompetitor(ctx context.Context, id uint) (*domain.Competitor, error) {
	competitor, err := s.repos.Competitors.GetByID(ctx, id)
	if err != nil {
		return nil, usecases.FromRepository(err, "Falha ao buscar concorrente")
	}
	if competitor == nil || s.authorizeSite(ctx, competitor.SiteID) != nil {
		return nil, usecases.NotFound(ErrCompetitorNotFound.Error())
	}
	return competitor, nil
}

func (s *Service) ListCompetitors(ctx context.Context, siteID uint, filter domain.ListFilter) ([]*domain.Competitor, error) {
	if err := s.authorizeSite(ctx, siteID); err != nil {
		return nil, err
	}

	competitors, err := s.repos.Competitors.ListBySite(ctx, siteID, filter)
	if err != nil {
		return nil, usecases.FromRepository(err, "Falha ao listar concorrentes")
	}
	return competitors, nil
}

func (s *Service) UpdateCompetitor(ctx context.Context, competitor *domain.Competitor) (*domain.Competitor, error) {
	current, err := s.GetCompetitor(ctx, competitor.ID)
	if err != nil {
		return nil, err
	}
	competitor.SiteID = current.SiteID

	if err := s.repos.Competitors.Update(ctx, competitor); err != nil {
		return nil, usecases.FromRepository(err, ErrCompetitorNotFound.Error())
	}
	return competitor, nil
}

func (s *Service) DeleteCompetitor(ctx context.Context, id uint) error {
	if _, scoped := domain.EntityScope(ctx); scoped {
		if _, err := s.GetCompetitor(ctx, id); err != nil {
			return err
		}
	}

	if err := s.repos.Competitors.Delete(ctx, id); err != nil {
		return usecases.FromRepository(err, ErrCompetitorNotFound.Error())
	}
	return nil
}

func (s *Service) CreateCompetitorGap(ctx context.Context, gap *domain.CompetitorGap) (*domain.CompetitorGap, error) {
	competitor, err := s.GetCompetitor(ctx, gap.CompetitorID)
	if err != nil {
		return nil, err
	}
	if gap.SiteID == 0 {
		gap.SiteID = competitor.SiteID
	}
	if competitor.SiteID != gap.SiteID {
		return nil, siteMismatch("O concorrente não pertence a este site")
	}

	if err := s.repos.CompetitorGaps.Create(ctx, gap); err != nil {
		return nil, usecases.FromRepository(err, "Falha ao salvar lacuna de concorrente")
	}
	return gap, nil
}

func (s *Service) ListCompetitorGaps(ctx context.Context, siteID uint, competitorID *uint, filter domain.ListFilter) ([]*domain.CompetitorGap, error) {
	if err := s.authorizeSite(ctx, siteID); err != nil {
		return nil, err
	}

	gaps, err := s.repos.CompetitorGaps.ListBySite(ctx, siteID, competitorID, filter)
	if err != nil {
		return nil, usecases.FromRepository(err, "Falha ao listar lacunas de concorrentes")
	}
	return gaps, nil
}

func (s *Service) UpdateCompetitorGap(ctx context.Context, gap *domain.CompetitorGap) (*domain.CompetitorGap, error) {
	current, err := s.repos.CompetitorGaps.GetByID(ctx, gap.ID)
	if err != nil {
		return nil, usecases.FromRepository(err, "Falha ao buscar lacuna de concorrente")
	}
	if current == nil || s.authorizeSite(ctx, current.SiteID) != nil {
		return nil, usecases.NotFound(ErrGapNotFound.Error())
	}
	gap.SiteID = current.SiteID
	gap.CompetitorID = current.CompetitorID

	if err := s.repos.CompetitorGaps.Update(ctx, gap); err != nil {
		return nil, usecases.FromRepository(err, ErrGapNotFound.Error())
	}
	return gap, nil
}

func (s *Service) DeleteCompetitorGap(ctx context.Context, id uint) error {
	if _, scoped := domain.EntityScope(ctx); scoped {
		gap, err := s.repos.CompetitorGaps.GetByID(ctx, id)
		if err != nil {
			return usecases.FromRepository(err, "Falha ao buscar lacuna de concorrente")
		}
		if gap == nil || s.authorizeSite(ctx, gap.SiteID) != nil {
			return usecases.NotFound(ErrGapNotFound.Error())
		}
	}

	if err := s.repos.CompetitorGaps.Delete(ctx, id); err != nil {
		return usecases.FromRepository(err, ErrGapNotFound.Error())
	}
	return nil
}
