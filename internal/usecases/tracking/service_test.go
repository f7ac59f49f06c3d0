package tracking

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/growth-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/growth-insights-api/internal/domain"
	"github.com/vfg2006/growth-insights-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type trackerMocks struct {
	sites            *mocks.MockSiteRepository
	keywords         *mocks.MockKeywordRepository
	keywordSnapshots *mocks.MockKeywordSnapshotRepository
	serps            *mocks.MockSerpSnapshotRepository
	ranks            *mocks.MockRankRecordRepository
	backlinks        *mocks.MockBacklinkSnapshotRepository
	competitors      *mocks.MockCompetitorRepository
	gaps             *mocks.MockCompetitorGapRepository
}

func newTracker(ctrl *gomock.Controller) (Tracker, trackerMocks) {
	m := trackerMocks{
		sites:            mocks.NewMockSiteRepository(ctrl),
		keywords:         mocks.NewMockKeywordRepository(ctrl),
		keywordSnapshots: mocks.NewMockKeywordSnapshotRepository(ctrl),
		serps:            mocks.NewMockSerpSnapshotRepository(ctrl),
		ranks:            mocks.NewMockRankRecordRepository(ctrl),
		backlinks:        mocks.NewMockBacklinkSnapshotRepository(ctrl),
		competitors:      mocks.NewMockCompetitorRepository(ctrl),
		gaps:             mocks.NewMockCompetitorGapRepository(ctrl),
	}

	return NewService(Repositories{
		Sites:            m.sites,
		Keywords:         m.keywords,
		KeywordSnapshots: m.keywordSnapshots,
		SerpSnapshots:    m.serps,
		RankRecords:      m.ranks,
		Backlinks:        m.backlinks,
		Competitors:      m.competitors,
		CompetitorGaps:   m.gaps,
	}), m
}

func errorCode(t *testing.T, err error) string {
	t.Helper()
	var coded apiErrors.CodedError
	require.True(t, errors.As(err, &coded), "erro sem código: %v", err)
	return coded.ErrorCode()
}

func TestService_CreateKeyword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTracker(ctrl)
	ctx := context.Background()

	tests := []struct {
		name         string
		setup        func()
		expectedCode string
	}{
		{
			name: "Site existente",
			setup: func() {
				m.sites.EXPECT().GetByID(ctx, uint(1)).Return(&domain.Site{ID: 1}, nil)
				m.keywords.EXPECT().Create(ctx, gomock.Any()).Return(nil)
			},
		},
		{
			name: "Site inexistente não chega ao repositório de palavras-chave",
			setup: func() {
				m.sites.EXPECT().GetByID(ctx, uint(1)).Return(nil, nil)
			},
			expectedCode: apiErrors.ErrResourceNotFound,
		},
		{
			name: "Palavra-chave repetida no site",
			setup: func() {
				m.sites.EXPECT().GetByID(ctx, uint(1)).Return(&domain.Site{ID: 1}, nil)
				m.keywords.EXPECT().
					Create(ctx, gomock.Any()).
					Return(fmt.Errorf("%w: keywords_site_id_keyword_key", domain.ErrDuplicate))
			},
			expectedCode: apiErrors.ErrResourceConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			_, err := service.CreateKeyword(ctx, &domain.Keyword{SiteID: 1, Keyword: "óculos"})
			if tt.expectedCode == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.expectedCode, errorCode(t, err))
		})
	}
}

func TestService_CaptureSerp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTracker(ctrl)
	ctx := context.Background()

	snapshot := &domain.SerpSnapshot{
		KeywordID: 10,
		Results:   []*domain.SerpResult{{Position: 1, URL: "https://loja.com.br"}},
	}

	m.keywords.EXPECT().GetByID(ctx, uint(10)).Return(&domain.Keyword{ID: 10, SiteID: 1}, nil)
	m.serps.EXPECT().
		Create(ctx, snapshot).
		DoAndReturn(func(_ context.Context, s *domain.SerpSnapshot) error {
			s.ID = 77
			return nil
		})

	saved, err := service.CaptureSerp(ctx, snapshot)
	require.NoError(t, err)
	assert.Equal(t, uint(77), saved.ID)
	assert.Len(t, saved.Results, 1)
}

func TestService_RecordRank(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTracker(ctrl)
	ctx := context.Background()

	t.Run("Site herdado da palavra-chave", func(t *testing.T) {
		m.keywords.EXPECT().GetByID(ctx, uint(10)).Return(&domain.Keyword{ID: 10, SiteID: 4}, nil)
		m.ranks.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		record, err := service.RecordRank(ctx, &domain.RankRecord{KeywordID: 10})
		require.NoError(t, err)
		assert.Equal(t, uint(4), record.SiteID)
	})

	t.Run("Palavra-chave de outro site", func(t *testing.T) {
		m.keywords.EXPECT().GetByID(ctx, uint(10)).Return(&domain.Keyword{ID: 10, SiteID: 4}, nil)

		_, err := service.RecordRank(ctx, &domain.RankRecord{KeywordID: 10, SiteID: 9})
		assert.ErrorIs(t, err, ErrSiteMismatch)
		assert.Equal(t, apiErrors.ErrInvalidReference, errorCode(t, err))
	})
}

func TestService_CreateCompetitorGap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTracker(ctrl)
	ctx := context.Background()

	t.Run("Concorrente do mesmo site", func(t *testing.T) {
		m.competitors.EXPECT().GetByID(ctx, uint(2)).Return(&domain.Competitor{ID: 2, SiteID: 1}, nil)
		m.gaps.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		gap, err := service.CreateCompetitorGap(ctx, &domain.CompetitorGap{SiteID: 1, CompetitorID: 2, Keyword: "lentes"})
		require.NoError(t, err)
		assert.Equal(t, uint(1), gap.SiteID)
	})

	t.Run("Concorrente inexistente", func(t *testing.T) {
		m.competitors.EXPECT().GetByID(ctx, uint(3)).Return(nil, nil)

		_, err := service.CreateCompetitorGap(ctx, &domain.CompetitorGap{SiteID: 1, CompetitorID: 3, Keyword: "lentes"})
		assert.Equal(t, apiErrors.ErrResourceNotFound, errorCode(t, err))
	})
}

func TestService_ListRankRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTracker(ctrl)
	ctx := context.Background()

	m.ranks.EXPECT().
		ListBySite(ctx, uint(1), domain.DateRange{}, domain.ListFilter{}).
		Return([]*domain.RankRecord{{ID: 1}, {ID: 2}}, nil)

	records, err := service.ListRankRecords(ctx, 1, nil, domain.DateRange{}, domain.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, records, 2)

	keywordID := uint(10)
	m.keywords.EXPECT().GetByID(ctx, keywordID).Return(&domain.Keyword{ID: 10, SiteID: 2}, nil)

	_, err = service.ListRankRecords(ctx, 1, &keywordID, domain.DateRange{}, domain.ListFilter{})
	assert.ErrorIs(t, err, ErrSiteMismatch)
}

func TestService_DeleteSite_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTracker(ctrl)

	m.sites.EXPECT().Delete(gomock.Any(), uint(8)).Return(domain.ErrNotFound)

	err := service.DeleteSite(context.Background(), 8)
	assert.Equal(t, apiErrors.ErrResourceNotFound, errorCode(t, err))
}

func TestService_EscopoDeEntidade(t *testing.T) {
	ctx := domain.WithEntityScope(context.Background(), 1)
	foreign := &domain.Site{ID: 9, EntityID: 2, Domain: "outra.com"}

	t.Run("site de outra entidade é tratado como inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service, m := newTracker(ctrl)

		m.sites.EXPECT().GetByID(ctx, uint(9)).Return(foreign, nil)

		_, err := service.GetSite(ctx, 9)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Equal(t, apiErrors.ErrResourceNotFound, errorCode(t, err))
	})

	t.Run("listagem de outra entidade é proibida", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service, _ := newTracker(ctrl)

		_, err := service.ListSites(ctx, domain.SiteFilter{EntityID: 2})
		assert.ErrorIs(t, err, domain.ErrForeignEntity)
		assert.Equal(t, apiErrors.ErrInsufficientPrivilege, errorCode(t, err))
	})

	t.Run("listagem sem entidade usa o escopo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service, m := newTracker(ctrl)

		m.sites.EXPECT().List(ctx, domain.SiteFilter{EntityID: 1}).Return([]*domain.Site{{ID: 1, EntityID: 1}}, nil)

		sites, err := service.ListSites(ctx, domain.SiteFilter{})
		require.NoError(t, err)
		assert.Len(t, sites, 1)
	})

	t.Run("criação assume a entidade do escopo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service, m := newTracker(ctrl)

		m.sites.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		site, err := service.CreateSite(ctx, &domain.Site{Domain: "example.com"})
		require.NoError(t, err)
		assert.Equal(t, uint(1), site.EntityID)

		_, err = service.CreateSite(ctx, &domain.Site{Domain: "example.com", EntityID: 2})
		assert.Equal(t, apiErrors.ErrInsufficientPrivilege, errorCode(t, err))
	})

	t.Run("atualização não troca a entidade", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service, m := newTracker(ctrl)

		m.sites.EXPECT().GetByID(ctx, uint(1)).Return(&domain.Site{ID: 1, EntityID: 1}, nil)
		m.sites.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		site, err := service.UpdateSite(ctx, &domain.Site{ID: 1, EntityID: 2, Domain: "example.com"})
		require.NoError(t, err)
		assert.Equal(t, uint(1), site.EntityID)
	})

	t.Run("exclusão de site de outra entidade não chega ao repositório", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service, m := newTracker(ctrl)

		m.sites.EXPECT().GetByID(ctx, uint(9)).Return(foreign, nil)

		err := service.DeleteSite(ctx, 9)
		assert.Equal(t, apiErrors.ErrResourceNotFound, errorCode(t, err))
	})

	t.Run("palavra-chave de site alheio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service, m := newTracker(ctrl)

		m.keywords.EXPECT().GetByID(ctx, uint(10)).Return(&domain.Keyword{ID: 10, SiteID: 9}, nil)
		m.sites.EXPECT().GetByID(ctx, uint(9)).Return(foreign, nil)

		_, err := service.GetKeyword(ctx, 10)
		assert.Equal(t, apiErrors.ErrResourceNotFound, errorCode(t, err))
	})

	t.Run("exclusão de posição de site alheio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service, m := newTracker(ctrl)

		m.ranks.EXPECT().GetByID(ctx, uint(4)).Return(&domain.RankRecord{ID: 4, SiteID: 9, KeywordID: 10}, nil)
		m.sites.EXPECT().GetByID(ctx, uint(9)).Return(foreign, nil)

		err := service.DeleteRankRecord(ctx, 4)
		assert.Equal(t, apiErrors.ErrResourceNotFound, errorCode(t, err))
	})

	t.Run("exclusão de lacuna do próprio site", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service, m := newTracker(ctrl)

		m.gaps.EXPECT().GetByID(ctx, uint(6)).Return(&domain.CompetitorGap{ID: 6, SiteID: 1}, nil)
		m.sites.EXPECT().GetByID(ctx, uint(1)).Return(&domain.Site{ID: 1, EntityID: 1}, nil)
		m.gaps.EXPECT().Delete(ctx, uint(6)).Return(nil)

		require.NoError(t, service.DeleteCompetitorGap(ctx, 6))
	})
}
