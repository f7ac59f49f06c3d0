package auditing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/growth-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/growth-insights-api/internal/domain"
	"github.com/vfg2006/growth-insights-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type auditMocks struct {
	sites  *mocks.MockSiteRepository
	audits *mocks.MockSiteAuditRepository
	pages  *mocks.MockPageInsightRepository
	events *mocks.MockInsightEventRepository
	ai     *mocks.MockAIInsightRepository
}

func newService(ctrl *gomock.Controller, now time.Time) (*Service, auditMocks) {
	m := auditMocks{
		sites:  mocks.NewMockSiteRepository(ctrl),
		audits: mocks.NewMockSiteAuditRepository(ctrl),
		pages:  mocks.NewMockPageInsightRepository(ctrl),
		events: mocks.NewMockInsightEventRepository(ctrl),
		ai:     mocks.NewMockAIInsightRepository(ctrl),
	}

	service := NewService(m.sites, m.audits, m.pages, m.events, m.ai).(*Service)
	service.now = func() time.Time { return now }
	return service, m
}

func errorCode(t *testing.T, err error) string {
	t.Helper()
	var coded apiErrors.CodedError
	require.True(t, errors.As(err, &coded), "erro sem código: %v", err)
	return coded.ErrorCode()
}

func TestService_CreateAudit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newService(ctrl, time.Now())
	ctx := context.Background()

	m.sites.EXPECT().GetByID(ctx, uint(1)).Return(&domain.Site{ID: 1}, nil)
	m.audits.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	audit, err := service.CreateAudit(ctx, &domain.SiteAudit{SiteID: 1, Status: domain.AuditStatusCompleted})
	require.NoError(t, err)
	assert.Equal(t, domain.AuditStatusPending, audit.Status)
}

func TestService_UpdateAuditStatus(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	score := 87.5

	tests := []struct {
		name         string
		current      domain.AuditStatus
		request      domain.UpdateAuditStatusRequest
		expectedCode string
		validate     func(t *testing.T, audit *domain.SiteAudit)
	}{
		{
			name:    "Pendente para em execução marca o início",
			current: domain.AuditStatusPending,
			request: domain.UpdateAuditStatusRequest{Status: domain.AuditStatusRunning},
			validate: func(t *testing.T, audit *domain.SiteAudit) {
				require.NotNil(t, audit.StartedAt)
				assert.Equal(t, now, *audit.StartedAt)
				assert.Nil(t, audit.CompletedAt)
			},
		},
		{
			name:    "Em execução para concluída grava nota e término",
			current: domain.AuditStatusRunning,
			request: domain.UpdateAuditStatusRequest{Status: domain.AuditStatusCompleted, Score: &score},
			validate: func(t *testing.T, audit *domain.SiteAudit) {
				require.NotNil(t, audit.CompletedAt)
				assert.Equal(t, 87.5, *audit.Score)
			},
		},
		{
			name:         "Concluída não volta para em execução",
			current:      domain.AuditStatusCompleted,
			request:      domain.UpdateAuditStatusRequest{Status: domain.AuditStatusRunning},
			expectedCode: apiErrors.ErrInvalidTransition,
		},
		{
			name:         "Status desconhecido",
			current:      domain.AuditStatusPending,
			request:      domain.UpdateAuditStatusRequest{Status: "paused"},
			expectedCode: apiErrors.ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newService(ctrl, now)
			ctx := context.Background()

			m.audits.EXPECT().GetByID(ctx, uint(5)).Return(&domain.SiteAudit{ID: 5, SiteID: 1, Status: tt.current}, nil)
			if tt.expectedCode == "" {
				m.audits.EXPECT().Update(ctx, gomock.Any()).Return(nil)
			}

			request := tt.request
			audit, err := service.UpdateAuditStatus(ctx, 5, &request)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, errorCode(t, err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.request.Status, audit.Status)
			tt.validate(t, audit)
		})
	}
}

func TestService_AddPageInsight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newService(ctrl, time.Now())
	ctx := context.Background()

	t.Run("Herda o site da auditoria", func(t *testing.T) {
		m.audits.EXPECT().GetByID(ctx, uint(5)).Return(&domain.SiteAudit{ID: 5, SiteID: 3}, nil)
		m.pages.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		page, err := service.AddPageInsight(ctx, &domain.PageInsight{AuditID: 5, URL: "https://loja.com.br/"})
		require.NoError(t, err)
		assert.Equal(t, uint(3), page.SiteID)
	})

	t.Run("Auditoria inexistente", func(t *testing.T) {
		m.audits.EXPECT().GetByID(ctx, uint(6)).Return(nil, nil)

		_, err := service.AddPageInsight(ctx, &domain.PageInsight{AuditID: 6, URL: "https://loja.com.br/"})
		assert.Equal(t, apiErrors.ErrResourceNotFound, errorCode(t, err))
	})
}

func TestService_CreateAIInsight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newService(ctrl, time.Now())
	ctx := context.Background()

	t.Run("Sem site não consulta sites", func(t *testing.T) {
		m.ai.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		_, err := service.CreateAIInsight(ctx, &domain.AIInsight{EntityID: 1, InsightType: "summary"})
		assert.NoError(t, err)
	})

	t.Run("Site informado precisa existir", func(t *testing.T) {
		siteID := uint(40)
		m.sites.EXPECT().GetByID(ctx, siteID).Return(nil, nil)

		_, err := service.CreateAIInsight(ctx, &domain.AIInsight{EntityID: 1, SiteID: &siteID, InsightType: "summary"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestService_ListEvents_InvalidSeverity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newService(ctrl, time.Now())
	severity := domain.EventSeverity("fatal")

	_, err := service.ListEvents(context.Background(), 1, domain.InsightEventFilter{Severity: &severity})
	assert.Equal(t, apiErrors.ErrInvalidFormat, errorCode(t, err))
}

func TestService_EscopoDeEntidade(t *testing.T) {
	ctx := domain.WithEntityScope(context.Background(), 1)

	t.Run("auditoria de site alheio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service, m := newService(ctrl, time.Now())

		m.audits.EXPECT().GetByID(ctx, uint(3)).Return(&domain.SiteAudit{ID: 3, SiteID: 9}, nil)
		m.sites.EXPECT().GetByID(ctx, uint(9)).Return(&domain.Site{ID: 9, EntityID: 2}, nil)

		_, err := service.GetAudit(ctx, 3)
		assert.Equal(t, apiErrors.ErrResourceNotFound, errorCode(t, err))
	})

	t.Run("exclusão de evento de site alheio não chega ao repositório", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service, m := newService(ctrl, time.Now())

		m.events.EXPECT().GetByID(ctx, uint(5)).Return(&domain.InsightEvent{ID: 5, SiteID: 9}, nil)
		m.sites.EXPECT().GetByID(ctx, uint(9)).Return(&domain.Site{ID: 9, EntityID: 2}, nil)

		err := service.DeleteEvent(ctx, 5)
		assert.Equal(t, apiErrors.ErrResourceNotFound, errorCode(t, err))
	})

	t.Run("insight de outra entidade", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service, m := newService(ctrl, time.Now())

		m.ai.EXPECT().GetByID(ctx, uint(7)).Return(&domain.AIInsight{ID: 7, EntityID: 2}, nil)

		_, err := service.GetAIInsight(ctx, 7)
		assert.Equal(t, apiErrors.ErrResourceNotFound, errorCode(t, err))
	})

	t.Run("listagem de insights de outra entidade", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service, _ := newService(ctrl, time.Now())

		_, err := service.ListAIInsights(ctx, 2, domain.AIInsightFilter{})
		assert.Equal(t, apiErrors.ErrInsufficientPrivilege, errorCode(t, err))
	})
}
