package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelValidate(t *testing.T) {
	valid := func() *Channel {
		return &Channel{Name: " Google Ads ", Category: ChannelCategoryPaid, AvgCPC: 1.2}
	}

	t.Run("canal válido tem o nome normalizado", func(t *testing.T) {
		channel := valid()
		assert.NoError(t, channel.Validate())
		assert.Equal(t, "Google Ads", channel.Name)
	})

	tests := []struct {
		name   string
		mutate func(c *Channel)
	}{
		{"sem nome", func(c *Channel) { c.Name = "  " }},
		{"categoria inválida", func(c *Channel) { c.Category = "viral" }},
		{"média negativa", func(c *Channel) { c.AvgCTR = -0.1 }},
		{"segmentação inválida", func(c *Channel) { c.DemographicModifiers = JSONMap{"language": "xyz"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			channel := valid()
			tt.mutate(channel)
			assert.True(t, IsValidationError(channel.Validate()))
		})
	}
}

func TestChannelValidate_ReportsFirstNegativeAverage(t *testing.T) {
	// repetido para pegar qualquer dependência da ordem de iteração
	for i := 0; i < 20; i++ {
		channel := &Channel{
			Name:              "Google Ads",
			Category:          ChannelCategoryPaid,
			AvgCPM:            -1,
			AvgCPC:            -1,
			AvgCTR:            -1,
			AvgConversionRate: -1,
		}

		var validationErr *ValidationError
		require.ErrorAs(t, channel.Validate(), &validationErr)
		assert.Equal(t, "avg_cpm", validationErr.Field)
	}

	channel := &Channel{Name: "Google Ads", Category: ChannelCategoryPaid, AvgCTR: -1, AvgConversionRate: -1}
	var validationErr *ValidationError
	require.ErrorAs(t, channel.Validate(), &validationErr)
	assert.Equal(t, "avg_ctr", validationErr.Field)
}

func TestAuditStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to AuditStatus
		allowed  bool
	}{
		{AuditStatusPending, AuditStatusRunning, true},
		{AuditStatusPending, AuditStatusFailed, true},
		{AuditStatusRunning, AuditStatusCompleted, true},
		{AuditStatusRunning, AuditStatusFailed, true},
		{AuditStatusPending, AuditStatusCompleted, false},
		{AuditStatusCompleted, AuditStatusRunning, false},
		{AuditStatusFailed, AuditStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}
