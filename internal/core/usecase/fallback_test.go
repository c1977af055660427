package usecase

import (
	"context"
	"errors"
	"restate-gateway/internal/contextkeys"
	"restate-gateway/internal/core/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWithFallback(t *testing.T) {
	logger := contextkeys.LoggerFromContext(context.Background())

	t.Run("success keeps fetched value", func(t *testing.T) {
		got := resolveWithFallback(logger, "msg",
			func() (int, error) { return 1, nil },
			func() int { return 2 },
		)
		assert.Equal(t, 1, got)
	})

	t.Run("error switches to fallback", func(t *testing.T) {
		got := resolveWithFallback(logger, "msg",
			func() (int, error) { return 1, errors.New("boom") },
			func() int { return 2 },
		)
		assert.Equal(t, 2, got)
	})
}

func TestFallbackLatest(t *testing.T) {
	latest := fallbackLatest()
	require.Len(t, latest, 2)
	assert.Equal(t, "Luxury Villa", latest[0].Name)
	assert.Equal(t, float64(850000), latest[0].Price)
	assert.Equal(t, "Modern Apartment", latest[1].Name)
	assert.Equal(t, float64(550000), latest[1].Price)
}

func TestFallbackProperties(t *testing.T) {
	tests := []struct {
		name    string
		spec    domain.QuerySpec
		wantIDs []string
	}{
		{name: "no filter", spec: domain.QuerySpec{}, wantIDs: []string{"1", "2", "3", "4"}},
		{name: "All is not a filter", spec: domain.QuerySpec{Filter: domain.FilterAll}, wantIDs: []string{"1", "2", "3", "4"}},
		{name: "type filter", spec: domain.QuerySpec{Filter: "Condos"}, wantIDs: []string{"4"}},
		{name: "unknown type", spec: domain.QuerySpec{Filter: "Duplex"}, wantIDs: []string{}},
		{name: "limit", spec: domain.QuerySpec{Limit: 3}, wantIDs: []string{"1", "2", "3"}},
		{name: "limit above size", spec: domain.QuerySpec{Limit: 10}, wantIDs: []string{"1", "2", "3", "4"}},
		{name: "filter then limit", spec: domain.QuerySpec{Filter: "Villa", Limit: 1}, wantIDs: []string{"1"}},
		{name: "query is inert", spec: domain.QuerySpec{Query: "Austin"}, wantIDs: []string{"1", "2", "3", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fallbackProperties(tt.spec)
			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
				if tt.spec.HasTypeFilter() {
					assert.Equal(t, tt.spec.Filter, string(p.Type))
				}
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFallbackPropertyByID(t *testing.T) {
	for _, id := range []string{"1", "2", "3", "4"} {
		p := fallbackPropertyByID(id)
		require.NotNil(t, p, id)
		assert.Equal(t, id, p.ID)
	}

	assert.Nil(t, fallbackPropertyByID("5"))
	assert.Nil(t, fallbackPropertyByID(""))
}

func TestMockPropertiesAreCopies(t *testing.T) {
	first := domain.MockProperties()
	first[0].Name = "changed"
	first[0].Facilities[0] = "changed"

	second := domain.MockProperties()
	assert.Equal(t, "Luxury Villa", second[0].Name)
	assert.Equal(t, domain.FacilityGym, second[0].Facilities[0])
}
