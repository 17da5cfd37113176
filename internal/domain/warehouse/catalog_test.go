package warehouse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hutecki/bankiety-api/internal/domain"
	"github.com/hutecki/bankiety-api/internal/domain/entity"
	"github.com/hutecki/bankiety-api/internal/domain/warehouse"
)

func TestLookup_KnownAndUnknownDomains(t *testing.T) {
	for _, d := range []entity.Domain{entity.DomainAlcohol, entity.DomainNaciagi, entity.DomainSuchy} {
		cfg, err := warehouse.Lookup(d)
		require.NoError(t, err)
		assert.Equal(t, d, cfg.Domain)
		assert.NotEmpty(t, cfg.Categories)
		assert.NotEmpty(t, cfg.DefaultUnit)
	}

	_, err := warehouse.Lookup("mrozonki")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestParseScope(t *testing.T) {
	all, err := warehouse.ParseScope("all")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	empty, err := warehouse.ParseScope("")
	require.NoError(t, err)
	assert.Len(t, empty, 3, "empty scope means every domain")

	one, err := warehouse.ParseScope("naciagi")
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, entity.DomainNaciagi, one[0].Domain)

	_, err = warehouse.ParseScope("mrozonki")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestAllowsDirection(t *testing.T) {
	alcohol, err := warehouse.Lookup(entity.DomainAlcohol)
	require.NoError(t, err)
	naciagi, err := warehouse.Lookup(entity.DomainNaciagi)
	require.NoError(t, err)

	// dostawa and uzycie belong to every domain's vocabulary.
	for _, cfg := range warehouse.All() {
		assert.True(t, cfg.AllowsDirection(entity.DirectionDelivery), "%s dostawa", cfg.Domain)
		assert.True(t, cfg.AllowsDirection(entity.DirectionUsage), "%s uzycie", cfg.Domain)
	}

	assert.True(t, alcohol.AllowsDirection(entity.DirectionCorrection))
	assert.True(t, alcohol.AllowsDirection(entity.DirectionLoss))
	assert.False(t, naciagi.AllowsDirection(entity.DirectionCorrection))
	assert.False(t, naciagi.AllowsDirection(entity.DirectionLoss))
}

func TestValidSubcategory_DomainsWithoutSubcategories(t *testing.T) {
	alcohol, err := warehouse.Lookup(entity.DomainAlcohol)
	require.NoError(t, err)

	assert.True(t, alcohol.ValidSubcategory(""), "alcohol has no subcategory level")
	assert.False(t, alcohol.ValidSubcategory("wino_biale"))

	suchy, err := warehouse.Lookup(entity.DomainSuchy)
	require.NoError(t, err)
	assert.True(t, suchy.ValidSubcategory("cukier"))
	assert.False(t, suchy.ValidSubcategory(""))
	assert.False(t, suchy.ValidSubcategory("alkohol"))
}

func TestResetClearsTotals_OnlyForAlcohol(t *testing.T) {
	for _, cfg := range warehouse.All() {
		want := cfg.Domain == entity.DomainAlcohol
		assert.Equal(t, want, cfg.ResetClearsTotals, "%s", cfg.Domain)
	}
}

func TestDirectionAdds(t *testing.T) {
	assert.True(t, entity.DirectionDelivery.Adds())
	assert.True(t, entity.DirectionCorrection.Adds())
	assert.False(t, entity.DirectionUsage.Adds())
	assert.False(t, entity.DirectionLoss.Adds())
}
