package usecase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hutecki/bankiety-api/internal/application/usecase"
	"github.com/hutecki/bankiety-api/internal/domain"
	"github.com/hutecki/bankiety-api/internal/domain/entity"
)

func agedMovement(id string, d entity.Domain, age time.Duration) *entity.Movement {
	ts := time.Now().Add(-age)
	return &entity.Movement{
		ID: id, Domain: d, ProductID: "p-" + id,
		Direction: entity.DirectionUsage, Quantity: qty("1"),
		EmployeeName: "Anna", OccurredAt: ts, CreatedAt: ts,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Retention cleanup
// ──────────────────────────────────────────────────────────────────────────────

func TestRetentionCleanup_DeletesOnlyAgedEntries(t *testing.T) {
	repo := newFakeMovementRepo(
		agedMovement("old-1", entity.DomainAlcohol, 45*24*time.Hour),
		agedMovement("old-2", entity.DomainSuchy, 60*24*time.Hour),
		agedMovement("fresh", entity.DomainAlcohol, 24*time.Hour),
	)
	uc := usecase.NewRetentionUseCase(repo, testLogger())

	resp, err := uc.Cleanup("all")
	require.NoError(t, err)

	assert.Equal(t, int64(2), resp.TotalDeleted)
	assert.Equal(t, int64(1), resp.Results["alkohole"].Deleted)
	assert.Equal(t, int64(1), resp.Results["suchy"].Deleted)
	assert.Equal(t, int64(0), resp.Results["naciagi"].Deleted)
	assert.Len(t, repo.entries, 1, "fresh entries must survive")
}

func TestRetentionCleanup_SecondRunDeletesNothing(t *testing.T) {
	repo := newFakeMovementRepo(agedMovement("old", entity.DomainAlcohol, 45*24*time.Hour))
	uc := usecase.NewRetentionUseCase(repo, testLogger())

	first, err := uc.Cleanup("alkohole")
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.TotalDeleted)

	second, err := uc.Cleanup("alkohole")
	require.NoError(t, err)
	assert.Equal(t, int64(0), second.TotalDeleted, "cleanup is idempotent")
}

func TestRetentionCleanup_ScopedToOneDomain(t *testing.T) {
	repo := newFakeMovementRepo(
		agedMovement("old-a", entity.DomainAlcohol, 45*24*time.Hour),
		agedMovement("old-s", entity.DomainSuchy, 45*24*time.Hour),
	)
	uc := usecase.NewRetentionUseCase(repo, testLogger())

	resp, err := uc.Cleanup("alkohole")
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.TotalDeleted)
	assert.Len(t, repo.entries, 1, "other domains keep their entries")
}

func TestRetentionCleanup_UnknownScopeRejected(t *testing.T) {
	uc := usecase.NewRetentionUseCase(newFakeMovementRepo(), testLogger())

	_, err := uc.Cleanup("mrozonki")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestRetentionCleanup_DomainFailureDoesNotAbortOthers(t *testing.T) {
	repo := newFakeMovementRepo(
		agedMovement("old-a", entity.DomainAlcohol, 45*24*time.Hour),
		agedMovement("old-s", entity.DomainSuchy, 45*24*time.Hour),
	)
	repo.failDelete[entity.DomainAlcohol] = errors.New("deadlock detected")
	uc := usecase.NewRetentionUseCase(repo, testLogger())

	resp, err := uc.Cleanup("all")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Results["alkohole"].Error)
	assert.Equal(t, int64(1), resp.Results["suchy"].Deleted, "healthy domains still run")
	assert.Equal(t, int64(1), resp.TotalDeleted)
}

func TestRetentionStats_CountsWithoutMutating(t *testing.T) {
	repo := newFakeMovementRepo(
		agedMovement("old", entity.DomainAlcohol, 45*24*time.Hour),
		agedMovement("fresh", entity.DomainAlcohol, 24*time.Hour),
	)
	uc := usecase.NewRetentionUseCase(repo, testLogger())

	resp, err := uc.Stats("alkohole")
	require.NoError(t, err)

	stats := resp.Stats["alkohole"]
	assert.Equal(t, int64(2), stats.TotalEntries)
	assert.Equal(t, int64(1), stats.EligibleForDeletion)
	assert.Equal(t, int64(1), resp.TotalToKeep)
	assert.Len(t, repo.entries, 2, "stats must not delete anything")
}

// ──────────────────────────────────────────────────────────────────────────────
// Confirmation-gated bulk reset
// ──────────────────────────────────────────────────────────────────────────────

func TestZeroQuantities_RequiresConfirmationToken(t *testing.T) {
	p := &entity.Product{ID: "p1", Domain: entity.DomainAlcohol, Name: "Prosecco DOC", Category: "wino_biale", Unit: "szt", Quantity: qty("24")}
	repo := newFakeProductRepo(p)
	uc := usecase.NewResetUseCase(repo, testLogger())

	for _, confirm := range []string{"", "yes", "zero_all_quantities"} {
		_, err := uc.ZeroQuantities("all", confirm)
		require.ErrorIs(t, err, domain.ErrConfirmationRequired, "confirm %q", confirm)
	}

	stored, _ := repo.GetByID("p1")
	assert.True(t, stored.Quantity.Equal(qty("24")), "nothing may change without the token")
}

func TestZeroQuantities_ResetsQuantitiesAndTotals(t *testing.T) {
	alcohol := &entity.Product{
		ID: "p1", Domain: entity.DomainAlcohol, Name: "Prosecco DOC", Category: "wino_biale", Unit: "szt",
		Quantity: qty("24"), TotalDelivered: qty("100"), TotalUsed: qty("76"),
	}
	naciag := &entity.Product{
		ID: "p2", Domain: entity.DomainNaciagi, Name: "Pepsi", Category: "napoje", Subcategory: "pepsi", Unit: "l",
		Quantity: qty("40"),
	}
	suchy := &entity.Product{
		ID: "p3", Domain: entity.DomainSuchy, Name: "Cukier", Category: "suchy", Subcategory: "cukier", Unit: "kg",
		Quantity: qty("30"), TotalDelivered: qty("200"), TotalUsed: qty("170"),
	}
	repo := newFakeProductRepo(alcohol, naciag, suchy)
	uc := usecase.NewResetUseCase(repo, testLogger())

	resp, err := uc.ZeroQuantities("all", usecase.ConfirmationToken)
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.TotalUpdated)

	storedA, _ := repo.GetByID("p1")
	assert.True(t, storedA.Quantity.IsZero())
	assert.True(t, storedA.TotalDelivered.IsZero(), "the alcohol reset clears the counters too")

	storedN, _ := repo.GetByID("p2")
	assert.True(t, storedN.Quantity.IsZero())

	storedS, _ := repo.GetByID("p3")
	assert.True(t, storedS.Quantity.IsZero())
	assert.True(t, storedS.TotalDelivered.Equal(qty("200")), "suchy counters survive as an all-time record")
	assert.True(t, storedS.TotalUsed.Equal(qty("170")))
}

func TestZeroQuantities_SecondRunIsIdempotent(t *testing.T) {
	p := &entity.Product{ID: "p1", Domain: entity.DomainSuchy, Name: "Cukier", Category: "suchy", Subcategory: "cukier", Unit: "kg", Quantity: qty("30")}
	repo := newFakeProductRepo(p)
	uc := usecase.NewResetUseCase(repo, testLogger())

	_, err := uc.ZeroQuantities("suchy", usecase.ConfirmationToken)
	require.NoError(t, err)

	resp, err := uc.ZeroQuantities("suchy", usecase.ConfirmationToken)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.TotalUpdated, "rows are touched again but stay zero")

	stored, _ := repo.GetByID("p1")
	assert.True(t, stored.Quantity.IsZero())
}

func TestZeroQuantities_DomainFailureReportedPerDomain(t *testing.T) {
	a := &entity.Product{ID: "p1", Domain: entity.DomainAlcohol, Name: "Prosecco DOC", Category: "wino_biale", Unit: "szt", Quantity: qty("10")}
	s := &entity.Product{ID: "p2", Domain: entity.DomainSuchy, Name: "Cukier", Category: "suchy", Subcategory: "cukier", Unit: "kg", Quantity: qty("30")}
	repo := newFakeProductRepo(a, s)
	repo.failZero[entity.DomainAlcohol] = errors.New("connection reset")
	uc := usecase.NewResetUseCase(repo, testLogger())

	resp, err := uc.ZeroQuantities("all", usecase.ConfirmationToken)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Results["alkohole"].Error)
	assert.Equal(t, int64(1), resp.Results["suchy"].Updated)
	assert.Equal(t, int64(1), resp.TotalUpdated)
}
