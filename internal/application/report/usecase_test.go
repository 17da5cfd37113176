package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hutecki/bankiety-api/internal/application/report"
	"github.com/hutecki/bankiety-api/internal/domain"
	"github.com/hutecki/bankiety-api/internal/domain/entity"
	"github.com/hutecki/bankiety-api/internal/domain/repository"
	"github.com/hutecki/bankiety-api/pkg/logger"
)

type fakeReportRepo struct {
	rows  map[entity.Domain][]repository.ProductTurnover
	calls int
}

func (r *fakeReportRepo) TurnoverByProduct(_ context.Context, d entity.Domain, _, _ time.Time) ([]repository.ProductTurnover, error) {
	r.calls++
	return r.rows[d], nil
}

type fakeCache struct {
	store map[string]string
	sets  int
}

var errCacheMiss = errors.New("cache miss")

func newFakeCache() *fakeCache { return &fakeCache{store: make(map[string]string)} }

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	v, ok := c.store[key]
	if !ok {
		return "", errCacheMiss
	}
	return v, nil
}

func (c *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.store[key] = value.(string)
	c.sets++
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	delete(c.store, key)
	return nil
}

func qty(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

func alcoholRows() []repository.ProductTurnover {
	return []repository.ProductTurnover{
		{
			ProductID:   "p1",
			ProductName: "Prosecco DOC",
			Category:    "wino_biale",
			Unit:        "szt",
			Delivered:   qty("30"),
			Used:        qty("18"),
			Current:     qty("12"),
		},
	}
}

func window() (time.Time, time.Time) {
	to := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	return to.AddDate(0, 0, -30), to
}

func TestTurnover_SumsDeliveredAndUsed(t *testing.T) {
	repo := &fakeReportRepo{rows: map[entity.Domain][]repository.ProductTurnover{
		entity.DomainAlcohol: alcoholRows(),
	}}
	uc := report.NewTurnoverUseCase(repo, nil, nil, testLogger())

	from, to := window()
	resp, err := uc.Turnover(context.Background(), "alkohole", from, to)
	require.NoError(t, err)

	require.Len(t, resp.Domains, 1)
	require.Len(t, resp.Domains[0].Products, 1)
	p := resp.Domains[0].Products[0]
	assert.True(t, p.Turnover.Equal(qty("48")), "turnover is delivered plus used")
	assert.True(t, p.Current.Equal(qty("12")))
}

func TestTurnover_AllScopeCoversEveryDomain(t *testing.T) {
	repo := &fakeReportRepo{rows: map[entity.Domain][]repository.ProductTurnover{}}
	uc := report.NewTurnoverUseCase(repo, nil, nil, testLogger())

	from, to := window()
	resp, err := uc.Turnover(context.Background(), "all", from, to)
	require.NoError(t, err)
	assert.Len(t, resp.Domains, 3)
	assert.Equal(t, 3, repo.calls)
}

func TestTurnover_InvertedWindowRejected(t *testing.T) {
	uc := report.NewTurnoverUseCase(&fakeReportRepo{}, nil, nil, testLogger())

	from, to := window()
	_, err := uc.Turnover(context.Background(), "all", to, from)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestTurnover_SecondCallServedFromCache(t *testing.T) {
	repo := &fakeReportRepo{rows: map[entity.Domain][]repository.ProductTurnover{
		entity.DomainAlcohol: alcoholRows(),
	}}
	cache := newFakeCache()
	uc := report.NewTurnoverUseCase(repo, cache, nil, testLogger())

	from, to := window()
	_, err := uc.Turnover(context.Background(), "alkohole", from, to)
	require.NoError(t, err)
	require.Equal(t, 1, repo.calls)
	require.Equal(t, 1, cache.sets)

	resp, err := uc.Turnover(context.Background(), "alkohole", from, to)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls, "the cached window must not hit the repository again")
	require.Len(t, resp.Domains, 1)
	assert.True(t, resp.Domains[0].Products[0].Turnover.Equal(qty("48")))
}

func TestTurnover_DifferentWindowMissesCache(t *testing.T) {
	repo := &fakeReportRepo{rows: map[entity.Domain][]repository.ProductTurnover{
		entity.DomainAlcohol: alcoholRows(),
	}}
	cache := newFakeCache()
	uc := report.NewTurnoverUseCase(repo, cache, nil, testLogger())

	from, to := window()
	_, err := uc.Turnover(context.Background(), "alkohole", from, to)
	require.NoError(t, err)

	_, err = uc.Turnover(context.Background(), "alkohole", from.AddDate(0, 0, -1), to)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}
