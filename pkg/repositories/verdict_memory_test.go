package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sh5080/satyavadi-go/pkg/configs"
	structure "github.com/sh5080/satyavadi-go/pkg/types/structures"
)

func sampleVerdict() *structure.ContentVerdict {
	return &structure.ContentVerdict{
		IsMisinformation: true,
		RiskScore:        0.9,
		RiskFactors:      []string{"Miracle claim"},
		Analysis:         "Unsupported claim.",
		SuggestedTopics:  []structure.Topic{structure.TopicHealth},
		Strategy:         structure.StrategyRemote,
	}
}

func TestInMemoryVerdictRepository_SaveAndGet(t *testing.T) {
	repo := NewInMemoryVerdictRepository(time.Hour)
	ctx := context.Background()
	assert.Equal(t, configs.CacheBackendMemory, repo.Backend())

	missing, err := repo.GetVerdict(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.SaveVerdict(ctx, "abc", sampleVerdict()))

	got, err := repo.GetVerdict(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, sampleVerdict(), got)
}

func TestInMemoryVerdictRepository_Expiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := newInMemoryVerdictRepository(time.Minute, func() time.Time { return now })
	ctx := context.Background()

	require.NoError(t, repo.SaveVerdict(ctx, "abc", sampleVerdict()))

	now = now.Add(30 * time.Second)
	got, err := repo.GetVerdict(ctx, "abc")
	require.NoError(t, err)
	assert.NotNil(t, got)

	now = now.Add(time.Minute)
	got, err = repo.GetVerdict(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NotContains(t, repo.cache, "abc")
}

func TestInMemoryVerdictRepository_Validation(t *testing.T) {
	repo := NewInMemoryVerdictRepository(time.Hour)
	ctx := context.Background()

	_, err := repo.GetVerdict(ctx, "")
	assert.Error(t, err)
	assert.Error(t, repo.SaveVerdict(ctx, "", sampleVerdict()))
	assert.Error(t, repo.SaveVerdict(ctx, "abc", nil))
}

func TestInMemoryVerdictRepository_ReturnsCopies(t *testing.T) {
	repo := NewInMemoryVerdictRepository(time.Hour)
	ctx := context.Background()

	verdict := sampleVerdict()
	require.NoError(t, repo.SaveVerdict(ctx, "abc", verdict))
	verdict.RiskFactors[0] = "mutated"

	got, err := repo.GetVerdict(ctx, "abc")
	require.NoError(t, err)
	got.RiskFactors[0] = "mutated again"

	again, err := repo.GetVerdict(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, []string{"Miracle claim"}, again.RiskFactors)
}
