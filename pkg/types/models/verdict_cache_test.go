package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	structure "github.com/sh5080/satyavadi-go/pkg/types/structures"
)

func TestVerdictCache(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	verdict := &structure.ContentVerdict{
		IsMisinformation: true,
		RiskScore:        0.8,
		RiskFactors:      []string{"Miracle claim"},
		Analysis:         "Unsupported.",
		SuggestedTopics:  []structure.Topic{structure.TopicHealth, structure.TopicScience},
		Strategy:         structure.StrategyRemote,
	}

	cache := NewVerdictCache("hash", verdict, now, time.Hour)

	assert.Equal(t, "hash", cache.ContentHash)
	assert.Equal(t, now.Add(time.Hour), cache.ExpiresAt)
	assert.Equal(t, now.Add(time.Hour).Unix(), cache.TTL)
	assert.Equal(t, []string{"health", "science"}, cache.SuggestedTopics)
	assert.Equal(t, verdict, cache.Verdict())

	assert.False(t, cache.IsExpired(now.Add(59*time.Minute)))
	assert.True(t, cache.IsExpired(now.Add(61*time.Minute)))
}
