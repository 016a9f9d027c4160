package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/console-games/internal/entity"
	"github.com/rocketscienceinc/console-games/testing/suite"
)

func TestScoreRepository_Redis(t *testing.T) {
	ctx, st := suite.New(t)

	checkScoreRepository(ctx, t, NewScoreRepository(st.Storage))
}

func TestScoreRepository_RedisKeys(t *testing.T) {
	ctx, st := suite.New(t)
	scoreRepo := NewScoreRepository(st.Storage)

	// Given: one recorded round
	err := scoreRepo.Record(ctx, "abc", entity.RoundResult{Game: entity.GameTwentyOne, Outcome: entity.OutcomeComputer})
	require.NoError(t, err)

	// Then: the outcome field of the session hash is incremented
	count, err := st.Storage.HGet(ctx, "score:abc", "computer").Int()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestScoreRepository_RedisCorruptTally(t *testing.T) {
	ctx, st := suite.New(t)
	scoreRepo := NewScoreRepository(st.Storage)

	// Given: a tally field that is not a number
	require.NoError(t, st.Storage.HSet(ctx, "score:bad", "human", "many").Err())

	// When: the tally is read
	_, err := scoreRepo.Tally(ctx, "bad")

	// Then: the parse failure is reported
	require.Error(t, err)
}
