package rarity_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryft-xyz/ryft-indexer/internal/logger"
	"github.com/ryft-xyz/ryft-indexer/internal/rarity"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestCompute_Empty(t *testing.T) {
	scores, attributes := rarity.Compute(nil, 100)
	assert.Nil(t, scores)
	assert.Nil(t, attributes)
}

func TestCompute_ScoresAndRanks(t *testing.T) {
	tokens := []rarity.Token{
		{ID: "1", Traits: []rarity.Trait{
			{Name: "Background", Value: "Blue"},
			{Name: "Eyes", Value: "Laser"},
		}},
		{ID: "2", Traits: []rarity.Trait{
			{Name: "Background", Value: "Blue"},
			{Name: "Eyes", Value: "Plain"},
		}},
		{ID: "3", Traits: []rarity.Trait{
			{Name: "Background", Value: "Red"},
			{Name: "Eyes", Value: "Plain"},
			{Name: "Hat", Value: "Crown"},
		}},
		{ID: "4", Traits: []rarity.Trait{
			{Name: "Background", Value: "Blue"},
		}},
	}

	scores, attributes := rarity.Compute(tokens, 4)
	require.Len(t, scores, 4)

	// Trait counts per token: 2, 2, 3, 1 so three distinct counts.
	// Token 1: 4/3 + 4/1 = 5.333..., bonus 3*2*4/2 = 12
	assert.InDelta(t, 5.3333, scores[0].TraitScore, 0.001)
	assert.InDelta(t, 12.0, scores[0].Bonus, 0.001)

	// Token 2: 4/3 + 4/2 = 3.333..., bonus 12
	assert.InDelta(t, 3.3333, scores[1].TraitScore, 0.001)

	// Token 3: 4/1 + 4/2 + 4/1 = 10, bonus 3*2*4/1 = 24
	assert.InDelta(t, 10.0, scores[2].TraitScore, 0.001)
	assert.InDelta(t, 24.0, scores[2].Bonus, 0.001)

	// Token 4: 4/3 = 1.333..., bonus 24
	assert.InDelta(t, 1.3333, scores[3].TraitScore, 0.001)

	// Totals: 17.33, 15.33, 34, 25.33 so ranks 3, 4, 1, 2
	assert.Equal(t, 3, scores[0].Rank)
	assert.Equal(t, 4, scores[1].Rank)
	assert.Equal(t, 1, scores[2].Rank)
	assert.Equal(t, 2, scores[3].Rank)

	// 5 distinct trait values plus 3 trait-count rows
	require.Len(t, attributes, 8)

	byKey := make(map[[2]string]int)
	for _, a := range attributes {
		byKey[[2]string{a.Name, a.Value}] = a.Occurrences
	}
	assert.Equal(t, 3, byKey[[2]string{"Background", "Blue"}])
	assert.Equal(t, 1, byKey[[2]string{"Background", "Red"}])
	assert.Equal(t, 2, byKey[[2]string{"Eyes", "Plain"}])
	assert.Equal(t, 1, byKey[[2]string{"Hat", "Crown"}])
	assert.Equal(t, 2, byKey[[2]string{rarity.TraitCountAttribute, "2"}])
	assert.Equal(t, 1, byKey[[2]string{rarity.TraitCountAttribute, "3"}])
	assert.Equal(t, 1, byKey[[2]string{rarity.TraitCountAttribute, "1"}])
}

func TestCompute_DeclaredSupplyDivisor(t *testing.T) {
	// Declared supply larger than the fetched set: scores scale with the
	// declared supply, not with len(tokens)
	tokens := []rarity.Token{
		{ID: "1", Traits: []rarity.Trait{{Name: "Fur", Value: "Gold"}}},
		{ID: "2", Traits: []rarity.Trait{{Name: "Fur", Value: "Gold"}}},
	}

	scores, _ := rarity.Compute(tokens, 100)
	require.Len(t, scores, 2)
	assert.InDelta(t, 50.0, scores[0].TraitScore, 0.001)
}

func TestCompute_ZeroSupplyFallsBackToTokenCount(t *testing.T) {
	tokens := []rarity.Token{
		{ID: "1", Traits: []rarity.Trait{{Name: "Fur", Value: "Gold"}}},
		{ID: "2", Traits: []rarity.Trait{{Name: "Fur", Value: "Brown"}}},
	}

	scores, _ := rarity.Compute(tokens, 0)
	require.Len(t, scores, 2)
	assert.InDelta(t, 2.0, scores[0].TraitScore, 0.001)
}

func TestCompute_StableTieOrder(t *testing.T) {
	// Identical tokens tie on total score; ranks follow input order
	tokens := []rarity.Token{
		{ID: "a", Traits: []rarity.Trait{{Name: "Fur", Value: "Gold"}}},
		{ID: "b", Traits: []rarity.Trait{{Name: "Fur", Value: "Gold"}}},
		{ID: "c", Traits: []rarity.Trait{{Name: "Fur", Value: "Gold"}}},
	}

	scores, _ := rarity.Compute(tokens, 3)
	assert.Equal(t, 1, scores[0].Rank)
	assert.Equal(t, 2, scores[1].Rank)
	assert.Equal(t, 3, scores[2].Rank)
}

func TestCompute_NamelessTraitGroupsByValue(t *testing.T) {
	tokens := []rarity.Token{
		{ID: "1", Traits: []rarity.Trait{{Value: "Legendary"}}},
		{ID: "2", Traits: []rarity.Trait{{Value: "Legendary"}}},
	}

	_, attributes := rarity.Compute(tokens, 2)

	found := false
	for _, a := range attributes {
		if a.Name == "Legendary" && a.Value == "Legendary" {
			found = true
			assert.Equal(t, 2, a.Occurrences)
		}
	}
	assert.True(t, found)
}

func TestCompute_EmptyTraitSkipped(t *testing.T) {
	tokens := []rarity.Token{
		{ID: "1", Traits: []rarity.Trait{
			{Name: "", Value: ""},
			{Name: "Fur", Value: "Gold"},
		}},
		{ID: "2", Traits: []rarity.Trait{{Name: "Fur", Value: "Gold"}}},
	}

	scores, attributes := rarity.Compute(tokens, 2)
	require.Len(t, scores, 2)

	// Both tokens end up with a single counted trait
	assert.InDelta(t, scores[0].TraitScore, scores[1].TraitScore, 0.001)
	assert.InDelta(t, scores[0].Bonus, scores[1].Bonus, 0.001)

	for _, a := range attributes {
		assert.NotEmpty(t, a.Name)
	}
}

func TestCompute_MalformedTokenStillRanked(t *testing.T) {
	// A token with no traits gets no trait score but keeps its
	// trait-count bonus and a place in the ranking
	tokens := []rarity.Token{
		{ID: "1", Traits: []rarity.Trait{{Name: "Fur", Value: "Gold"}}},
		{ID: "2"},
	}

	scores, _ := rarity.Compute(tokens, 2)
	require.Len(t, scores, 2)

	assert.Zero(t, scores[1].TraitScore)
	assert.Greater(t, scores[1].Bonus, 0.0)
	assert.NotZero(t, scores[1].Rank)
}
