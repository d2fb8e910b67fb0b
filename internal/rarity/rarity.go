package rarity

import (
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/ryft-xyz/ryft-indexer/internal/logger"
)

// TraitCountAttribute is the synthetic attribute name recording how many
// tokens share each trait count.
const TraitCountAttribute = "Trait Count"

// Trait is a single (name, value) pair extracted from token metadata.
type Trait struct {
	Name  string
	Value string
}

// Token is one collection member with its extracted traits.
type Token struct {
	ID     string
	Traits []Trait
}

// Attribute is a distinct trait value with its occurrence count across
// the collection, ready to be persisted.
type Attribute struct {
	Name        string
	Value       string
	Occurrences int
}

// Score is the computed rarity for a single token. Rank 1 is the rarest.
type Score struct {
	TokenID    string
	TraitScore float64
	Bonus      float64
	Total      float64
	Rank       int
}

type traitKey struct {
	name  string
	value string
}

// groupingKey returns the key a trait is counted under. A trait with a
// missing name is grouped by its value alone.
func groupingKey(t Trait) (traitKey, bool) {
	switch {
	case t.Name != "":
		return traitKey{name: t.Name, value: t.Value}, true
	case t.Value != "":
		return traitKey{name: t.Value, value: t.Value}, true
	default:
		return traitKey{}, false
	}
}

// Compute scores every token in a collection and derives the collection's
// attribute occurrence table.
//
// The trait score of a token is the sum over its traits of
// supply / occurrences, so rarer trait values contribute more. A bonus
// rewards tokens with an unusual number of traits, independent of which
// traits they carry. The divisor is the collection's declared supply, not
// the number of fetched tokens: missing tokens bias all scores equally.
func Compute(tokens []Token, supply int64) ([]Score, []Attribute) {
	if len(tokens) == 0 {
		return nil, nil
	}
	if supply <= 0 {
		supply = int64(len(tokens))
	}
	fSupply := float64(supply)

	// Count occurrences of each distinct trait value and tally how many
	// tokens share each trait count
	traitCounts := make(map[traitKey]int)
	countHistogram := make(map[int]int)
	tokenTraitCounts := make([]int, len(tokens))

	for i, token := range tokens {
		n := 0
		for _, trait := range token.Traits {
			key, ok := groupingKey(trait)
			if !ok {
				logger.Warn("skipping trait with no name or value",
					zap.String("token_id", token.ID))
				continue
			}
			traitCounts[key]++
			n++
		}
		tokenTraitCounts[i] = n
		countHistogram[n]++
	}

	distinctCounts := len(countHistogram)

	scores := make([]Score, len(tokens))
	for i, token := range tokens {
		var traitScore float64
		for _, trait := range token.Traits {
			key, ok := groupingKey(trait)
			if !ok {
				continue
			}
			traitScore += fSupply / float64(traitCounts[key])
		}

		peers := countHistogram[tokenTraitCounts[i]]
		bonus := float64(distinctCounts) * 2 * fSupply / float64(peers)

		scores[i] = Score{
			TokenID:    token.ID,
			TraitScore: traitScore,
			Bonus:      bonus,
			Total:      traitScore + bonus,
		}
	}

	rank(scores)

	return scores, buildAttributes(traitCounts, countHistogram)
}

// rank assigns 1-based ranks by descending total score. Ties keep their
// input order, so reruns over the same data produce the same ranking.
func rank(scores []Score) {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]].Total > scores[order[b]].Total
	})
	for pos, idx := range order {
		scores[idx].Rank = pos + 1
	}
}

// buildAttributes flattens the count maps into a deterministic attribute
// list, including the synthetic trait-count rows.
func buildAttributes(traitCounts map[traitKey]int, countHistogram map[int]int) []Attribute {
	attributes := make([]Attribute, 0, len(traitCounts)+len(countHistogram))
	for key, count := range traitCounts {
		attributes = append(attributes, Attribute{
			Name:        key.name,
			Value:       key.value,
			Occurrences: count,
		})
	}
	for traitCount, occurrences := range countHistogram {
		attributes = append(attributes, Attribute{
			Name:        TraitCountAttribute,
			Value:       strconv.Itoa(traitCount),
			Occurrences: occurrences,
		})
	}

	sort.Slice(attributes, func(a, b int) bool {
		if attributes[a].Name != attributes[b].Name {
			return attributes[a].Name < attributes[b].Name
		}
		return attributes[a].Value < attributes[b].Value
	})
	return attributes
}
