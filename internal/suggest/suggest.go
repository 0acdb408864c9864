package suggest

import (
	"slices"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// MinSimilarity is the lowest Similarity at which a candidate that is not a
// fuzzy match is still suggested.
const MinSimilarity = 0.5

type scored struct {
	name     string
	distance int
}

// Names returns up to limit candidates resembling target, closest first.
// Ties are broken alphabetically. A limit <= 0 means no limit.
func Names(target string, candidates []string, limit int) []string {
	if target == "" || len(candidates) == 0 {
		return nil
	}

	keep := make(map[string]struct{}, len(candidates))

	for _, r := range fuzzy.RankFindFold(target, candidates) {
		keep[r.Target] = struct{}{}
	}

	for _, c := range candidates {
		if Similarity(target, c) >= MinSimilarity {
			keep[c] = struct{}{}
		}
	}

	norm := Normalize(target)

	found := make([]scored, 0, len(keep))
	for name := range keep {
		found = append(found, scored{name: name, distance: Distance(norm, Normalize(name))})
	}

	slices.SortFunc(found, func(a, b scored) int {
		if a.distance != b.distance {
			return a.distance - b.distance
		}

		return strings.Compare(a.name, b.name)
	})

	if limit > 0 && len(found) > limit {
		found = found[:limit]
	}

	out := make([]string, len(found))
	for i, s := range found {
		out[i] = s.name
	}

	return out
}
