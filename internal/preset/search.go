package preset

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Match is one search hit. Lower Rank sorts first; Distance is the edit
// distance for fuzzy hits and zero for substring hits.
type Match struct {
	Preset   *Preset
	Rank     int
	Distance int
}

const (
	rankExact = iota
	rankPrefix
	rankContains
	rankTerm
	rankFuzzy
)

// Search finds presets whose id, name or terms resemble query. Typos are
// tolerated up to a third of the query length (at least two edits).
func (c *Catalog) Search(query string, limit int) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || c == nil {
		return nil
	}
	maxDist := len([]rune(q)) / 3
	if maxDist < 2 {
		maxDist = 2
	}

	var out []Match
	for _, p := range c.presets {
		name := strings.ToLower(p.Name())
		switch {
		case name == q || strings.ToLower(p.ID) == q:
			out = append(out, Match{Preset: p, Rank: rankExact})
			continue
		case strings.HasPrefix(name, q):
			out = append(out, Match{Preset: p, Rank: rankPrefix})
			continue
		case strings.Contains(name, q) || strings.Contains(strings.ToLower(p.ID), q):
			out = append(out, Match{Preset: p, Rank: rankContains})
			continue
		}
		if termHit(p.Terms, q) {
			out = append(out, Match{Preset: p, Rank: rankTerm})
			continue
		}
		best := levenshtein.ComputeDistance(q, name)
		for _, t := range p.Terms {
			if d := levenshtein.ComputeDistance(q, strings.ToLower(t)); d < best {
				best = d
			}
		}
		if best <= maxDist {
			out = append(out, Match{Preset: p, Rank: rankFuzzy, Distance: best})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Rank != out[j].Rank {
			return out[i].Rank < out[j].Rank
		}
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Preset.Name() < out[j].Preset.Name()
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func termHit(terms []string, q string) bool {
	for _, t := range terms {
		if strings.HasPrefix(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}
