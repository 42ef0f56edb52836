package matching

import (
	"log/slog"
	"sort"
	"strings"

	"curator/internal/candidates"
	"curator/internal/library"
	"curator/internal/logging"
	"curator/internal/services"
	"curator/internal/textutil"
)

// Default scoring policy: a candidate keyword hit is worth 20 points, a
// perfect fuzzy title echo 100, and an item needs 70 to survive — several
// keyword hits or a near-exact title.
const (
	DefaultMaxItems    = 15
	DefaultHitWeight   = 20
	DefaultFuzzWeight  = 100
	DefaultScoreCutoff = 70
)

// Options control the matching policy. Zero fields fall back to the package
// defaults.
type Options struct {
	MaxItems    int
	HitWeight   int
	FuzzWeight  int
	ScoreCutoff int
}

func (o Options) withDefaults() Options {
	if o.MaxItems <= 0 {
		o.MaxItems = DefaultMaxItems
	}
	if o.HitWeight <= 0 {
		o.HitWeight = DefaultHitWeight
	}
	if o.FuzzWeight <= 0 {
		o.FuzzWeight = DefaultFuzzWeight
	}
	if o.ScoreCutoff <= 0 {
		o.ScoreCutoff = DefaultScoreCutoff
	}
	return o
}

// Result is the matcher output: the curated items in order plus how many of
// them were attributed to the AI-origin candidate prefix.
type Result struct {
	Items     []library.Item
	AIMatched int
}

// KeywordMatched returns the number of items not attributed to the AI
// prefix.
func (r Result) KeywordMatched() int {
	return len(r.Items) - r.AIMatched
}

type scoredItem struct {
	index int
	score float64
}

// Match selects up to opts.MaxItems library items for the merged candidate
// pool. The exact pass walks candidates in order and appends items whose
// normalized titles coincide, attributing provenance positionally: matches
// found at a candidate index below aiCount count as AI-matched. When the
// exact pass leaves room, the fuzzy pass scores every unmatched library item
// against the theme keywords and appends those clearing the cutoff, best
// first. Empty candidates or an empty library yield an empty result; an
// empty keyword set is an error once the fuzzy pass is reached.
func Match(logger *slog.Logger, pool []candidates.Movie, items []library.Item, themeKeywords []string, aiCount int, opts Options) (Result, error) {
	log := logging.NewComponentLogger(logger, "matcher")
	opts = opts.withDefaults()

	if len(pool) == 0 || len(items) == 0 {
		return Result{}, nil
	}

	// First occurrence wins when two items normalize identically.
	index := make(map[string]int, len(items))
	for i, item := range items {
		key := textutil.NormalizeTitle(item.Title)
		if _, ok := index[key]; !ok {
			index[key] = i
		}
	}

	var result Result
	matched := make(map[int]struct{}, opts.MaxItems)

	for pos, movie := range pool {
		if len(result.Items) >= opts.MaxItems {
			break
		}
		idx, ok := index[textutil.NormalizeTitle(movie.Title)]
		if !ok {
			continue
		}
		if _, ok := matched[idx]; ok {
			continue
		}
		matched[idx] = struct{}{}
		result.Items = append(result.Items, items[idx])
		if pos < aiCount {
			result.AIMatched++
			log.Debug("ai match", logging.String("title", items[idx].Title))
		} else {
			log.Debug("exact keyword match", logging.String("title", items[idx].Title))
		}
	}

	if len(result.Items) < opts.MaxItems {
		if len(themeKeywords) == 0 {
			return Result{}, services.Wrap(services.ErrValidation, "matcher", "fuzzy pass", "no theme keywords", nil)
		}
		for _, scored := range scoreUnmatched(items, matched, themeKeywords, opts) {
			if len(result.Items) >= opts.MaxItems {
				break
			}
			if _, ok := matched[scored.index]; ok {
				continue
			}
			matched[scored.index] = struct{}{}
			result.Items = append(result.Items, items[scored.index])
			log.Debug("fuzzy keyword match",
				logging.String("title", items[scored.index].Title),
				logging.Float64("score", scored.score))
		}
	}

	kept := result.Items[:0]
	for _, item := range result.Items {
		if item.RatingKey == "" {
			continue
		}
		kept = append(kept, item)
	}
	result.Items = kept
	if len(result.Items) > opts.MaxItems {
		result.Items = result.Items[:opts.MaxItems]
	}

	log.Info("matching complete",
		logging.Int("matched", len(result.Items)),
		logging.Int("ai_matched", result.AIMatched),
		logging.Int("keyword_matched", result.KeywordMatched()))
	return result, nil
}

// scoreUnmatched scores every library item outside matched against the theme
// keywords and returns those clearing the cutoff, descending by score with
// ties in library enumeration order.
func scoreUnmatched(items []library.Item, matched map[int]struct{}, themeKeywords []string, opts Options) []scoredItem {
	lowered := make([]string, len(themeKeywords))
	normalized := make([]string, len(themeKeywords))
	for i, kw := range themeKeywords {
		lowered[i] = strings.ToLower(kw)
		normalized[i] = textutil.NormalizeTitle(kw)
	}

	var scored []scoredItem
	for i, item := range items {
		if _, ok := matched[i]; ok {
			continue
		}
		blob := searchBlob(item)
		hits := 0
		for _, kw := range lowered {
			if strings.Contains(blob, kw) {
				hits++
			}
		}
		if hits == 0 {
			continue
		}

		title := textutil.NormalizeTitle(item.Title)
		fuzz := 0.0
		for _, kw := range normalized {
			if ratio := textutil.SimilarityRatio(title, kw); ratio > fuzz {
				fuzz = ratio
			}
		}

		total := float64(hits*opts.HitWeight) + fuzz*float64(opts.FuzzWeight)
		if total >= float64(opts.ScoreCutoff) {
			scored = append(scored, scoredItem{index: i, score: total})
		}
	}
	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].score > scored[b].score
	})
	return scored
}

// searchBlob joins an item's textual attributes into one lowercased string
// for substring matching.
func searchBlob(item library.Item) string {
	parts := []string{item.Title, item.Summary, strings.Join(item.Genres, " ")}
	return strings.ToLower(strings.Join(parts, " "))
}
