package candidates

import (
	"context"
	"log/slog"
	"sync"

	"curator/internal/candidates/tmdb"
	"curator/internal/logging"
)

// defaultTitleWorkers bounds the title-lookup fan-out when the caller does
// not supply a positive worker count.
const defaultTitleWorkers = 10

// Searcher is the metadata-search dependency of the aggregation functions.
// *tmdb.Client satisfies it.
type Searcher interface {
	SearchMovies(ctx context.Context, query string) ([]tmdb.Result, error)
}

// CollectByKeywords issues one search per keyword, in keyword order, and
// collects distinct candidates meeting the rating floor until maxResults
// have been gathered. A failing search is logged and treated as zero results
// for that keyword.
func CollectByKeywords(ctx context.Context, logger *slog.Logger, searcher Searcher, keywords []string, maxResults int, minRating float64) []Movie {
	log := logging.NewComponentLogger(logger, "candidates")
	seen := make(map[int64]struct{})
	var movies []Movie
	for _, keyword := range keywords {
		if capReached(len(movies), maxResults) {
			break
		}
		results, err := searcher.SearchMovies(ctx, keyword)
		if err != nil {
			log.Warn("keyword search failed",
				logging.String("keyword", keyword),
				logging.Error(err))
			continue
		}
		for _, result := range results {
			if capReached(len(movies), maxResults) {
				break
			}
			if _, ok := seen[result.ID]; ok {
				continue
			}
			movie := FromResult(result)
			if movie.Rating < minRating {
				continue
			}
			seen[movie.ID] = struct{}{}
			movies = append(movies, movie)
		}
	}
	return movies
}

// CollectByTitles resolves each title to its best search result,
// concurrently, bounded by workers. Only the first-ranked result per title
// counts; failing or empty lookups contribute nothing and do not affect the
// others. Candidates are assembled in input title order regardless of
// completion order and deduplicated by identifier. The returned set holds
// every identifier kept.
func CollectByTitles(ctx context.Context, logger *slog.Logger, searcher Searcher, titles []string, minRating float64, workers int) ([]Movie, map[int64]struct{}) {
	log := logging.NewComponentLogger(logger, "candidates")
	seen := make(map[int64]struct{})
	if len(titles) == 0 {
		return nil, seen
	}
	if workers <= 0 {
		workers = defaultTitleWorkers
	}
	if workers > len(titles) {
		workers = len(titles)
	}

	// Workers write only their own index, so the slice needs no lock.
	best := make([]*tmdb.Result, len(titles))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results, err := searcher.SearchMovies(ctx, titles[idx])
				if err != nil {
					log.Warn("title lookup failed",
						logging.String("title", titles[idx]),
						logging.Error(err))
					continue
				}
				if len(results) == 0 {
					continue
				}
				result := results[0]
				best[idx] = &result
			}
		}()
	}
	for idx := range titles {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	movies := make([]Movie, 0, len(titles))
	for _, result := range best {
		if result == nil {
			continue
		}
		movie := FromResult(*result)
		if movie.Rating < minRating {
			continue
		}
		if _, ok := seen[movie.ID]; ok {
			continue
		}
		seen[movie.ID] = struct{}{}
		movies = append(movies, movie)
	}
	return movies, seen
}

// Merge combines AI-suggested candidates with keyword-search candidates. The
// ai slice forms the output prefix verbatim; keyword candidates whose
// identifier already appears among ai are dropped. Callers record len(ai) so
// the matcher can attribute provenance positionally.
func Merge(ai, keyword []Movie) []Movie {
	merged := make([]Movie, 0, len(ai)+len(keyword))
	merged = append(merged, ai...)
	known := make(map[int64]struct{}, len(ai))
	for _, movie := range ai {
		known[movie.ID] = struct{}{}
	}
	for _, movie := range keyword {
		if _, ok := known[movie.ID]; ok {
			continue
		}
		merged = append(merged, movie)
	}
	return merged
}

func capReached(have, max int) bool {
	return max > 0 && have >= max
}
