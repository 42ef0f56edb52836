package candidates

import "curator/internal/candidates/tmdb"

// unknownYear marks candidates whose release date was absent or malformed.
const unknownYear = "????"

// Movie is one externally-sourced candidate record. Instances are built at
// the aggregation boundary via FromResult and carry explicit defaults for
// optional source fields: Rating 0, Year "????".
type Movie struct {
	ID     int64
	Title  string
	Year   string
	Rating float64
}

// FromResult builds a Movie from a raw search result.
func FromResult(result tmdb.Result) Movie {
	year := unknownYear
	if len(result.ReleaseDate) >= 4 {
		year = result.ReleaseDate[:4]
	}
	return Movie{
		ID:     result.ID,
		Title:  result.Title,
		Year:   year,
		Rating: result.VoteAverage,
	}
}
