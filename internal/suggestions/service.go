package suggestions

import (
	"context"
	"fmt"
	"log/slog"

	"curator/internal/logging"
	"curator/internal/services"
	"curator/internal/textutil"
)

const keywordCount = 7

// Generator produces free text for a prompt. *ollama.Client satisfies it.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Configured() bool
}

// Service wraps a text generator with the prompts and fallbacks curation
// runs need.
type Service struct {
	generator Generator
	logger    *slog.Logger
}

// NewService constructs a suggestion service. A nil generator disables
// model-backed suggestions; keyword generation then falls back to
// tokenizing the collection name.
func NewService(generator Generator, logger *slog.Logger) *Service {
	return &Service{
		generator: generator,
		logger:    logging.NewComponentLogger(logger, "suggestions"),
	}
}

func (s *Service) available() bool {
	return s != nil && s.generator != nil && s.generator.Configured()
}

// ThemeKeywords generates keywords for a collection name. When the generator
// is unavailable or returns nothing usable, the collection name itself is
// tokenized so the caller always has a deterministic keyword source.
func (s *Service) ThemeKeywords(ctx context.Context, collectionName string) []string {
	if s.available() {
		prompt := fmt.Sprintf(`List exactly %d keywords for the movie collection "%s". Return ONLY a simple JSON array of single-word keywords, like ["ThemeOne", "ThemeTwo", "ThemeThree", "ThemeEtc"]. No explanations, no categories, just the array.`, keywordCount, collectionName)
		raw, err := s.generator.Generate(ctx, prompt)
		if err != nil {
			s.logger.Warn("keyword generation failed, falling back to name tokens",
				logging.String("collection", collectionName),
				logging.Error(err))
		} else if keywords := ParseList(raw); len(keywords) > 0 {
			return keywords
		} else {
			s.logger.Warn("keyword generation returned nothing usable, falling back to name tokens",
				logging.String("collection", collectionName))
		}
	}
	return textutil.Tokenize(collectionName)
}

// MovieTitles asks the generator for up to maxTitles movie titles matching
// the theme prompt. Results are cleaned of subtitles, quotes, and
// conversational refusals. Failures are wrapped as external-service errors;
// callers degrade to keyword-only curation.
func (s *Service) MovieTitles(ctx context.Context, themePrompt string, maxTitles int) ([]string, error) {
	if !s.available() {
		return nil, services.Wrap(services.ErrConfiguration, "suggestions", "movie titles", "suggestion backend not configured", nil)
	}
	prompt := fmt.Sprintf("%s\n\nSuggest up to %d well-known movie titles that best fit this theme. Return ONLY a JSON list of movie titles (no years, no descriptions, no explanations).", themePrompt, maxTitles)
	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, services.Wrap(services.ErrExternalService, "suggestions", "movie titles", "title generation failed", err)
	}
	titles := CleanTitles(ParseList(raw))
	if maxTitles > 0 && len(titles) > maxTitles {
		titles = titles[:maxTitles]
	}
	return titles, nil
}
