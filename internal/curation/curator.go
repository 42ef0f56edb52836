package curation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"curator/internal/candidates"
	"curator/internal/candidates/tmdb"
	"curator/internal/config"
	"curator/internal/history"
	"curator/internal/library"
	"curator/internal/logging"
	"curator/internal/matching"
	"curator/internal/notifications"
	"curator/internal/services"
	"curator/internal/services/ollama"
	"curator/internal/suggestions"
	"curator/internal/themes"
)

var (
	// ErrRunActive reports that another invocation already holds the run lock.
	ErrRunActive = errors.New("another curation run is active")
	// ErrNoCandidates reports that keyword searches produced no candidates.
	ErrNoCandidates = errors.New("no metadata candidates found for theme keywords")
	// ErrNoMatches reports that no candidate matched a library item.
	ErrNoMatches = errors.New("no library items matched the theme")
)

// Library is the media-server surface a curation run drives. *library.Client
// satisfies it.
type Library interface {
	ListMovies(ctx context.Context) ([]library.Item, error)
	PublishCollection(ctx context.Context, name string, items []library.Item) error
}

// Suggester produces model-backed keywords and titles. *suggestions.Service
// satisfies it.
type Suggester interface {
	ThemeKeywords(ctx context.Context, collectionName string) []string
	MovieTitles(ctx context.Context, themePrompt string, maxTitles int) ([]string, error)
}

// Recorder persists run outcomes. *history.Store satisfies it.
type Recorder interface {
	Record(ctx context.Context, run history.Run) (*history.Run, error)
}

// Outcome summarizes a finished curation run.
type Outcome struct {
	RunID          string
	Theme          string
	Collection     string
	Status         history.RunStatus
	Matched        int
	AIMatched      int
	KeywordMatched int
	Keywords       []string
	Items          []library.Item
	StartedAt      time.Time
	FinishedAt     time.Time
}

// Duration returns the wall-clock time the run took.
func (o *Outcome) Duration() time.Duration {
	if o == nil || o.StartedAt.IsZero() || o.FinishedAt.IsZero() {
		return 0
	}
	return o.FinishedAt.Sub(o.StartedAt)
}

// Curator executes curation runs against injected collaborators.
type Curator struct {
	cfg      *config.Config
	searcher candidates.Searcher
	library  Library
	suggest  Suggester
	recorder Recorder
	notifier notifications.Service
	logger   *slog.Logger
	lock     *flock.Flock
}

// New wires a curator from configuration, constructing the metadata, library,
// and suggestion clients it needs. The history store is shared with the
// caller so commands can read back what runs record.
func New(cfg *config.Config, store *history.Store, logger *slog.Logger) (*Curator, error) {
	searcher, err := tmdb.NewClient(tmdb.Config{
		APIKey:         cfg.Metadata.APIKey,
		BaseURL:        cfg.Metadata.BaseURL,
		Language:       cfg.Metadata.Language,
		TimeoutSeconds: cfg.Metadata.Timeout,
	})
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "curation", "init metadata client", "", err)
	}
	lib, err := library.NewClient(library.Config{
		URL:            cfg.Library.URL,
		Token:          cfg.Library.Token,
		Section:        cfg.Library.Section,
		TimeoutSeconds: cfg.Library.Timeout,
	}, logger)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "curation", "init library client", "", err)
	}
	generator := ollama.NewClient(ollama.Config{
		BaseURL:        cfg.Suggestions.URL,
		Model:          cfg.Suggestions.Model,
		TimeoutSeconds: cfg.Suggestions.Timeout,
	})
	suggest := suggestions.NewService(generator, logger)
	return NewWithDependencies(cfg, searcher, lib, suggest, store, notifications.NewService(cfg), logger), nil
}

// NewWithDependencies wires a curator from pre-built collaborators (used in
// tests).
func NewWithDependencies(cfg *config.Config, searcher candidates.Searcher, lib Library, suggest Suggester, recorder Recorder, notifier notifications.Service, logger *slog.Logger) *Curator {
	return &Curator{
		cfg:      cfg,
		searcher: searcher,
		library:  lib,
		suggest:  suggest,
		recorder: recorder,
		notifier: notifier,
		logger:   logging.NewComponentLogger(logger, "curation"),
		lock:     flock.New(cfg.LockPath()),
	}
}

// Run executes a full curation pass for the named theme and publishes the
// resulting collection. Runs that gather no candidates or match nothing are
// recorded as failed and returned as errors; history and notification
// failures are logged, never fatal.
func (c *Curator) Run(ctx context.Context, themeName string) (*Outcome, error) {
	return c.run(ctx, themeName, true)
}

// Preview executes the matching pipeline for the named theme without
// publishing the collection or recording history.
func (c *Curator) Preview(ctx context.Context, themeName string) (*Outcome, error) {
	return c.run(ctx, themeName, false)
}

// RunDetached starts a publishing run for the named theme on a background
// goroutine. The theme lookup and lock acquisition happen synchronously, so
// the caller learns immediately about an unknown theme or an already active
// run; the job itself finishes after RunDetached returns.
func (c *Curator) RunDetached(ctx context.Context, themeName string) error {
	theme, err := themes.LoadByName(c.cfg.Paths.ThemesDir, themeName)
	if err != nil {
		return err
	}
	unlock, err := c.acquireLock()
	if err != nil {
		return err
	}
	ctx = services.WithTheme(ctx, theme.Slug)
	go func() {
		defer unlock()
		if _, err := c.runTheme(ctx, theme, true); err != nil {
			logging.WithContext(ctx, c.logger).Error("detached curation run failed", logging.Error(err))
		}
	}()
	return nil
}

func (c *Curator) run(ctx context.Context, themeName string, publish bool) (*Outcome, error) {
	theme, err := themes.LoadByName(c.cfg.Paths.ThemesDir, themeName)
	if err != nil {
		return nil, err
	}
	unlock, err := c.acquireLock()
	if err != nil {
		return nil, err
	}
	defer unlock()
	return c.runTheme(ctx, theme, publish)
}

// acquireLock takes the run lock, returning the release function. A held
// lock reports ErrRunActive under the transient marker.
func (c *Curator) acquireLock() (func(), error) {
	acquired, err := c.lock.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "curation", "acquire run lock", c.lock.Path(), err)
	}
	if !acquired {
		return nil, services.Wrap(services.ErrTransient, "curation", "acquire run lock", "", ErrRunActive)
	}
	return func() {
		if err := c.lock.Unlock(); err != nil {
			c.logger.Warn("failed to release run lock", logging.Error(err))
		}
	}, nil
}

func (c *Curator) runTheme(ctx context.Context, theme themes.Theme, publish bool) (*Outcome, error) {
	started := time.Now().UTC()
	collection := theme.CollectionName()
	runID := uuid.NewString()
	ctx = services.WithRunID(ctx, runID)
	ctx = services.WithTheme(ctx, theme.Slug)
	log := logging.WithContext(ctx, c.logger).With(logging.String("collection", collection))
	log.Info("curation run started")

	keywords := theme.Keywords
	if len(keywords) == 0 {
		keywords = c.suggest.ThemeKeywords(services.WithStage(ctx, "keywords"), collection)
	}
	keywords = suggestions.SanitizeKeywords(keywords)
	if len(keywords) == 0 {
		return nil, services.Wrap(services.ErrValidation, "curation", "resolve keywords", fmt.Sprintf("no usable keywords for theme %s", theme.Slug), nil)
	}
	log.Info("theme keywords resolved",
		logging.Int("count", len(keywords)),
		logging.String("keywords", strings.Join(keywords, ", ")))

	gatherCtx := services.WithStage(ctx, "gather")
	keywordPool := candidates.CollectByKeywords(gatherCtx, logging.WithContext(gatherCtx, c.logger), c.searcher, keywords, c.cfg.Curation.MaxCandidates, theme.Filters.MinRating)
	if len(keywordPool) == 0 {
		return c.fail(ctx, theme, collection, keywords, started, publish, ErrNoCandidates)
	}
	log.Info("keyword candidates gathered", logging.Int("count", len(keywordPool)))

	pool := keywordPool
	aiCount := 0
	if theme.HasPrompt() {
		pool, aiCount = c.mergeTitleCandidates(gatherCtx, log, theme, keywordPool)
	}

	matchCtx := services.WithStage(ctx, "match")
	items, err := c.library.ListMovies(matchCtx)
	if err != nil {
		return nil, err
	}
	log.Info("library inventory loaded", logging.Int("items", len(items)))

	result, err := matching.Match(logging.WithContext(matchCtx, c.logger), pool, items, keywords, aiCount, matching.Options{
		MaxItems:    c.cfg.Curation.MaxCollectionItems,
		HitWeight:   c.cfg.Curation.HitWeight,
		FuzzWeight:  c.cfg.Curation.FuzzWeight,
		ScoreCutoff: c.cfg.Curation.ScoreCutoff,
	})
	if err != nil {
		return nil, err
	}
	if len(result.Items) == 0 {
		return c.fail(ctx, theme, collection, keywords, started, publish, ErrNoMatches)
	}

	outcome := &Outcome{
		RunID:          runID,
		Theme:          theme.Slug,
		Collection:     collection,
		Status:         history.StatusSucceeded,
		Matched:        len(result.Items),
		AIMatched:      result.AIMatched,
		KeywordMatched: result.KeywordMatched(),
		Keywords:       keywords,
		Items:          result.Items,
		StartedAt:      started,
	}

	if !publish {
		outcome.FinishedAt = time.Now().UTC()
		log.Info("curation preview finished",
			logging.Int("matched", outcome.Matched),
			logging.Int("ai_matched", outcome.AIMatched))
		return outcome, nil
	}

	if err := c.library.PublishCollection(services.WithStage(ctx, "publish"), collection, result.Items); err != nil {
		return c.fail(ctx, theme, collection, keywords, started, publish, err)
	}
	outcome.FinishedAt = time.Now().UTC()

	c.record(ctx, outcome, "")
	c.notifyCompleted(ctx, outcome)
	log.Info("curation run finished",
		logging.Int("matched", outcome.Matched),
		logging.Int("ai_matched", outcome.AIMatched),
		logging.Duration("duration", outcome.Duration()))
	return outcome, nil
}

// mergeTitleCandidates runs the prompt-driven title pass and merges its
// candidates ahead of the keyword pool. Any failure degrades to the keyword
// pool alone.
func (c *Curator) mergeTitleCandidates(ctx context.Context, log *slog.Logger, theme themes.Theme, keywordPool []candidates.Movie) ([]candidates.Movie, int) {
	titles, err := c.suggest.MovieTitles(ctx, theme.Prompt, c.cfg.Suggestions.MaxTitles)
	if err != nil {
		log.Warn("title suggestions unavailable, continuing with keyword candidates", logging.Error(err))
		return keywordPool, 0
	}
	if len(titles) == 0 {
		log.Warn("title suggestions empty, continuing with keyword candidates")
		return keywordPool, 0
	}
	aiPool, _ := candidates.CollectByTitles(ctx, logging.WithContext(ctx, c.logger), c.searcher, titles, theme.Filters.MinRating, c.cfg.Curation.TitleLookupWorkers)
	if len(aiPool) == 0 {
		log.Warn("title lookups matched nothing, continuing with keyword candidates")
		return keywordPool, 0
	}
	merged := candidates.Merge(aiPool, keywordPool)
	log.Info("title candidates merged",
		logging.Int("ai", len(aiPool)),
		logging.Int("total", len(merged)))
	return merged, len(aiPool)
}

// fail finalizes a run that ended without a published collection: the failed
// outcome is recorded and notified when the run would have published, and the
// causing error is returned for the caller.
func (c *Curator) fail(ctx context.Context, theme themes.Theme, collection string, keywords []string, started time.Time, publish bool, cause error) (*Outcome, error) {
	outcome := &Outcome{
		Theme:      theme.Slug,
		Collection: collection,
		Status:     history.StatusFailed,
		Keywords:   keywords,
		StartedAt:  started,
		FinishedAt: time.Now().UTC(),
	}
	if id, ok := services.RunIDFromContext(ctx); ok {
		outcome.RunID = id
	}
	logging.WithContext(ctx, c.logger).Error("curation run failed", logging.Error(cause))
	if publish {
		c.record(ctx, outcome, services.FailureDetail(cause))
		c.notifyFailed(ctx, theme.Slug, cause)
	}
	return outcome, cause
}

func (c *Curator) record(ctx context.Context, outcome *Outcome, errorMessage string) {
	if c.recorder == nil {
		return
	}
	run, err := c.recorder.Record(ctx, history.Run{
		ID:             outcome.RunID,
		Theme:          outcome.Theme,
		Collection:     outcome.Collection,
		Status:         outcome.Status,
		Matched:        outcome.Matched,
		AIMatched:      outcome.AIMatched,
		KeywordMatched: outcome.KeywordMatched,
		Keywords:       outcome.Keywords,
		ErrorMessage:   errorMessage,
		StartedAt:      outcome.StartedAt,
		FinishedAt:     outcome.FinishedAt,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			c.logger.Debug("shutting down, could not record run history")
		} else {
			c.logger.Error("failed to record run history", logging.Error(err))
		}
		return
	}
	if run != nil {
		outcome.RunID = run.ID
	}
}

func (c *Curator) notifyCompleted(ctx context.Context, outcome *Outcome) {
	if c.notifier == nil {
		return
	}
	if err := c.notifier.NotifyRunCompleted(ctx, outcome.Collection, outcome.Matched, outcome.AIMatched); err != nil {
		c.logger.Debug("run completion notification failed", logging.Error(err))
	}
}

func (c *Curator) notifyFailed(ctx context.Context, theme string, cause error) {
	if c.notifier == nil {
		return
	}
	if err := c.notifier.NotifyRunFailed(ctx, theme, cause); err != nil {
		c.logger.Debug("run failure notification failed", logging.Error(err))
	}
}
