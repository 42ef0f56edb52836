package config

const (
	defaultDataDir   = "~/.local/share/curator"
	defaultThemesDir = "~/.config/curator/themes"
	defaultLogDir    = "~/.local/share/curator/logs"

	defaultLibrarySection = "Movies"
	defaultLibraryTimeout = 30

	defaultMetadataBaseURL  = "https://api.themoviedb.org/3"
	defaultMetadataLanguage = "en-US"
	defaultMetadataTimeout  = 30

	defaultSuggestionsURL       = "http://localhost:11434"
	defaultSuggestionsModel     = "mistral:instruct"
	defaultSuggestionsTimeout   = 180
	defaultSuggestionsMaxTitles = 40

	defaultMaxCandidates      = 1000
	defaultMaxCollectionItems = 15
	defaultTitleLookupWorkers = 10
	defaultScoreCutoff        = 70
	defaultHitWeight          = 20
	defaultFuzzWeight         = 100

	defaultMonthlyCron = "0 3 1 * *"
	defaultCronFile    = "/etc/cron.d/curator"

	defaultNotifyTimeout = 10

	defaultAPIBind = "127.0.0.1:8787"

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:   defaultDataDir,
			ThemesDir: defaultThemesDir,
			LogDir:    defaultLogDir,
		},
		Library: Library{
			Section: defaultLibrarySection,
			Timeout: defaultLibraryTimeout,
		},
		Metadata: Metadata{
			BaseURL:  defaultMetadataBaseURL,
			Language: defaultMetadataLanguage,
			Timeout:  defaultMetadataTimeout,
		},
		Suggestions: Suggestions{
			URL:       defaultSuggestionsURL,
			Model:     defaultSuggestionsModel,
			Timeout:   defaultSuggestionsTimeout,
			MaxTitles: defaultSuggestionsMaxTitles,
		},
		Curation: Curation{
			MaxCandidates:      defaultMaxCandidates,
			MaxCollectionItems: defaultMaxCollectionItems,
			TitleLookupWorkers: defaultTitleLookupWorkers,
			ScoreCutoff:        defaultScoreCutoff,
			HitWeight:          defaultHitWeight,
			FuzzWeight:         defaultFuzzWeight,
		},
		Schedule: Schedule{
			MonthlyCron: defaultMonthlyCron,
			CronFile:    defaultCronFile,
		},
		Notifications: Notifications{
			RequestTimeout: defaultNotifyTimeout,
		},
		API: API{
			Bind: defaultAPIBind,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
