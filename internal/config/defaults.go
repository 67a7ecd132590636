package config

const (
	defaultSourceURL              = "https://www.gutenberg.org/cache/epub/16452/pg16452.txt"
	defaultBodyStart              = "ENGLISH BLANK VERSE."
	defaultBodyEnd                = "FOOTNOTES"
	defaultRequestTimeoutSeconds  = 120
	defaultUserAgent              = "rhapsode/dev"
	defaultHeaderMarker           = "BOOK "
	defaultTranslatorTag          = "—Tr." // em dash + "Tr."
	defaultDownloadTimeoutSeconds = 300
	defaultLogFormat              = "console"
	defaultLogLevel               = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Source: Source{
			URL:                   defaultSourceURL,
			BodyStart:             defaultBodyStart,
			BodyEnd:               defaultBodyEnd,
			RequestTimeoutSeconds: defaultRequestTimeoutSeconds,
			UserAgent:             defaultUserAgent,
		},
		Cleaning: Cleaning{
			HeaderMarker:   defaultHeaderMarker,
			TranslatorTags: []string{defaultTranslatorTag},
			Modernize:      true,
		},
		Stopwords: Stopwords{
			Enabled:                true,
			DownloadTimeoutSeconds: defaultDownloadTimeoutSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
