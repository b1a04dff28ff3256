package config

// Default configuration values.
const (
	defaultServiceName       = "audioguide-analyzer"
	defaultServiceVersion    = "1.0.0"
	defaultConcurrency       = 4
	defaultInputPath         = "data/posts.json"
	defaultOutputDir         = "output"
	defaultEnhancedPostsFile = "enhanced_posts.json"
	defaultMetricsFile       = "audio_guide_metrics.json"
	defaultComparisonFile    = "museum_comparison.json"
	defaultPositiveThreshold = 0.15
	defaultNegativeThreshold = -0.15
	defaultNegationWindow    = 3
	defaultThemeMinFrequency = 2
	defaultThemeTopK         = 10
	defaultRankingLimit      = 10
	defaultReferenceYear     = 2024
	defaultLogLevel          = "info"
	defaultLogFormat         = "json"
)

// Config holds all configuration for the analyzer.
type Config struct {
	Service  ServiceConfig  `yaml:"service"`
	IO       IOConfig       `yaml:"io"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Concurrency int    `env:"ANALYZER_CONCURRENCY" yaml:"concurrency"`
}

// IOConfig holds input/output paths for the batch run.
type IOConfig struct {
	InputPath         string `env:"ANALYZER_INPUT_PATH" yaml:"input_path"`
	OutputDir         string `env:"ANALYZER_OUTPUT_DIR" yaml:"output_dir"`
	EnhancedPostsFile string `yaml:"enhanced_posts_file"`
	MetricsFile       string `yaml:"metrics_file"`
	ComparisonFile    string `yaml:"comparison_file"`
}

// AnalysisConfig holds tunables for the analysis strategies.
type AnalysisConfig struct {
	// PositiveThreshold and NegativeThreshold are the symmetric sentiment
	// score boundaries: score > positive -> positive label, score <
	// negative -> negative label, else neutral.
	PositiveThreshold float64 `yaml:"positive_threshold"`
	NegativeThreshold float64 `yaml:"negative_threshold"`
	// NegationWindow is the number of tokens before a polarity token in
	// which a negation token flips its sign.
	NegationWindow int `yaml:"negation_window"`
	// ThemeMinFrequency is the minimum n-gram frequency for a theme
	// candidate to be kept.
	ThemeMinFrequency int `yaml:"theme_min_frequency"`
	// ThemeTopK caps the per-museum common_themes list.
	ThemeTopK int `yaml:"theme_top_k"`
	// RankingLimit caps the comparison ranking lists.
	RankingLimit int `yaml:"ranking_limit"`
	// ReferenceYear resolves relative dates like "3 years ago" so that
	// regenerated output is reproducible.
	ReferenceYear int `yaml:"reference_year"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL"  yaml:"level"`
	Format string `env:"LOG_FORMAT" yaml:"format"`
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	setIODefaults(&cfg.IO)
	setAnalysisDefaults(&cfg.Analysis)
	setLoggingDefaults(&cfg.Logging)
}

func setServiceDefaults(s *ServiceConfig) {
	if s.Name == "" {
		s.Name = defaultServiceName
	}
	if s.Version == "" {
		s.Version = defaultServiceVersion
	}
	if s.Concurrency == 0 {
		s.Concurrency = defaultConcurrency
	}
}

func setIODefaults(io *IOConfig) {
	if io.InputPath == "" {
		io.InputPath = defaultInputPath
	}
	if io.OutputDir == "" {
		io.OutputDir = defaultOutputDir
	}
	if io.EnhancedPostsFile == "" {
		io.EnhancedPostsFile = defaultEnhancedPostsFile
	}
	if io.MetricsFile == "" {
		io.MetricsFile = defaultMetricsFile
	}
	if io.ComparisonFile == "" {
		io.ComparisonFile = defaultComparisonFile
	}
}

func setAnalysisDefaults(a *AnalysisConfig) {
	if a.PositiveThreshold == 0 {
		a.PositiveThreshold = defaultPositiveThreshold
	}
	if a.NegativeThreshold == 0 {
		a.NegativeThreshold = defaultNegativeThreshold
	}
	if a.NegationWindow == 0 {
		a.NegationWindow = defaultNegationWindow
	}
	if a.ThemeMinFrequency == 0 {
		a.ThemeMinFrequency = defaultThemeMinFrequency
	}
	if a.ThemeTopK == 0 {
		a.ThemeTopK = defaultThemeTopK
	}
	if a.RankingLimit == 0 {
		a.RankingLimit = defaultRankingLimit
	}
	if a.ReferenceYear == 0 {
		a.ReferenceYear = defaultReferenceYear
	}
}

func setLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = defaultLogLevel
	}
	if l.Format == "" {
		l.Format = defaultLogFormat
	}
}
