package config

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

// RedisConfig holds redis connection settings.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// ServerConfig controls the HTTP API surface.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// SeedConfig controls the demo corpus and its synthetic engagement.
type SeedConfig struct {
	Total       int     `mapstructure:"total"`
	BoostMin    int     `mapstructure:"boost_min"`
	BoostMax    int     `mapstructure:"boost_max"`
	LikeMin     int     `mapstructure:"like_min"`
	LikeMax     int     `mapstructure:"like_max"`
	VoteMin     int     `mapstructure:"vote_min"`
	VoteMax     int     `mapstructure:"vote_max"`
	CommentRate float64 `mapstructure:"comment_rate"`
	ImageRate   float64 `mapstructure:"image_rate"`
}

// ImportConfig controls feed ingestion. Auto maps to the
// NEWSVERIFY_IMPORT_AUTO environment flag and gates the one-shot feed
// import at serve startup.
type ImportConfig struct {
	Auto    bool   `mapstructure:"auto"`
	FeedURL string `mapstructure:"feed_url"`
}

// OpenAIConfig enables the optional import summarizer when an API key is set.
type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// Config is the top-level configuration structure.
type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Server ServerConfig `mapstructure:"server"`
	Seed   SeedConfig   `mapstructure:"seed"`
	Import ImportConfig `mapstructure:"import"`
	OpenAI OpenAIConfig `mapstructure:"openai"`
}

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "127.0.0.1:6379"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Seed.Total == 0 {
		c.Seed.Total = 60
	}
	if c.Seed.BoostMin == 0 {
		c.Seed.BoostMin = 18
	}
	if c.Seed.BoostMax == 0 {
		c.Seed.BoostMax = 24
	}
	if c.Seed.LikeMin == 0 {
		c.Seed.LikeMin = 5
	}
	if c.Seed.LikeMax == 0 {
		c.Seed.LikeMax = 60
	}
	if c.Seed.VoteMin == 0 {
		c.Seed.VoteMin = 8
	}
	if c.Seed.VoteMax == 0 {
		c.Seed.VoteMax = 24
	}
	if c.Seed.CommentRate == 0 {
		c.Seed.CommentRate = 0.35
	}
	if c.Seed.ImageRate == 0 {
		c.Seed.ImageRate = 0.12
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4o-mini"
	}
}
