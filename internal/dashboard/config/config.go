package config

import (
	"VCS_Status_Dashboard/internal/dashboard/model"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server  ServerConfig
	Feed    FeedConfig
	Fetch   FetchConfig
	Startup StartupConfig
	Redis   RedisConfig
	Kafka   KafkaConfig
	Mail    MailConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFile         string        `envconfig:"LOG_FILE"`
	LongPollTimeout time.Duration `envconfig:"LONG_POLL_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type FeedConfig struct {
	Datasources          SourceList        `envconfig:"DATASOURCES" required:"true"`
	CheckRatings         model.RatingTable `envconfig:"CHECK_RATINGS"`
	DefaultRating        int               `envconfig:"DEFAULT_RATING" default:"1"`
	UpdateInterval       time.Duration     `envconfig:"UPDATE_INTERVAL" default:"1m"`
	InSyncThreshold      time.Duration     `envconfig:"INSYNC_THRESHOLD" default:"5m"`
	IgnoreFolderPrefix   string            `envconfig:"IGNORE_FOLDER_PREFIX" default:"\\_"`
	RefreshFields        []string          `envconfig:"REFRESH_FIELDS" default:"xslrefreshtime,refreshtime"`
	Timezone             string            `envconfig:"FEED_TIMEZONE" default:"Local"`
	SourceTimeout        time.Duration     `envconfig:"SOURCE_TIMEOUT" default:"30s"`
	MaxConcurrentSources int               `envconfig:"MAX_CONCURRENT_SOURCES" default:"4"`
	// SinkTimeout bounds every alert sink call and event publish made by the poller.
	SinkTimeout          time.Duration     `envconfig:"SINK_TIMEOUT" default:"10s"`
}

type FetchConfig struct {
	BaseURL        string        `envconfig:"FEED_BASE_URL"`
	CacheMode      string        `envconfig:"FETCH_CACHE_MODE" default:"no-cache"`
	Credentials    string        `envconfig:"FETCH_CREDENTIALS" default:"same-origin"`
	Username       string        `envconfig:"FETCH_USERNAME"`
	Password       string        `envconfig:"FETCH_PASSWORD"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"10s"`
	MaxRetries     int           `envconfig:"MAX_RETRIES" default:"3"`
	InitialBackoff time.Duration `envconfig:"INITIAL_BACKOFF" default:"1s"`
	CacheTTL       time.Duration `envconfig:"FEED_CACHE_TTL" default:"1m"`
}

type StartupConfig struct {
	InitialSearch      string   `envconfig:"INITIAL_SEARCH"`
	InitialDatasources []string `envconfig:"INITIAL_DATASOURCES"`
}

type RedisConfig struct {
	Host      string        `envconfig:"REDIS_HOST"`
	Port      int           `envconfig:"REDIS_PORT" default:"6379"`
	Password  string        `envconfig:"REDIS_PASSWORD"`
	DB        int           `envconfig:"REDIS_DB" default:"0"`
	Retention time.Duration `envconfig:"REDIS_FEED_RETENTION" default:"24h"`
}

type KafkaConfig struct {
	Brokers         []string `envconfig:"KAFKA_BROKERS"`
	EventTopic      string   `envconfig:"KAFKA_EVENT_TOPIC" default:"dashboard-events"`
	ControlTopic    string   `envconfig:"KAFKA_CONTROL_TOPIC"`
	ConsumerGroupID string   `envconfig:"KAFKA_CONSUMER_GROUP_ID" default:"dashboard"`
}

type MailConfig struct {
	Email            string   `envconfig:"MAIL_EMAIL"`
	Password         string   `envconfig:"MAIL_PASSWORD"`
	Host             string   `envconfig:"MAIL_HOST"`
	Port             int      `envconfig:"MAIL_PORT" default:"587"`
	AlertRecipients  []string `envconfig:"MAIL_ALERT_RECIPIENTS"`
	ReportRecipients []string `envconfig:"MAIL_REPORT_RECIPIENTS"`
	ReportCron       string   `envconfig:"REPORT_CRON"`
}

// Enabled reports whether the mail integration is configured.
func (c MailConfig) Enabled() bool {
	return c.Host != "" && c.Email != ""
}

func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

// Ratings merges DEFAULT_RATING into the rating table unless the table already has a default entry.
func (c FeedConfig) Ratings() model.RatingTable {
	res := make(model.RatingTable, len(c.CheckRatings)+1)
	for k, v := range c.CheckRatings {
		res[k] = v
	}
	if _, ok := res[model.DefaultRatingKey]; !ok {
		res[model.DefaultRatingKey] = c.DefaultRating
	}
	return res
}

// Location resolves FEED_TIMEZONE. Empty and "Local" mean the process time zone.
func (c FeedConfig) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, "Local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("FeedConfig.Location: %w", err)
	}
	return loc, nil
}

// SourceList decodes "name|checksURL|availabilityURL[|enabled]" entries separated by ';'.
// A datasource without the enabled field is enabled.
type SourceList []model.Datasource

func (l *SourceList) Decode(value string) error {
	var res SourceList
	for _, entry := range strings.Split(value, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		fields := strings.Split(entry, "|")
		if len(fields) != 3 && len(fields) != 4 {
			return fmt.Errorf("datasource %q: expected name|checksURL|availabilityURL[|enabled]", entry)
		}
		source := model.Datasource{
			Name:            strings.TrimSpace(fields[0]),
			ChecksURL:       strings.TrimSpace(fields[1]),
			AvailabilityURL: strings.TrimSpace(fields[2]),
			Enabled:         true,
		}
		if source.Name == "" || source.ChecksURL == "" || source.AvailabilityURL == "" {
			return fmt.Errorf("datasource %q: name and urls must not be empty", entry)
		}
		if len(fields) == 4 {
			enabled, err := strconv.ParseBool(strings.TrimSpace(fields[3]))
			if err != nil {
				return fmt.Errorf("datasource %q: %w", entry, err)
			}
			source.Enabled = enabled
		}
		res = append(res, source)
	}
	if len(res) == 0 {
		return fmt.Errorf("no datasource configured")
	}
	*l = res
	return nil
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
