package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// MaxEntrySlots is the default number of simultaneous entry lanes
const MaxEntrySlots = 4

type Config struct {
	// Booking system
	ProviderHost      string
	APIID             string
	APISecret         string
	Username          string
	Password          string
	IDPattern         string
	ProviderRPS       float64
	ConnectivityHost  string
	ConnectivityProbe time.Duration

	// Event
	EventKey         string
	CheckBookingList bool
	CheckWaitingList bool
	Online           bool

	// Submission queue
	EntrySlots      int
	QueueSize       int
	ShutdownTimeout time.Duration
	SubmitTimeout   time.Duration

	// Export
	ExportDir string

	// Redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Operator surfaces
	Console       bool
	HTTPAddr      string
	DiscordToken  string
	ApplicationID string
	GuildID       string
	NoticeChannel string
}

// Load reads a .env file from the working directory when present and then the environment
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to read .env file: %v", err)
	}

	return FromEnv()
}

// FromEnv builds the configuration from the process environment only
func FromEnv() *Config {
	return &Config{
		ProviderHost:      getEnv("SWIPE_PROVIDER_HOST", ""),
		APIID:             getEnv("SWIPE_API_ID", ""),
		APISecret:         getEnv("SWIPE_API_SECRET", ""),
		Username:          getEnv("SWIPE_USERNAME", ""),
		Password:          getEnv("SWIPE_PASSWORD", ""),
		IDPattern:         getEnv("SWIPE_ID_PATTERN", ""),
		ProviderRPS:       getEnvAsFloat("SWIPE_PROVIDER_RPS", 5),
		ConnectivityHost:  getEnv("SWIPE_CONNECTIVITY_HOST", "www.google.com"),
		ConnectivityProbe: getEnvAsDuration("SWIPE_CONNECTIVITY_TIMEOUT", "3s"),

		EventKey:         getEnv("SWIPE_EVENT_KEY", ""),
		CheckBookingList: getEnvAsBool("SWIPE_CHECK_BOOKING_LIST", true),
		CheckWaitingList: getEnvAsBool("SWIPE_CHECK_WAITING_LIST", false),
		Online:           getEnvAsBool("SWIPE_ONLINE", true),

		EntrySlots:      getEnvAsInt("SWIPE_ENTRY_SLOTS", MaxEntrySlots),
		QueueSize:       getEnvAsInt("SWIPE_QUEUE_SIZE", 256),
		ShutdownTimeout: getEnvAsDuration("SWIPE_SHUTDOWN_TIMEOUT", "30s"),
		SubmitTimeout:   getEnvAsDuration("SWIPE_SUBMIT_TIMEOUT", "20s"),

		ExportDir: getEnv("SWIPE_EXPORT_DIR", "."),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		Console:       getEnvAsBool("SWIPE_CONSOLE", true),
		HTTPAddr:      getEnv("HTTP_ADDR", ""),
		DiscordToken:  getEnv("DISCORD_TOKEN", ""),
		ApplicationID: getEnv("APPLICATION_ID", ""),
		GuildID:       getEnv("GUILD_ID", ""),
		NoticeChannel: getEnv("DISCORD_NOTICE_CHANNEL", ""),
	}
}

// ProviderConfigured reports whether enough is set to talk to the booking system.
// Remote operations stay disabled until it is true.
func (c *Config) ProviderConfigured() bool {
	return c.ProviderHost != "" && c.APIID != "" && c.APISecret != ""
}

// AdminConfigured reports whether operator credentials for the admin pages are set
func (c *Config) AdminConfigured() bool {
	return c.Username != "" && c.Password != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
