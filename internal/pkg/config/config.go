package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type (
	Tasks struct {
		PendingOrdersCheckInterval time.Duration
		PendingOrderStaleAfter     time.Duration
	}

	HTTPServer struct {
		Port             string
		ServiceName      string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter refill per second
		RateLimiterBurst int           // middleware rate limiter bucket size
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Payment struct {
		// URL is empty when no payment gateway is configured; orders are then
		// approved without an outbound call.
		URL          string
		Timeout      time.Duration
		ApprovalRate float64
	}

	Redis struct {
		Addr     string
		CacheTTL time.Duration
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		OrderStatusChanged OrderStatusChanged
	}

	OrderStatusChanged struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Payment  Payment
		Redis    Redis
		Kafka    Kafka
	}
)

// Section selects the part of the configuration a binary depends on.
type Section int

const (
	SectionServer Section = iota
	SectionDatabase
	SectionPayment
	SectionRedis
	SectionKafkaProducer
	SectionKafkaConsumer
	SectionTasks
)

const (
	defaultPaymentTimeout      = 5 * time.Second
	defaultPaymentApprovalRate = 0.5
	defaultCatalogCacheTTL     = 30 * time.Second
	defaultPendingCheck        = time.Minute
	defaultPendingStaleAfter   = 5 * time.Minute
	defaultKafkaProcessTimeout = 10 * time.Second
	defaultKafkaVersion        = "3.6.0"
)

func Load(sections ...Section) (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg, sections); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// BrokerList splits the comma separated broker list.
func (k Kafka) BrokerList() []string {
	if strings.TrimSpace(k.Brokers) == "" {
		return nil
	}

	brokers := strings.Split(k.Brokers, ",")
	result := make([]string, 0, len(brokers))
	for _, broker := range brokers {
		broker = strings.TrimSpace(broker)
		if broker != "" {
			result = append(result, broker)
		}
	}
	return result
}

func (k Kafka) Enabled() bool {
	return len(k.BrokerList()) > 0
}

func (r Redis) Enabled() bool {
	return r.Addr != ""
}

func loadFromEnv() (*Config, error) {
	pendingInterval, err := osGetEnvDuration("BACKGROUND_PENDING_ORDERS_CHECK_INTERVAL", defaultPendingCheck)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pendingStaleAfter, err := osGetEnvDuration("PENDING_ORDER_STALE_AFTER", defaultPendingStaleAfter)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderStatusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT", defaultKafkaProcessTimeout)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT", 0)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	paymentTimeout, err := osGetEnvDuration("PAYMENT_TIMEOUT", defaultPaymentTimeout)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	approvalRate, err := osGetFloat("PAYMENT_APPROVAL_RATE", defaultPaymentApprovalRate)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cacheTTL, err := osGetEnvDuration("CATALOG_CACHE_TTL", defaultCatalogCacheTTL)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaVersion := os.Getenv("KAFKA_SARAMA_VERSION")
	if saramaVersion == "" {
		saramaVersion = defaultKafkaVersion
	}

	return &Config{
		Tasks: Tasks{
			PendingOrdersCheckInterval: pendingInterval,
			PendingOrderStaleAfter:     pendingStaleAfter,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			ServiceName:      os.Getenv("SERVICE_NAME"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Payment: Payment{
			URL:          strings.TrimSpace(os.Getenv("PAYMENT_URL")),
			Timeout:      paymentTimeout,
			ApprovalRate: approvalRate,
		},
		Redis: Redis{
			Addr:     strings.TrimSpace(os.Getenv("REDIS_ADDR")),
			CacheTTL: cacheTTL,
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   saramaVersion,
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				OrderStatusChanged: OrderStatusChanged{
					ProcessTimeout: orderStatusChangedTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config, sections []Section) error {
	for _, section := range sections {
		var err error
		switch section {
		case SectionServer:
			err = validateServer(&cfg.Server)
		case SectionDatabase:
			err = validateDatabase(&cfg.Database)
		case SectionPayment:
			err = validatePayment(&cfg.Payment)
		case SectionRedis:
			err = validateRedis(&cfg.Redis)
		case SectionKafkaProducer:
			err = validateKafkaProducer(&cfg.Kafka)
		case SectionKafkaConsumer:
			err = validateKafkaConsumer(&cfg.Kafka)
		case SectionTasks:
			err = validateTasks(&cfg.Tasks)
		default:
			err = fmt.Errorf("unknown config section %d", section)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func validateServer(cfg *HTTPServer) error {
	if cfg.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.RateLimiterQPS <= 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.RateLimiterBurst <= 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.PprofPort == "" && cfg.PprofEnabled {
		return errors.New("PPROF_PORT is required when PPROF_ENABLED is set")
	}
	return nil
}

func validateDatabase(cfg *Database) error {
	if cfg.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

func validatePayment(cfg *Payment) error {
	if cfg.Timeout <= 0 {
		return errors.New("PAYMENT_TIMEOUT must be positive")
	}
	if cfg.ApprovalRate < 0 || cfg.ApprovalRate > 1 {
		return errors.New("PAYMENT_APPROVAL_RATE must be within [0, 1]")
	}
	return nil
}

func validateRedis(cfg *Redis) error {
	if cfg.Enabled() && cfg.CacheTTL <= 0 {
		return errors.New("CATALOG_CACHE_TTL must be positive")
	}
	return nil
}

// The producer is optional: without brokers order events are not published.
func validateKafkaProducer(cfg *Kafka) error {
	if cfg.Enabled() && cfg.Topic == "" {
		return errors.New("KAFKA_TOPIC is required when KAFKA_BROKERS is set")
	}
	return nil
}

func validateKafkaConsumer(cfg *Kafka) error {
	if !cfg.Enabled() {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Handlers.OrderStatusChanged.ProcessTimeout <= 0 {
		return errors.New("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT must be positive")
	}
	return nil
}

func validateTasks(cfg *Tasks) error {
	if cfg.PendingOrdersCheckInterval <= 0 {
		return errors.New("BACKGROUND_PENDING_ORDERS_CHECK_INTERVAL must be positive")
	}
	if cfg.PendingOrderStaleAfter <= 0 {
		return errors.New("PENDING_ORDER_STALE_AFTER must be positive")
	}
	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetFloat(s string, fallback float64) (float64, error) {
	val := os.Getenv(s)
	if val == "" {
		return fallback, nil
	}

	res, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string, fallback time.Duration) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return fallback, nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
