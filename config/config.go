package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

type (
	APP struct {
		Name      string
		Host      string
		Port      string
		Env       string
		JWTSecret string
		JWTTTL    time.Duration
	}
	DB struct {
		User     string
		Password string
		Name     string
		Host     string
		Port     string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	S3 struct {
		Region          string
		Endpoint        string
		AccessKeyID     string
		SecretAccessKey string
		BucketReports   string
		UsePathStyle    bool
		PresignTTL      time.Duration
	}
	MQ struct {
		User         string
		Password     string
		Vhost        string
		Host         string
		AmqpPort     string
		Exchange     string
		ExchangeType string
		QueueName    string
	}
	Auth struct {
		BcryptCost       int
		ResetTokenTTL    time.Duration
		ExposeResetToken bool
	}
	Alerts struct {
		Policy      string
		Timezone    string
		Concurrency int
	}

	Config struct {
		App    APP
		DB     DB
		Redis  Redis
		S3     S3
		MQ     MQ
		Auth   Auth
		Alerts Alerts
	}
)

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return def
	}
	return v
}

func getEnvBool(key string, def bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return def
	}
	return v
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func Load() Config {
	app := APP{
		Name:      getEnv("SERVICE_NAME", "zentrix"),
		Host:      getEnv("SERVICE_HOST", ""),
		Port:      getEnv("SERVICE_PORT", "4000"),
		Env:       getEnv("SERVICE_ENV", ""),
		JWTSecret: getEnv("SERVICE_JWT_SECRET", ""),
		JWTTTL:    getEnvDuration("SERVICE_JWT_TTL", 8*time.Hour),
	}
	db := DB{
		User:     getEnv("POSTGRES_USER", ""),
		Password: getEnv("POSTGRES_PASSWORD", ""),
		Name:     getEnv("POSTGRES_DB", ""),
		Host:     getEnv("POSTGRES_HOST", ""),
		Port:     getEnv("POSTGRES_PORT", "5432"),
	}
	redis := Redis{
		Host:     getEnv("REDIS_HOST", ""),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),
	}
	s3 := S3{
		Region:          getEnv("S3_REGION", "us-east-1"),
		Endpoint:        getEnv("S3_ENDPOINT", ""),
		AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		BucketReports:   getEnv("S3_BUCKET_REPORTS", ""),
		UsePathStyle:    getEnvBool("S3_USE_PATH_STYLE", false),
		PresignTTL:      getEnvDuration("S3_PRESIGN_TTL", 15*time.Minute),
	}
	mq := MQ{
		User:         getEnv("RABBITMQ_USER", ""),
		Password:     getEnv("RABBITMQ_PASSWORD", ""),
		Vhost:        getEnv("RABBITMQ_VHOST", ""),
		Host:         getEnv("RABBITMQ_HOST", ""),
		AmqpPort:     getEnv("RABBITMQ_AMQP_PORT", "5672"),
		Exchange:     getEnv("RABBITMQ_EXCHANGE", "zentrix.events"),
		ExchangeType: getEnv("RABBITMQ_EXCHANGE_TYPE", "topic"),
		QueueName:    getEnv("RABBITMQ_QUEUE_NAME", "zentrix.notifications"),
	}
	auth := Auth{
		BcryptCost:       getEnvInt("AUTH_BCRYPT_COST", 10),
		ResetTokenTTL:    getEnvDuration("AUTH_RESET_TOKEN_TTL", time.Hour),
		ExposeResetToken: getEnvBool("AUTH_RESET_EXPOSE_TOKEN", true),
	}
	alerts := Alerts{
		Policy:      getEnv("ALERT_POLICY", "graduated"),
		Timezone:    getEnv("ALERT_TIMEZONE", "America/Bogota"),
		Concurrency: getEnvInt("ALERT_WRITE_CONCURRENCY", 4),
	}

	return Config{
		App:    app,
		DB:     db,
		Redis:  redis,
		S3:     s3,
		MQ:     mq,
		Auth:   auth,
		Alerts: alerts,
	}
}

func (c Config) DBDSN() (string, error) {
	if c.DB.User == "" || c.DB.Name == "" || c.DB.Host == "" || c.DB.Port == "" {
		return "", fmt.Errorf("incomplete DB config")
	}
	return fmt.Sprintf(
		"postgres://%s@%s:%s/%s",
		url.UserPassword(c.DB.User, c.DB.Password).String(),
		c.DB.Host,
		c.DB.Port,
		c.DB.Name,
	), nil
}

func (c Config) RedisAddr() (string, bool) {
	if c.Redis.Host == "" {
		return "", false
	}
	return c.Redis.Host + ":" + c.Redis.Port, true
}

// MQEnabled reports whether a broker is configured; events are dropped otherwise.
func (c Config) MQEnabled() bool { return c.MQ.Host != "" }

func (c Config) AMQPDSN() (string, error) {
	if c.MQ.User == "" || c.MQ.Host == "" || c.MQ.AmqpPort == "" {
		return "", fmt.Errorf("invalid MQ config: user, host and amqp port are required")
	}

	return fmt.Sprintf(
		"%s://%s@%s:%s/%s",
		"amqp",
		url.UserPassword(c.MQ.User, c.MQ.Password).String(),
		c.MQ.Host,
		c.MQ.AmqpPort,
		url.PathEscape(c.MQ.Vhost),
	), nil
}

func (c Config) S3Enabled() bool {
	return c.S3.BucketReports != "" && c.S3.AccessKeyID != "" && c.S3.SecretAccessKey != ""
}
