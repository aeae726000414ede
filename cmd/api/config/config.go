package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/caarlos0/env"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	// auto loads .env
	_ "github.com/joho/godotenv/autoload"
)

// backends
const (
	SecretEnv     = "env"
	SecretKeyring = "keyring"
	SecretSSM     = "ssm"

	StoreRedis    = "redis"
	StorePostgres = "postgres"
	StoreDynamoDB = "dynamodb"
)

// Config for app
type Config struct {
	Port  string `env:"PORT" envDefault:"4000" validate:"required,numeric"`
	Debug bool   `env:"DEBUG" envDefault:"false"`

	AdminID        int64  `env:"ADMIN_ID" validate:"required"`
	TokenParameter string `env:"TOKEN_PARAMETER" envDefault:"BOT_TOKEN" validate:"required"`
	SecretBackend  string `env:"SECRET_BACKEND" envDefault:"env" validate:"oneof=env keyring ssm"`
	KeyringService string `env:"KEYRING_SERVICE" envDefault:"quip-bot"`
	AWSRegion      string `env:"AWS_REGION" envDefault:"us-east-1"`

	Domain                 string `env:"DOMAIN" validate:"required,url"`
	RoutePath              string `env:"ROUTE_PATH" envDefault:"updates" validate:"required,excludes=/"`
	RegisterWebhookOnStart bool   `env:"REGISTER_WEBHOOK_ON_START" envDefault:"false"`

	StoreBackend string `env:"STORE_BACKEND" envDefault:"redis" validate:"oneof=redis postgres dynamodb"`
	TableName    string `env:"TABLE_NAME" envDefault:"quips" validate:"required"`

	DbName     string `env:"DB_NAME" envDefault:"quip-bot-dev"`
	DbPassword string `env:"DB_PASSWORD" envDefault:"postgres" json:"-"`
	DbUser     string `env:"DB_USER" envDefault:"postgres"`
	DbHost     string `env:"DB_HOST" envDefault:"localhost"`

	RedisURL       string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RedisPassword  string `env:"REDIS_PASSWORD" envDefault:"" json:"-"`
	RedisNamespace string `env:"REDIS_NAMESPACE" envDefault:"quip_bot_dev"`

	QueueEnabled     bool `env:"QUEUE_ENABLED" envDefault:"false"`
	QueueConcurrency int  `env:"QUEUE_CONCURRENCY" envDefault:"4" validate:"min=1"`
}

// New app config
func New() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate reports every invalid field in one error
func (c Config) Validate() error {
	v := validator.New()
	english := en.New()
	trans, _ := ut.New(english, english).GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(v, trans); err != nil {
		return err
	}

	err := v.Struct(c)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := []string{}
	for _, msg := range verrs.Translate(trans) {
		msgs = append(msgs, msg)
	}
	sort.Strings(msgs)
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// WebhookURL telegram should deliver updates to
func (c Config) WebhookURL() string {
	return fmt.Sprintf("%s/%s/", strings.TrimSuffix(c.Domain, "/"), c.RoutePath)
}

// NeedsRedis when redis backs either the store or the queue
func (c Config) NeedsRedis() bool {
	return c.StoreBackend == StoreRedis || c.QueueEnabled
}
