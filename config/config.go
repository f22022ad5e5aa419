package config

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Uma       UmaConfig       `mapstructure:"uma"`
	Lightning LightningConfig `mapstructure:"lightning"`
	Push      PushConfig      `mapstructure:"push"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// UmaConfig holds the VASP's UMA protocol identity.
type UmaConfig struct {
	VaspDomain           string `mapstructure:"vasp_domain"`
	VaspName             string `mapstructure:"vasp_name"`
	SigningPrivKeyHex    string `mapstructure:"signing_priv_key"`
	SigningPubKeyHex     string `mapstructure:"signing_pub_key"`
	EncryptionPrivKeyHex string `mapstructure:"encryption_priv_key"`
	EncryptionPubKeyHex  string `mapstructure:"encryption_pub_key"`
	// Testing skips counterparty signature verification. Never enable in
	// production.
	Testing bool `mapstructure:"testing"`
	// InitialBalance is the SAT balance granted to new demo wallets.
	InitialBalance int64 `mapstructure:"initial_balance"`
}

// SigningPrivKey decodes the hex-encoded secp256k1 signing key.
func (u UmaConfig) SigningPrivKey() ([]byte, error) {
	b, err := hex.DecodeString(u.SigningPrivKeyHex)
	if err != nil {
		return nil, fmt.Errorf("decoding signing private key: %w", err)
	}
	return b, nil
}

// SigningPubKey decodes the hex-encoded signing public key.
func (u UmaConfig) SigningPubKey() ([]byte, error) {
	b, err := hex.DecodeString(u.SigningPubKeyHex)
	if err != nil {
		return nil, fmt.Errorf("decoding signing public key: %w", err)
	}
	return b, nil
}

// EncryptionPrivKey decodes the hex-encoded encryption key.
func (u UmaConfig) EncryptionPrivKey() ([]byte, error) {
	b, err := hex.DecodeString(u.EncryptionPrivKeyHex)
	if err != nil {
		return nil, fmt.Errorf("decoding encryption private key: %w", err)
	}
	return b, nil
}

// EncryptionPubKey decodes the hex-encoded encryption public key.
func (u UmaConfig) EncryptionPubKey() ([]byte, error) {
	b, err := hex.DecodeString(u.EncryptionPubKeyHex)
	if err != nil {
		return nil, fmt.Errorf("decoding encryption public key: %w", err)
	}
	return b, nil
}

// LightningConfig points at the node backing this VASP.
type LightningConfig struct {
	BaseURL       string        `mapstructure:"base_url"`
	APIToken      string        `mapstructure:"api_token"`
	WebhookSecret string        `mapstructure:"webhook_secret"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

// PushConfig holds VAPID keys for web push notifications.
type PushConfig struct {
	VAPIDPublicKey  string `mapstructure:"vapid_public_key"`
	VAPIDPrivateKey string `mapstructure:"vapid_private_key"`
	Subscriber      string `mapstructure:"subscriber"` // mailto: contact
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: VASP_.
// Nested keys use underscore: VASP_DATABASE_HOST, VASP_UMA_VASP_DOMAIN, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "uma_vasp")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "uma-vasp-backend")
	v.SetDefault("uma.vasp_domain", "localhost:8080")
	v.SetDefault("uma.vasp_name", "Demo VASP")
	v.SetDefault("uma.signing_priv_key", "")
	v.SetDefault("uma.signing_pub_key", "")
	v.SetDefault("uma.encryption_priv_key", "")
	v.SetDefault("uma.encryption_pub_key", "")
	v.SetDefault("uma.testing", false)
	v.SetDefault("uma.initial_balance", 100000)
	v.SetDefault("lightning.base_url", "http://localhost:8181")
	v.SetDefault("lightning.api_token", "")
	v.SetDefault("lightning.webhook_secret", "")
	v.SetDefault("lightning.timeout", "20s")
	v.SetDefault("push.vapid_public_key", "")
	v.SetDefault("push.vapid_private_key", "")
	v.SetDefault("push.subscriber", "mailto:admin@localhost")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: VASP_DATABASE_HOST -> database.host
	v.SetEnvPrefix("VASP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
