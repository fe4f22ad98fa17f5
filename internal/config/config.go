package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress = ":8080"
	defaultMigrations = "migrations"
	defaultSMTPPort   = 587
	defaultQRSize     = 256
)

type Config struct {
	Env    string
	Server server
	DB     db
	SMTP   smtp
	QR     qr
	Logger logger
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type db struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type smtp struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM"`
}

type qr struct {
	// ImageSize is the edge length of the rendered PNG in pixels.
	ImageSize int `env:"QR_IMAGE_SIZE"`
	// RecoveryLevel is one of low, medium, high, highest.
	RecoveryLevel string `env:"QR_RECOVERY_LEVEL"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// MustLoad reads configuration from .env (if present) and the environment.
func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()

	config := Config{
		Env: viper.GetString("app_env"),
		Server: server{
			RunAddress: viper.GetString("run_address"),
		},
		DB: db{
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
		},
		SMTP: smtp{
			Host:     viper.GetString("smtp_host"),
			Port:     viper.GetInt("smtp_port"),
			Username: viper.GetString("smtp_username"),
			Password: viper.GetString("smtp_password"),
			From:     viper.GetString("smtp_from"),
		},
		QR: qr{
			ImageSize:     viper.GetInt("qr_image_size"),
			RecoveryLevel: viper.GetString("qr_recovery_level"),
		},
		Logger: logger{
			LogLevel: viper.GetString("log_level"),
		},
	}

	if config.Server.RunAddress == "" {
		config.Server.RunAddress = defaultRunAddress
	}
	if config.DB.Migrations == "" {
		config.DB.Migrations = defaultMigrations
	}
	if config.SMTP.Port == 0 {
		config.SMTP.Port = defaultSMTPPort
	}
	if config.SMTP.From == "" {
		config.SMTP.From = config.SMTP.Username
	}
	if config.QR.ImageSize == 0 {
		config.QR.ImageSize = defaultQRSize
	}

	return &config
}
