package utils

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server
	AppPort string `yaml:"APP_PORT"`
	AppURL  string `yaml:"APP_URL"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT
	JWTSecret string `yaml:"JWT_SECRET"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// Midtrans configuration
	ClientKey string `yaml:"CLIENT_KEY"`
	ServerKey string `yaml:"SERVER_KEY"`
	// Pointer so an absent YAML key can fall through to the IS_PROD env var.
	IsProd *bool `yaml:"IsProd"`

	// AWS S3 configuration
	AWSS3Bucket   string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region   string `yaml:"AWS_S3_REGION"`
	CloudFrontURL string `yaml:"CLOUDFRONT_URL"`

	// Expiry sweep
	SweepInterval string `yaml:"SWEEP_INTERVAL"` // Go duration string, default 24h
}

var config Config

func LoadConfig() {
	// .env first so bare environments still work without a config.yaml
	_ = godotenv.Load()

	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}

	os.Setenv("JWT_SECRET", config.JWTSecret)
	os.Setenv("SERVER_KEY", config.ServerKey)
	os.Setenv("CLIENT_KEY", config.ClientKey)
	if config.IsProd != nil {
		os.Setenv("IS_PROD", getBoolString(*config.IsProd))
	}
	os.Setenv("AWS_S3_BUCKET", config.AWSS3Bucket)
	os.Setenv("AWS_S3_REGION", config.AWSS3Region)
	os.Setenv("CLOUDFRONT_URL", config.CloudFrontURL)
}

func getBoolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// GetConfig returns a config value from config.yaml, falling back to the
// environment when the YAML value is empty.
func GetConfig(key string) string {
	var v string
	switch key {
	case "APP_PORT":
		v = config.AppPort
	case "APP_URL":
		v = config.AppURL
	case "DB_USER":
		v = config.DBUser
	case "DB_NAME":
		v = config.DBName
	case "DB_PASSWORD":
		v = config.DBPassword
	case "DB_PORT":
		v = config.DBPort
	case "DB_HOST":
		v = config.DBHost
	case "JWT_SECRET":
		v = config.JWTSecret
	case "SMTP_HOST":
		v = config.SMTPHost
	case "SMTP_PORT":
		v = config.SMTPPort
	case "SMTP_SENDER_NAME":
		v = config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		v = config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		v = config.SMTPAuthPassword
	case "CLIENT_KEY":
		v = config.ClientKey
	case "SERVER_KEY":
		v = config.ServerKey
	case "IsProd":
		if config.IsProd != nil {
			return getBoolString(*config.IsProd)
		}
		return os.Getenv("IS_PROD")
	case "AWS_S3_BUCKET":
		v = config.AWSS3Bucket
	case "AWS_S3_REGION":
		v = config.AWSS3Region
	case "CLOUDFRONT_URL":
		v = config.CloudFrontURL
	case "SWEEP_INTERVAL":
		v = config.SweepInterval
	}
	if v == "" {
		return os.Getenv(key)
	}
	return v
}
