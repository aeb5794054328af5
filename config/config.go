package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server    Server
	Database  Database
	Documents Documents
	School    School
}

type Server struct {
	Port string
}
type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Documents configures where rendered result documents are written and
// the public URL prefix they are served under.
type Documents struct {
	Dir     string
	BaseURL string
}

type School struct {
	Name string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("DOCUMENTS_DIR", "./documents")
	viper.SetDefault("DOCUMENTS_BASE_URL", "/documents")
	viper.SetDefault("SCHOOL_NAME", "The Pit Martial Arts")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Documents.Dir = viper.GetString("DOCUMENTS_DIR")
	config.Documents.BaseURL = viper.GetString("DOCUMENTS_BASE_URL")
	config.School.Name = viper.GetString("SCHOOL_NAME")

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}
