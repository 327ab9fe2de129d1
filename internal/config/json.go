package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/grandboard/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent keys
// leave the corresponding Config field untouched; durations may be strings
// like "30m" or integer nanoseconds.
type JsonConfig struct {
	CacheDSN          *string         `json:"cache_dsn"`
	DatabaseDSN       *string         `json:"database_dsn"`
	DBMaxOpenConns    *int            `json:"db_max_open_conns"`
	DBConnMaxLifetime *timex.Duration `json:"db_conn_max_lifetime"`
	S3RootUser        *string         `json:"s3_root_user"`
	S3RootPassword    *string         `json:"s3_root_password"`
	S3Bucket          *string         `json:"s3_bucket"`
	S3Region          *string         `json:"s3_region"`
	S3BaseEndpoint    *string         `json:"s3_base_endpoint"`
	S3PublicBaseURL   *string         `json:"s3_public_base_url"`
	AccessCode        *string         `json:"access_code"`
	LogLevel          *string         `json:"log_level"`
	LogFile           *string         `json:"log_file"`
	MetricsFile       *string         `json:"metrics_file"`
}

// parseJSON overlays cfg with the values found in the file at path. An
// empty path is a no-op.
func parseJSON(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.CacheDSN, jc.CacheDSN)
	setString(&cfg.DatabaseDSN, jc.DatabaseDSN)
	if jc.DBMaxOpenConns != nil {
		cfg.DBMaxOpenConns = *jc.DBMaxOpenConns
	}
	if jc.DBConnMaxLifetime != nil {
		cfg.DBConnMaxLifetime = jc.DBConnMaxLifetime.Duration
	}
	setString(&cfg.S3RootUser, jc.S3RootUser)
	setString(&cfg.S3RootPassword, jc.S3RootPassword)
	setString(&cfg.S3Bucket, jc.S3Bucket)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	setString(&cfg.S3PublicBaseURL, jc.S3PublicBaseURL)
	setString(&cfg.AccessCode, jc.AccessCode)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFile, jc.LogFile)
	setString(&cfg.MetricsFile, jc.MetricsFile)
	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
