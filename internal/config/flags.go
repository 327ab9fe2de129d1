package config

import (
	"github.com/spf13/pflag"
)

// RegisterFlags binds every Config field to a flag on fs, using the
// current field values as defaults. Parsing fs afterwards gives flags the
// last word over defaults and the JSON file.
//
// The -c/--config flag is registered for help output only; its value is
// read from the raw arguments by Load.
func RegisterFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringP("config", "c", "", "path to a JSON config file")

	fs.StringVar(&cfg.CacheDSN, "cache-dsn", cfg.CacheDSN, "SQLite file of the local cache")
	fs.StringVarP(&cfg.DatabaseDSN, "database-dsn", "d", cfg.DatabaseDSN, "PostgreSQL DSN of the entries table")
	fs.IntVar(&cfg.DBMaxOpenConns, "db-max-open-conns", cfg.DBMaxOpenConns, "maximum open remote connections")
	fs.DurationVar(&cfg.DBConnMaxLifetime, "db-conn-max-lifetime", cfg.DBConnMaxLifetime, "maximum lifetime of a remote connection")
	fs.StringVar(&cfg.S3RootUser, "s3-root-user", cfg.S3RootUser, "S3 access key")
	fs.StringVar(&cfg.S3RootPassword, "s3-root-password", cfg.S3RootPassword, "S3 secret key")
	fs.StringVar(&cfg.S3Bucket, "s3-bucket", cfg.S3Bucket, "S3 bucket holding entry images")
	fs.StringVar(&cfg.S3Region, "s3-region", cfg.S3Region, "S3 region")
	fs.StringVar(&cfg.S3BaseEndpoint, "s3-endpoint", cfg.S3BaseEndpoint, "S3 endpoint URL")
	fs.StringVar(&cfg.S3PublicBaseURL, "s3-public-url", cfg.S3PublicBaseURL, "public URL prefix of stored images")
	fs.StringVar(&cfg.AccessCode, "access-code", cfg.AccessCode, "expected access code (plain or bcrypt hash)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "rotating log file; stderr when empty")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "write sync metrics to this file on exit")
}
