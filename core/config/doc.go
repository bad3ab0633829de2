// Package config provides configuration management for the room furnisher.
//
// It uses Viper for environment variables and godotenv for an optional .env file.
// Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP port, API key and length units
//   - Database: building model connection (mysql or sqlite)
//   - Storage: S3/MinIO credentials and the bucket of published tables
//   - Log: logging level and format
//   - Furnishing: table source and the room parameter names
//
// Nested keys map to environment variables by replacing dots with underscores,
// so furnishing.source.kind is read from FURNISHING_SOURCE_KIND.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Furnishing.Source.Kind)
package config
