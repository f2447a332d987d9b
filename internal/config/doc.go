// Package config loads bargain's runtime configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/bargain/config.toml (default)
//  3. If the config file doesn't exist, start from defaults
//  4. Apply BARGAIN_* environment variables on top of the file
//  5. Validate the merged result
//
// # Default Values
//
//   - API endpoint: https://www.cheapshark.com/api/1.0/
//   - Purchase redirect: https://www.cheapshark.com/redirect
//   - Default store: 1 (Steam)
//   - Request timeout: 10 seconds
//   - Enrichment workers: 1 (sequential)
//   - Log file: ~/.local/state/bargain/bargain.log
//   - Log level: info
//
// # TOML Format
//
//	api_url = "https://www.cheapshark.com/api/1.0/"
//	redirect_url = "https://www.cheapshark.com/redirect"
//	default_store = "1"
//	request_timeout_seconds = 10
//	enrich_workers = 1
//	log_file = "~/.local/state/bargain/bargain.log"
//	log_level = "info"
//
// Every field is optional. Blank strings fall back to defaults and tilde
// expansion is performed on log_file. Set log_file = "off" to disable file
// logging.
//
// # Environment Overrides
//
// BARGAIN_API_URL, BARGAIN_REDIRECT_URL, BARGAIN_DEFAULT_STORE,
// BARGAIN_REQUEST_TIMEOUT_SECONDS, BARGAIN_ENRICH_WORKERS, BARGAIN_LOG_FILE
// and BARGAIN_LOG_LEVEL take precedence over the file.
package config
