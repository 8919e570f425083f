// Package config loads runtime configuration for the moodiary terminal
// client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. A .yaml or .yml
//     extension selects YAML, anything else is read as JSON.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Durations in files go through timex.Duration, so they can be strings like
// "750ms" or integer nanoseconds:
//
//	api_base_url: http://localhost:8000/api
//	state_path: moodiary.db
//	request_timeout: 10s
//	analyze_delay: 1s
//	analyze_min_length: 20
//	auto_analyze: true
//	remote_analysis: false
//	intensity: medium
//	log_level: info
//	log_format: text
//
// Keys missing from the file keep their earlier value. Environment variables
// are not consulted.
package config
