// Package config loads classifiles configuration.
//
// Values are layered with koanf, later layers overriding earlier ones:
//
//  1. built-in defaults
//  2. a config file, YAML or (for .toml names) TOML
//  3. CLASSIFILES_* environment variables, with "__" separating sections
//     (CLASSIFILES_LIBMAGIC__DB_FILE sets libmagic.db_file)
//
// A missing or broken config file is never fatal: LoadOrDefault logs why
// and carries on with the defaults.
package config
