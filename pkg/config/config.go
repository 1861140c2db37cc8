package config

import (
	"github.com/arthur-debert/classifiles/pkg/paths"
)

// DefaultTriggerMIME is the archive type refined by deep inspection out
// of the box.
const DefaultTriggerMIME = "application/zip"

// Config is the full set of settings for a run.
type Config struct {
	MimeInfoDB MimeInfoDB `koanf:"mime_info_db" yaml:"mime_info_db"`
	Libmagic   Libmagic   `koanf:"libmagic" yaml:"libmagic"`
}

// MimeInfoDB locates the glob database.
type MimeInfoDB struct {
	Root string `koanf:"root" yaml:"root"`
}

// Libmagic configures the deep inspector.
type Libmagic struct {
	DBFile string `koanf:"db_file" yaml:"db_file"`

	// UsedFor is the trigger set: sniffed types worth refining.
	UsedFor []string `koanf:"used_for" yaml:"used_for"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		MimeInfoDB: MimeInfoDB{Root: paths.FindMimeInfoDB()},
		Libmagic: Libmagic{
			DBFile:  paths.DefaultMagicDBFile,
			UsedFor: []string{DefaultTriggerMIME},
		},
	}
}

// defaultsMap is Default flattened for the confmap provider.
func defaultsMap() map[string]interface{} {
	d := Default()
	return map[string]interface{}{
		"mime_info_db.root": d.MimeInfoDB.Root,
		"libmagic.db_file":  d.Libmagic.DBFile,
		"libmagic.used_for": d.Libmagic.UsedFor,
	}
}
