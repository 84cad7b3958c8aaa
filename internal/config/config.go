// Package config handles configuration loading and validation for the
// ranksearch CLI tools.
package config

// Config is the root configuration structure loaded by the indexer and
// query tools. Everything it carries is optional: the tools run fine
// from flags alone, but a config file lets BM25 params and an optional
// Postgres-backed corpus source be set once and reused across
// invocations. TopK is validated but no tool reads it; the query engine
// always returns query.TopK results.
type Config struct {
	BM25     BM25Config     `yaml:"bm25"`
	TopK     int            `yaml:"top_k"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// BM25Config holds the tunable BM25 constants. Spec pins k1=1.0, b=0.75;
// this section exists so experimentation doesn't require recompiling.
type BM25Config struct {
	K1 float64 `yaml:"k1"`
	B  float64 `yaml:"b"`
}

// PostgresConfig describes an optional database-backed corpus source, an
// alternative to the flat-file documents/ directory.
type PostgresConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	Database   string `yaml:"database"`
	Username   string `yaml:"username"`
	Password   string `yaml:"password"`
	SSLMode    string `yaml:"ssl_mode"`
	Table      string `yaml:"table"`
	IDColumn   string `yaml:"id_column"`
	TextColumn string `yaml:"text_column"`
}

// DefaultConfig returns a Config with the spec-mandated BM25 constants
// and result-set size; Postgres is disabled by default.
func DefaultConfig() *Config {
	return &Config{
		BM25: BM25Config{
			K1: 1.0,
			B:  0.75,
		},
		TopK: 15,
	}
}
