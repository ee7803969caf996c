package server

// Config holds the comparison API server settings. The TTL bounds how stale
// a served comparison may be; 0 disables caching and recomputes per request.
type Config struct {
	Port            int
	CacheTTLSeconds int
}

// DefaultConfig returns the default server configuration.
func DefaultConfig() Config {
	return Config{
		Port:            8080,
		CacheTTLSeconds: 300,
	}
}
