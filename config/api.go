package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// Shopper-facing JSON and the read-only catalog GraphQL need no credentials
	return []string{"/api/landing", "/graphql"}
}
