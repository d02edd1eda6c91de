package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	ShutdownTimeout   = 5 * time.Second
	ReadHeaderTimeout = 5 * time.Second
)

const (
	DefaultBaseURL   = "https://pokeapi.co/api/v2"
	DefaultListLimit = 100000
	DefaultUserAgent = "pokedex/1.0"
)

const (
	// longest real chains are three species; anything past this is malformed
	MaxEvolutionDepth = 32
)

const (
	LoadingMessage   = "Loading..."
	NoResultsMessage = "No Results Found"
)
