package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"

	"blackjack-server/pkg/room"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version  string
	registry *room.Registry
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	registry := room.NewRegistry()
	registry.Open()

	this := &Mux{
		Router:   gmux.NewRouter(),
		version:  version,
		registry: registry,
	}

	this.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	this.Methods(http.MethodGet).Path("/ws").Handler(this.getWS())

	return this
}
