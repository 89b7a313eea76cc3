package main

import "github.com/andareed/mini-text/bridge"

type uiState struct {
	status   bridge.Status
	inFlight int
	width    int
	height   int
	ready    bool

	// external captures still running; they may send keys to the panel
	capturing int
}
