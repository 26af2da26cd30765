package controller

import m "sweep.dev/pkg/sweep/internal/model"

// Message types.
type boardMsg struct {
	grid   string
	status string
}

type gameResultMsg struct {
	result m.GameResult
	done   int
	total  int
}

type summaryMsg struct {
	summary m.SimulationSummary
}

type layoutMsg struct {
	path  m.Path
	grid  string
	rows  int
	cols  int
	mines int
}
