package main

import (
	"context"
	"io"
	"time"
)

// Dependencies holds shared state for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve ServeCmd `cmd:"" help:"Run the reading-view API server"`
	Fetch FetchCmd `cmd:"" help:"Fetch one URL and print the extracted reading view"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr       string        `default:":8080" env:"READVIEW_ADDR" help:"Listen address"`
	DB         string        `env:"READVIEW_DB" help:"SQLite database path; in-memory store when empty"`
	Token      string        `env:"READVIEW_TOKEN" help:"Bearer token required on API calls; open access when empty"`
	Extractor  string        `default:"heuristic" enum:"heuristic,readability,trafilatura" help:"Content extraction engine"`
	Timeout    time.Duration `default:"15s" help:"Outbound fetch timeout"`
	RecheckDNS bool          `name:"recheck-dns" help:"Re-validate resolved IPs at dial time (DNS rebinding guard)"`
	IngestRPS  float64       `name:"ingest-rps" default:"0" help:"Ingestion rate limit in requests per second; 0 disables"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL       string        `arg:"" help:"URL to fetch"`
	Extractor string        `default:"heuristic" enum:"heuristic,readability,trafilatura" help:"Content extraction engine"`
	Timeout   time.Duration `default:"15s" help:"Outbound fetch timeout"`
}
