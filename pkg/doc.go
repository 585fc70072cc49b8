// Package pkg provides the core libraries for gradletree dependency extraction.
//
// # Overview
//
// Gradletree turns a Gradle build's resolved dependency configurations into a
// portable JSON tree model, annotated with POM file locations for external
// packages and source paths for workspace projects. The pkg directory is
// organized into four main areas:
//
//  1. [gradle] - Boundary types for Gradle resolution data, plus the snapshot
//     subpackage that obtains it from a real build
//  2. [extract] - Tree model assembly (cycle suppression, diagnostics,
//     identifier parsing, repository classification)
//  3. [pom] - POM location resolvers (local Gradle cache, remote repositories)
//  4. [model], [render], [api] - The serialization format and its consumers
//
// # Architecture
//
// The typical data flow through gradletree:
//
//	Gradle build (init script task)
//	         ↓
//	    [gradle/snapshot] package (capture resolution data)
//	         ↓
//	    [extract] package (assemble the tree model)
//	         ↓         ← [pom] package (locate POM files)
//	    [model] package (serialize)
//	         ↓
//	    JSON / terminal tree / DOT / SVG / HTTP
//
// # Quick Start
//
// Capture a project's resolution data and build its model:
//
//	import (
//	    "context"
//	    "github.com/gradletree/gradletree/pkg/extract"
//	    "github.com/gradletree/gradletree/pkg/gradle/snapshot"
//	    "github.com/gradletree/gradletree/pkg/pom"
//	)
//
//	// 1. Run the project's Gradle
//	runner := &snapshot.Runner{Dir: "/path/to/project"}
//	project, _ := runner.Run(context.Background())
//
//	// 2. Set up POM lookup
//	local, _ := pom.NewCacheResolver("")
//
//	// 3. Assemble the model
//	m := extract.New(project, pom.Chain{local}, extract.Options{}).
//	    BuildModel(context.Background())
//
// # Main Packages
//
// [gradle] - The boundary between Gradle's resolution data and this tool.
// Kind-tagged variant types for components, edges, repositories, and failure
// cause chains. Pure data, no behavior.
//
// [gradle/snapshot] - Obtains resolution data by injecting an init script
// into the project's own Gradle and decoding the emitted JSON document.
// Snapshot files are portable across machines.
//
// [extract] - Assembles the tree model: walks resolvable configurations,
// suppresses dependency cycles per path while preserving diamonds, parses
// display-name identifiers, classifies repositories, and aggregates
// deduplicated diagnostics bottom-up.
//
// [pom] - Locates POM files for external packages. CacheResolver scans the
// local Gradle artifact cache, RemoteResolver downloads from Maven
// repositories with retry and caching, Chain composes them.
//
// [model] - The canonical JSON serialization format for extracted trees.
//
// [render] - Graphviz DOT generation and SVG/PNG/PDF conversion.
//
// [api] - HTTP server exposing extraction with per-request result caching.
//
// ## Infrastructure
//
// [cache] - Byte cache interface with file-backed and null implementations,
// plus key derivation for POM and model entries.
//
// [httputil] - HTTP response caching and retry with exponential backoff.
//
// [config] - The optional gradletree.toml settings file.
//
// [errors] - Structured error codes shared by the CLI and the API.
//
// [observability] - Optional hooks for metrics and tracing backends.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/extract/...   # Specific package
//
// [gradle]: https://pkg.go.dev/github.com/gradletree/gradletree/pkg/gradle
// [gradle/snapshot]: https://pkg.go.dev/github.com/gradletree/gradletree/pkg/gradle/snapshot
// [extract]: https://pkg.go.dev/github.com/gradletree/gradletree/pkg/extract
// [pom]: https://pkg.go.dev/github.com/gradletree/gradletree/pkg/pom
// [model]: https://pkg.go.dev/github.com/gradletree/gradletree/pkg/model
// [render]: https://pkg.go.dev/github.com/gradletree/gradletree/pkg/render
// [api]: https://pkg.go.dev/github.com/gradletree/gradletree/pkg/api
// [cache]: https://pkg.go.dev/github.com/gradletree/gradletree/pkg/cache
// [httputil]: https://pkg.go.dev/github.com/gradletree/gradletree/pkg/httputil
// [config]: https://pkg.go.dev/github.com/gradletree/gradletree/pkg/config
// [errors]: https://pkg.go.dev/github.com/gradletree/gradletree/pkg/errors
// [observability]: https://pkg.go.dev/github.com/gradletree/gradletree/pkg/observability
package pkg
