// Package gradle models the boundary with the Gradle build tool.
//
// Extraction consumes resolution results that Gradle has already computed; it
// never resolves configurations itself. The types here are a host-neutral
// mirror of that boundary: projects, configurations, dependency edges, resolved
// artifacts, repositories, and resolution failures. Every place where Gradle
// exposes an open polymorphic hierarchy (component identifiers, edge results,
// artifact owners, repository implementations, POM query outcomes) is modeled
// as a closed tagged variant so each use site can handle the known shapes
// exhaustively and report the unknown ones by name.
//
// Values of these types are typically produced by [snapshot.Load] from a JSON
// resolution snapshot dumped by an init script, but any adapter that fills
// them in works.
package gradle
