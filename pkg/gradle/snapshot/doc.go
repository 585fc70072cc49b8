// Package snapshot obtains resolution data from a real Gradle build.
//
// An embedded init script registers a gradletreeSnapshot task that resolves
// every configuration and dumps the result graphs, resolved artifact sets,
// repositories, and project coordinates as a single JSON document. Runner
// invokes the build, Load and Decode turn the document into the boundary
// types of the parent package.
//
// The snapshot is a plain data file: a build can also be snapshotted once on
// a machine with Gradle installed and the file analyzed elsewhere.
package snapshot
