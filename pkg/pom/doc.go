// Package pom resolves POM metadata locations for external modules.
//
// Three implementations of the boundary's resolver interface are provided:
//
//   - [CacheResolver] scans the local Gradle artifact cache, which already
//     holds the POM of every module the build has resolved before.
//   - [RemoteResolver] downloads missing POMs from the build's declared
//     Maven repositories, with retry and response caching.
//   - [Chain] combines resolvers, local first.
//
// All three degrade per lookup: a failed query yields a failure result on
// that node, never an aborted extraction.
package pom
