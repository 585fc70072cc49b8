// Package model defines the serializable dependency tree produced by an
// extraction run.
//
// The JSON schema is a stable contract:
//
//	TreeModel { group, name, version, configurations[], repositories[], errors[], warnings[] }
//	Configuration { name, dependencies[] }
//	Dependency { groupId, artifactId, version, classifier, extension,
//	             dependencies[], error?, warning?, pomFile?, localPath? }
//
// Trees are acyclic by construction: extraction drops any edge whose requested
// identifier already appears on its own descent path. Equal packages reachable
// through unrelated branches are kept as distinct nodes.
package model
