// Package extract turns Gradle resolution results into a [model.TreeModel].
//
// The walk is a synchronous depth-first traversal over each resolvable
// configuration's resolution graph. Failures never abort it: unresolved edges,
// unknown identifier shapes, and POM lookup errors become error annotations on
// the affected node, unsupported repositories become model-level diagnostics,
// and only an unsupported Gradle version short-circuits the whole run.
//
// Cycles are suppressed per descent path: an edge whose requested identifier
// already appears among its own ancestors is dropped. The ancestor list is
// copied on every descent, so the same package showing up in two unrelated
// branches (a diamond) is kept as two distinct nodes.
package extract
