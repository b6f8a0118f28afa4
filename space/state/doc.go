// Package state holds the transactional change substrate shared by every
// mutable model: a version counter bumped once per outermost mutation and a
// tree of listener registries notified when that happens.
//
// A model embeds Transactional and wraps each mutating method in Mutate.
// Mutations invoked from inside another Mutate run inline, so a composite
// operation built from several primitives is observed as one version bump
// and one notification.
package state
