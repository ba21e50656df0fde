// Package enumerate implements the growth engine and the deduplicating
// generation driver: given a target size N, it produces every distinct
// polyomino/polycube up to rotation and reflection, one generation at a
// time.
//
// What:
//
//   - Grow turns one canonical shape of size n into all |frontier|
//     candidates of size n+1 — duplicates are expected and deliberately
//     deferred to the driver.
//   - Generate runs the state machine Generation(1) → … → Generation(N):
//     grow every shape of the current generation, canonicalize every
//     candidate, and keep exactly one representative per canonical key.
//     Generation(1) is the single origin cell, invariant under the whole
//     symmetry group.
//   - Count is the counting-only convenience over Generate.
//   - RandomSnake and RandomShape grow single random instances (a
//     self-avoiding walk and a frontier-attached blob) without any
//     dedup machinery.
//
// Concurrency:
//
//   - Each generation is fully materialized before the next begins — a
//     strict barrier, since growth of n+1 needs the complete deduplicated
//     set of n.
//   - WithWorkers(k) parallelizes within one transition using
//     map-then-merge: every worker grows its slice of the generation into
//     a private key→shape map, and a single-threaded reduction merges the
//     maps afterwards. No shared mutation in the hot loop, and the result
//     is byte-identical to the sequential run (generations are sorted
//     under shape.Compare before they are returned).
//
// Complexity:
//
//   - One transition: O(G·n·d·|group|·n log n) where G = |Generation(n)|;
//     generations grow exponentially in n, so the last transition
//     dominates everything.
//
// Errors:
//
//   - ErrInvalidSize: requested N < 1 — rejected before any work begins.
//   - ErrOptionViolation: an invalid Option was supplied.
//   - ErrInvariant: a growth or canonicalization step produced an
//     impossible shape. That is a bug in the symmetry/adjacency logic,
//     never an input condition; the run aborts rather than skipping.
//   - ErrSnakeStuck: a random snake walled itself in before reaching its
//     target length.
package enumerate
