// Package hunter provides the state synchronization and derived-scoring
// engine behind a personal sector watchlist dashboard. It is designed to be
// local-first: the whole sector collection lives in a single human-readable
// JSON file that is read once at startup and rewritten on every mutation.
//
// The core functionalities include:
//   - Sector Store: the canonical in-memory collection of sectors and the
//     currently active sector, with durable persistence and a one-time
//     migration from earlier persistence filenames.
//   - Quote Synchronization: a single-flight engine that fetches best-effort
//     quotes for the active sector and merges them through an explicit patch
//     type, discarding late results for sectors the user has switched away
//     from.
//   - Scoring: pure, deterministic derivation of the hunter score and the
//     transient price-flash classification.
//   - Share Codec: an exactly invertible text encoding of a single sector for
//     cross-device links, and a pretty-printed backup format for the whole
//     collection.
//
// This package serves as the foundational logic for the `hunt` command-line
// tool; rendering and AI commentary live in the renderer and agent
// subpackages.
package hunter
