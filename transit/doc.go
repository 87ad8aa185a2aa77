// Package transit normalizes db.transport.rest payloads into a small set of
// stable transit records.
//
// The upstream schema is loosely typed: fields may be absent, null, or of a
// different shape than documented. The normalizer tolerates all of that by
// substituting defaults (empty string, 0, "?") instead of failing; only
// upstream transport and status errors propagate to the caller.
//
// The package exposes five operations: station search, nearby-station
// ranking, nearest-station selection, departure/arrival boards, and journey
// planning. Every result is a fresh value constructed per call; nothing is
// cached or mutated afterwards, so a single Service is safe for concurrent
// use.
package transit
