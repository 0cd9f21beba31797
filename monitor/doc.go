// SPDX-License-Identifier: MIT

// Package monitor reports the progress of an upword search.
//
// A Reporter plugs into the search hooks (OnVisit, OnLeaf, OnResult) and
// fans every event out to three places:
//
//   - a *slog.Logger: one line whenever the longest word grows, one per
//     result, and a summary when the run ends;
//   - Prometheus collectors registered on a caller-provided registerer;
//   - a mutex-guarded Snapshot served over HTTP by Handler.
//
// Handler routes (chi):
//
//	GET /healthz    liveness
//	GET /progress   JSON Snapshot
//	GET /results    JSON list of the most recent results
//	GET /metrics    Prometheus exposition
//
// The search itself stays single-goroutine; only the Snapshot is shared with
// HTTP handlers.
package monitor
