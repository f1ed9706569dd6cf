// Package tabular provides a compile-time-typed, column-oriented in-memory
// table built by parsing delimited text files into strongly typed columns.
//
// It targets analytical workloads over small-to-medium tabular datasets,
// such as scientific or particle data, where column-wise access and
// predicate filtering benefit from contiguous, homogeneous storage.
//
// # Packages
//
//   - pkg/columnar: the typed columnar store, its ingestion path, column and
//     row access, and the Filter operation deriving new stores.
//   - pkg/stats: descriptive statistics over numeric column views.
//   - pkg/config: the YAML dataset manifest declaring column types.
//   - pkg/errors: the structured error taxonomy shared by all packages.
//   - pkg/logger: zap-based structured logging.
//   - cmd/tabular: the CLI consuming the store through its public surface.
//
// # Design
//
// Stores are immutable after construction: every derived view is a new
// store, ingestion is all-or-nothing at file granularity, and concurrent
// readers need no locks because nothing ever mutates a published store.
package tabular
