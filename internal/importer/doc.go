// Package importer converts tabular exports from third-party marketplaces
// and inventory tools into canonical card records.
//
// The pipeline is: detect the delimiter, parse the raw text, classify each
// column's semantic meaning from its header (or sampled values), coerce every
// row into a CanonicalRecord, then validate the batch. No user-supplied
// column mapping is required; classification is heuristic and deterministic.
//
// This package has no storage or UI dependencies and can be used by any
// frontend.
package importer
