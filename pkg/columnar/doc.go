// Package columnar provides an immutable, typed, column-oriented in-memory
// table built by parsing delimited text files into strongly typed columns.
//
// It targets analytical workloads over small-to-medium tabular datasets
// where column-wise access and predicate filtering benefit from contiguous,
// homogeneous storage: all values of one column are packed together, so
// scans touch only the data they need.
//
// # Ingestion
//
// A Store is built from a delimited text source with caller-declared column
// types. The first line is a mandatory header naming the columns 1:1 with
// the declared types; fields are separated by a single comma with no quoting
// or escaping; blank lines after the header are skipped.
//
//	store, err := columnar.ReadFromCSV("particles.csv", []columnar.ColumnType{
//	    columnar.TypeInt,
//	    columnar.TypeFloat,
//	    columnar.TypeFloat,
//	    columnar.TypeFloat,
//	    columnar.TypeFloat,
//	})
//
// Ingestion is transactional at file granularity: any shape or conversion
// error discards all partial work and no Store is returned.
//
// # Access
//
// Columns are read through typed views, either by ordinal index (the caller
// vouches for index and type) or by name (checked, fallible):
//
//	energies := columnar.View[float64](store, 4)
//	pz, err := columnar.ViewNamed[float64](store, "pz")
//
// Views alias the store's backing arrays. Stores are immutable after
// construction, so views are safe to share among concurrent readers, but
// they must not be mutated and must not outlive their store.
//
// # Filtering
//
// Filter derives a new Store from a typed predicate over one named column,
// keeping whole rows in their original order:
//
//	fast, err := columnar.Filter(store, "energy", func(e float64) bool {
//	    return e > 50.0
//	})
//
// A filtered Store has the same shape as its source, so filters chain.
package columnar
