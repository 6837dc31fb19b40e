// Package classify implements extension-based file classification and the
// resolution of files whose extension matches more than one category.
package classify

import (
	"autoclean/internal/category"
	"autoclean/internal/model"
)

// Classify returns every category label claiming the file's extension, in
// table order. Pure: it never mutates the record.
//
// Zero candidates means the caller files the record under the table's
// fallback category. Exactly one candidate is final. Two or more candidates
// mark the file ambiguous; it must go through a Resolver before being filed.
func Classify(file *model.FileRecord, table *category.Table) []string {
	return table.Lookup(file.Extension)
}

// Result accumulates classified files for one source directory, bucketed by
// category label. Buckets preserve insertion order; each record belongs to
// exactly one bucket.
type Result struct {
	buckets map[string][]*model.FileRecord
	table   *category.Table
}

// NewResult creates an empty classification result bound to a table.
func NewResult(table *category.Table) *Result {
	return &Result{
		buckets: make(map[string][]*model.FileRecord),
		table:   table,
	}
}

// Add files a record under the given category, assigning its Category field.
func (r *Result) Add(label string, file *model.FileRecord) {
	file.Category = label
	r.buckets[label] = append(r.buckets[label], file)
}

// AddFallback files a record under the table's fallback category.
func (r *Result) AddFallback(file *model.FileRecord) {
	r.Add(r.table.Fallback(), file)
}

// Files returns the bucket for a category label, in insertion order.
func (r *Result) Files(label string) []*model.FileRecord {
	return r.buckets[label]
}

// Table returns the category table this result was classified against.
func (r *Result) Table() *category.Table {
	return r.table
}

// Total counts every record filed into any bucket.
func (r *Result) Total() int {
	n := 0
	for _, files := range r.buckets {
		n += len(files)
	}
	return n
}
