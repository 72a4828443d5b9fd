package git

import "context"

// RecordReader defines the interface for producing change records.
// This abstraction allows for easier testing and alternative diff sources.
type RecordReader interface {
	// ReadRecords returns the change records of the configured diff source.
	ReadRecords(ctx context.Context) ([]ChangeRecord, error)
}

// Compile-time interface conformance checks.
var (
	_ RecordReader = (*DiffReader)(nil)
	_ RecordReader = (*WorktreeReader)(nil)
	_ RecordReader = (*MockRecordReader)(nil)
)
