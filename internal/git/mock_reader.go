package git

import "context"

// MockRecordReader is a test double for RecordReader.
// It allows tests to provide predefined change records without needing a
// real Git repository.
type MockRecordReader struct {
	Records []ChangeRecord
	Error   error
}

// NewMockRecordReader creates a new MockRecordReader with the given data.
func NewMockRecordReader(records []ChangeRecord, err error) *MockRecordReader {
	return &MockRecordReader{
		Records: records,
		Error:   err,
	}
}

// ReadRecords returns the predefined records or error.
func (m *MockRecordReader) ReadRecords(_ context.Context) ([]ChangeRecord, error) {
	return m.Records, m.Error
}
