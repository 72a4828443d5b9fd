package git

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestMockRecordReader_ReturnsRecords(t *testing.T) {
	records := []ChangeRecord{
		{NewPath: "src/a.txt", Kind: ChangeKindAdded, NewContent: "one\n"},
		{OldPath: "gone.txt", Kind: ChangeKindDeleted, OldContent: "bye\n"},
	}

	var reader RecordReader = NewMockRecordReader(records, nil)

	got, err := reader.ReadRecords(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, records) {
		t.Errorf("records = %+v, expected %+v", got, records)
	}
}

func TestMockRecordReader_ReturnsError(t *testing.T) {
	wantErr := errors.New("boom")
	reader := NewMockRecordReader(nil, wantErr)

	if _, err := reader.ReadRecords(context.Background()); !errors.Is(err, wantErr) {
		t.Errorf("err = %v, expected %v", err, wantErr)
	}
}
