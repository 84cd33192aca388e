package provision

import (
	"context"
	"errors"
	"testing"

	"github.com/blankenberg/ephemeris/internal/domain"
)

// fakeSubmitter — фейковый JobSubmitter.
type fakeSubmitter struct {
	submission *domain.JobSubmission
	err        error
	gotTool    string
	gotInputs  domain.ResolvedInputs
}

func (f *fakeSubmitter) SubmitJob(_ context.Context, toolID string, inputs domain.ResolvedInputs) (*domain.JobSubmission, error) {
	f.gotTool = toolID
	f.gotInputs = inputs
	if f.err != nil {
		return nil, f.err
	}
	return f.submission, nil
}

func TestDispatcher_Dispatch(t *testing.T) {
	submitter := &fakeSubmitter{
		submission: &domain.JobSubmission{
			Outputs: []domain.JobOutput{{ID: "ds1", HID: 42}, {ID: "ds2", HID: 43}},
			Jobs:    []domain.JobRef{{ID: "job1"}},
		},
	}
	dispatcher := NewDispatcher(submitter, nil)

	inputs := domain.ResolvedInputs{"dbkey": "hg19"}
	handle, err := dispatcher.Dispatch(context.Background(), "dm_fetch", inputs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if submitter.gotTool != "dm_fetch" {
		t.Errorf("expected dm_fetch, got %s", submitter.gotTool)
	}
	// Первый output отслеживает job.
	if handle.DatasetID != "ds1" || handle.HID != 42 {
		t.Errorf("unexpected handle: %+v", handle)
	}
	if handle.JobID != "job1" {
		t.Errorf("expected job1, got %s", handle.JobID)
	}
}

func TestDispatcher_Dispatch_SubmitError(t *testing.T) {
	submitter := &fakeSubmitter{err: errors.New("tool unavailable")}
	dispatcher := NewDispatcher(submitter, nil)

	_, err := dispatcher.Dispatch(context.Background(), "dm_fetch", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrSubmission) {
		t.Errorf("expected ErrSubmission, got %v", err)
	}
}

func TestDispatcher_Dispatch_NoOutputs(t *testing.T) {
	submitter := &fakeSubmitter{submission: &domain.JobSubmission{}}
	dispatcher := NewDispatcher(submitter, nil)

	_, err := dispatcher.Dispatch(context.Background(), "dm_fetch", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrNoOutputs) {
		t.Errorf("expected ErrNoOutputs, got %v", err)
	}
}
