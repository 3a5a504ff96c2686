package pipeline

import (
	"testing"
	"time"
)

func TestJobStorePutGet(t *testing.T) {
	s := NewJobStore(time.Hour)
	job := &Job{ID: "j1", Status: StatusQueued, UpdatedAt: time.Now()}
	s.Put(job)

	if got := s.Get("j1"); got != job {
		t.Errorf("got %v", got)
	}
	if got := s.Get("missing"); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestJobStoreCleanup(t *testing.T) {
	s := NewJobStore(time.Minute)
	s.Put(&Job{ID: "old", UpdatedAt: time.Now().Add(-2 * time.Minute)})
	s.Put(&Job{ID: "fresh", UpdatedAt: time.Now()})

	s.Cleanup()

	if s.Get("old") != nil {
		t.Error("expired job survived")
	}
	if s.Get("fresh") == nil {
		t.Error("fresh job evicted")
	}
}

func TestJobStatusTransitions(t *testing.T) {
	job := &Job{ID: "j1", Status: StatusQueued}
	before := job.UpdatedAt

	job.SetStatus(StatusParsing, "parse")
	if job.Status != StatusParsing || job.Phase != "parse" {
		t.Errorf("status = %s/%s", job.Status, job.Phase)
	}
	if !job.UpdatedAt.After(before) {
		t.Error("UpdatedAt not advanced")
	}
}

func TestJobResultReleasesFileData(t *testing.T) {
	job := &Job{ID: "j1"}
	job.SetFileData([]byte("raw bytes"))
	if job.FileData() == nil {
		t.Fatal("file data not stored")
	}

	job.SetResult(map[string]any{"content": map[string]any{}})
	if job.FileData() != nil {
		t.Error("file data retained after result")
	}
	if job.Result() == nil {
		t.Error("result missing")
	}
}

func TestJobSnapshot(t *testing.T) {
	job := &Job{ID: "j1", Status: StatusFailed, Phase: "extract_text", Filename: "cv.pdf"}
	job.AddError("boom")

	snap := job.Snapshot()
	if snap.ID != "j1" || snap.Status != StatusFailed || snap.Filename != "cv.pdf" {
		t.Errorf("snapshot = %+v", snap)
	}
	if len(snap.Errors) != 1 || snap.Errors[0] != "boom" {
		t.Errorf("errors = %v", snap.Errors)
	}
}

func TestContentHashHex(t *testing.T) {
	a := ContentHashHex([]byte("abc"))
	b := ContentHashHex([]byte("abc"))
	c := ContentHashHex([]byte("abd"))
	if a != b {
		t.Error("hash not deterministic")
	}
	if a == c {
		t.Error("distinct content collided")
	}
	if len(a) != 64 {
		t.Errorf("len = %d, want 64", len(a))
	}
}
