package model

import (
	"testing"
	"time"
)

func TestStoreStatusIsLoading(t *testing.T) {
	if !StatusLoading.IsLoading() {
		t.Error("StatusLoading should report loading")
	}
	if StatusIdle.IsLoading() || StatusError.IsLoading() {
		t.Error("Idle and Error should not report loading")
	}
}

func TestSnapshotFind(t *testing.T) {
	snap := CollectionSnapshot{
		Creators: []Creator{
			{ID: "a", Name: "Ada"},
			{ID: "b", Name: "Grace"},
		},
		Status: StatusIdle,
	}

	c, ok := snap.Find("b")
	if !ok {
		t.Fatal("Expected to find creator 'b'")
	}
	if c.Name != "Grace" {
		t.Errorf("Expected name 'Grace', got '%s'", c.Name)
	}

	if _, ok := snap.Find("missing"); ok {
		t.Error("Expected lookup miss for unknown id")
	}
}

func TestSeverityDefaultDuration(t *testing.T) {
	cases := []struct {
		severity Severity
		want     time.Duration
	}{
		{SeverityInfo, 3 * time.Second},
		{SeveritySuccess, 3 * time.Second},
		{SeverityWarning, 4 * time.Second},
		{SeverityError, 5 * time.Second},
	}

	for _, tc := range cases {
		if got := tc.severity.DefaultDuration(); got != tc.want {
			t.Errorf("Severity %s: expected duration %v, got %v", tc.severity, tc.want, got)
		}
	}
}

func TestUploadPhaseStates(t *testing.T) {
	if !PhaseUploading.IsActive() || !PhaseAttaching.IsActive() {
		t.Error("Uploading and Attaching should be active phases")
	}
	if PhaseIdle.IsActive() || PhaseDone.IsActive() || PhaseFailed.IsActive() {
		t.Error("Idle, Done and Failed should not be active")
	}

	if !PhaseDone.IsFinished() || !PhaseFailed.IsFinished() {
		t.Error("Done and Failed should be finished phases")
	}
	if PhaseIdle.IsFinished() || PhaseUploading.IsFinished() {
		t.Error("Idle and Uploading should not be finished")
	}
}
