package service

import (
	"testing"
	"time"

	"github.com/SaideLeon/nativespeak-api/internal/model"
)

func TestApplyCompletion(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		initial     int
		completed   int
		total       int
		wantChanged bool
		wantPct     int
	}{
		{"first submission", 0, 1, 4, true, 25},
		{"floor division", 0, 2, 3, true, 66},
		{"all completed", 50, 3, 3, true, 100},
		{"no change at same percentage", 50, 1, 2, false, 50},
		{"unit without exercises is a no-op", 40, 0, 0, false, 40},
		{"completed above total clamps to 100", 0, 5, 3, true, 100},
		{"percentage can drop when exercises are added", 100, 2, 4, true, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &model.StudentProgress{CompletionPercentage: tt.initial}
			changed := applyCompletion(p, tt.completed, tt.total, now)
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
			if p.CompletionPercentage != tt.wantPct {
				t.Errorf("percentage = %d, want %d", p.CompletionPercentage, tt.wantPct)
			}
		})
	}
}

func TestApplyCompletionStampsOnce(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	p := &model.StudentProgress{}

	if !applyCompletion(p, 3, 3, now) {
		t.Fatal("reaching 100 must report a change")
	}
	if p.CompletedAt == nil || !p.CompletedAt.Equal(now) {
		t.Fatalf("CompletedAt = %v, want %v", p.CompletedAt, now)
	}

	// Recomputing at 100 is idempotent.
	later := now.Add(time.Hour)
	if applyCompletion(p, 3, 3, later) {
		t.Error("recomputation with no change must not report a change")
	}
	if !p.CompletedAt.Equal(now) {
		t.Errorf("CompletedAt moved to %v, want original %v", p.CompletedAt, now)
	}

	// New exercises drop the percentage but never clear the stamp.
	if !applyCompletion(p, 3, 6, later) {
		t.Error("percentage drop must report a change")
	}
	if p.CompletionPercentage != 50 {
		t.Errorf("percentage = %d, want 50", p.CompletionPercentage)
	}
	if p.CompletedAt == nil || !p.CompletedAt.Equal(now) {
		t.Errorf("CompletedAt = %v, want original stamp preserved", p.CompletedAt)
	}
}

func TestApplyCompletionZeroTotalKeepsStamp(t *testing.T) {
	now := time.Now()
	stamp := now.Add(-time.Hour)
	p := &model.StudentProgress{CompletionPercentage: 100, CompletedAt: &stamp}

	if applyCompletion(p, 0, 0, now) {
		t.Error("empty unit must not change the row")
	}
	if p.CompletionPercentage != 100 || !p.CompletedAt.Equal(stamp) {
		t.Errorf("row mutated on empty unit: %+v", p)
	}
}
