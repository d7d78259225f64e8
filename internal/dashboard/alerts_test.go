package dashboard

import (
	"testing"
	"time"

	"github.com/rajasthanwx/weather-monitor/internal/domain"
)

func TestBuildAlertListSeverityOrder(t *testing.T) {
	now := time.Now()
	alerts := []domain.Alert{
		{ID: "1", Severity: domain.SeverityLow, Title: "low", StartsAt: now},
		{ID: "2", Severity: domain.SeverityExtreme, Title: "extreme", StartsAt: now},
		{ID: "3", Severity: domain.Severity("weird"), Title: "unknown", StartsAt: now},
		{ID: "4", Severity: domain.SeverityModerate, Title: "moderate", StartsAt: now},
		{ID: "5", Severity: domain.SeverityHigh, Title: "high", StartsAt: now},
	}

	list := BuildAlertList(alerts)
	if list.Total != 5 {
		t.Fatalf("total = %d, want 5", list.Total)
	}

	wantOrder := []string{"extreme", "high", "moderate", "low", "unknown"}
	for i, want := range wantOrder {
		if list.Items[i].Title != want {
			t.Errorf("position %d = %q, want %q", i, list.Items[i].Title, want)
		}
	}

	if list.Items[0].Badge != "EXTREME" {
		t.Errorf("badge = %q, want EXTREME", list.Items[0].Badge)
	}
}

func TestBuildAlertListStableWithinSeverity(t *testing.T) {
	now := time.Now()
	// Incoming order is newest-first; equal severities must keep it.
	alerts := []domain.Alert{
		{ID: "a", Severity: domain.SeverityHigh, Title: "newer", StartsAt: now},
		{ID: "b", Severity: domain.SeverityHigh, Title: "older", StartsAt: now.Add(-time.Hour)},
	}

	list := BuildAlertList(alerts)
	if list.Items[0].Title != "newer" || list.Items[1].Title != "older" {
		t.Error("sort must be stable within a severity band")
	}
}

func TestBuildAlertListEmpty(t *testing.T) {
	list := BuildAlertList(nil)
	if list.Total != 0 || len(list.Items) != 0 {
		t.Errorf("empty input should yield empty list, got %+v", list)
	}
}
