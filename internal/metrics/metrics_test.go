package metrics

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
)

func TestEntryVerifyNumEntriesIncrements(t *testing.T) {
	EntryVerifyNumEntries.Add(3)

	var m dto.Metric
	if err := EntryVerifyNumEntries.Write(&m); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if m.GetCounter().GetValue() < 3 {
		t.Fatalf("counter value = %v, want >= 3", m.GetCounter().GetValue())
	}
}

func TestEntryVerifyGPUThreadMicrosObserves(t *testing.T) {
	EntryVerifyGPUThreadMicros.Observe(150)

	var m dto.Metric
	if err := EntryVerifyGPUThreadMicros.Write(&m); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if m.GetHistogram().GetSampleCount() == 0 {
		t.Fatalf("histogram sample count = 0, want > 0")
	}
}
