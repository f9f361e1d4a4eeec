package transcriber

import (
	"testing"
	"time"
)

func TestPlanChunks(t *testing.T) {
	tests := []struct {
		name     string
		total    time.Duration
		chunkLen time.Duration
		want     int
	}{
		{"empty audio", 0, 10 * time.Minute, 0},
		{"shorter than one chunk", 3 * time.Minute, 10 * time.Minute, 1},
		{"exactly one chunk", 10 * time.Minute, 10 * time.Minute, 1},
		{"just over one chunk", 10*time.Minute + time.Millisecond, 10 * time.Minute, 2},
		{"exact multiple", 30 * time.Minute, 10 * time.Minute, 3},
		{"with remainder", 25 * time.Minute, 10 * time.Minute, 3},
		{"long recording", 2*time.Hour + 7*time.Minute, 10 * time.Minute, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans := planChunks(tt.total, tt.chunkLen)
			if len(spans) != tt.want {
				t.Fatalf("planChunks(%v, %v) produced %d spans, want %d", tt.total, tt.chunkLen, len(spans), tt.want)
			}
			verifyPartition(t, spans, tt.total, tt.chunkLen)
		})
	}
}

// verifyPartition checks that spans exactly cover [0, total) in order,
// with no gaps, no overlaps, and no span longer than chunkLen.
func verifyPartition(t *testing.T, spans []span, total, chunkLen time.Duration) {
	t.Helper()

	cursor := time.Duration(0)
	for i, s := range spans {
		if s.index != i {
			t.Errorf("span %d has index %d", i, s.index)
		}
		if s.start != cursor {
			t.Errorf("span %d starts at %v, want %v (gap or overlap)", i, s.start, cursor)
		}
		if s.end <= s.start {
			t.Errorf("span %d is empty: [%v, %v)", i, s.start, s.end)
		}
		if s.end-s.start > chunkLen {
			t.Errorf("span %d is longer than chunk length: %v", i, s.end-s.start)
		}
		cursor = s.end
	}
	if cursor != total {
		t.Errorf("spans cover [0, %v), want [0, %v)", cursor, total)
	}
}

func TestPlanChunksTwentyFiveMinutes(t *testing.T) {
	spans := planChunks(25*time.Minute, 10*time.Minute)

	want := []struct{ start, end time.Duration }{
		{0, 10 * time.Minute},
		{10 * time.Minute, 20 * time.Minute},
		{20 * time.Minute, 25 * time.Minute},
	}

	if len(spans) != len(want) {
		t.Fatalf("got %d spans, want %d", len(spans), len(want))
	}
	for i, w := range want {
		if spans[i].start != w.start || spans[i].end != w.end {
			t.Errorf("span %d = [%v, %v), want [%v, %v)", i, spans[i].start, spans[i].end, w.start, w.end)
		}
	}
}

func TestPlanChunksInvalidInput(t *testing.T) {
	if got := planChunks(10*time.Minute, 0); got != nil {
		t.Errorf("zero chunk length: got %v, want nil", got)
	}
	if got := planChunks(-time.Minute, 10*time.Minute); got != nil {
		t.Errorf("negative total: got %v, want nil", got)
	}
}
