package speech

import (
	"testing"
	"time"

	"github.com/scribeflow/scribeflow/internal/logger"
)

func TestCleanTranscript(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"plain text", "hello world", "hello world", false},
		{"surrounding whitespace", "  hello world \n", "hello world", false},
		{"empty", "", "", true},
		{"whitespace only", " \n\t ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cleanTranscript(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("cleanTranscript(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("cleanTranscript(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNewWhisperWiring(t *testing.T) {
	w := NewWhisper("key", "whisper-1", 90*time.Second, logger.New("error")).(*implWhisper)

	if w.model != "whisper-1" {
		t.Errorf("model = %q, want whisper-1", w.model)
	}
	if w.timeout != 90*time.Second {
		t.Errorf("timeout = %v, want 90s", w.timeout)
	}
	if w.cli == nil {
		t.Error("client not initialized")
	}
}
