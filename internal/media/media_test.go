package media

import (
	"testing"
	"time"
)

func TestReencodeArgs(t *testing.T) {
	args := reencodeArgs("in.mp4", "out.mp3")

	if args[len(args)-1] != "out.mp3" {
		t.Errorf("last arg = %v, want out.mp3", args[len(args)-1])
	}

	want := map[string]string{
		"-i":   "in.mp4",
		"-ac":  "1",
		"-ar":  "16000",
		"-c:a": "libmp3lame",
		"-b:a": "64k",
	}
	for flag, value := range want {
		if got := flagValue(args, flag); got != value {
			t.Errorf("flag %s = %q, want %q", flag, got, value)
		}
	}
	if !hasFlag(args, "-vn") {
		t.Error("missing -vn flag")
	}
	if !hasFlag(args, "-y") {
		t.Error("missing -y flag")
	}
}

func TestClipArgs(t *testing.T) {
	args := clipArgs("audio.mp3", "clip.mp3", 10*time.Minute, 5*time.Minute)

	if got := flagValue(args, "-ss"); got != "600.000" {
		t.Errorf("-ss = %q, want 600.000", got)
	}
	if got := flagValue(args, "-t"); got != "300.000" {
		t.Errorf("-t = %q, want 300.000", got)
	}
	if got := flagValue(args, "-i"); got != "audio.mp3" {
		t.Errorf("-i = %q, want audio.mp3", got)
	}
	// Fast seek requires -ss before -i
	if indexOf(args, "-ss") > indexOf(args, "-i") {
		t.Error("-ss must come before -i")
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "0.000"},
		{"whole seconds", 90 * time.Second, "90.000"},
		{"sub-second", 1500 * time.Millisecond, "1.500"},
		{"ten minutes", 10 * time.Minute, "600.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatSeconds(tt.d); got != tt.want {
				t.Errorf("formatSeconds(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		want    time.Duration
		wantErr bool
	}{
		{"plain seconds", "600.000000\n", 10 * time.Minute, false},
		{"fractional", "1.500000", 1500 * time.Millisecond, false},
		{"zero", "0.000000", 0, false},
		{"garbage", "N/A", 0, true},
		{"empty", "", 0, true},
		{"negative", "-3.0", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDuration(tt.out)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseDuration(%q) error = %v, wantErr %v", tt.out, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("parseDuration(%q) = %v, want %v", tt.out, got, tt.want)
			}
		})
	}
}

func TestDownloadArgs(t *testing.T) {
	args := downloadArgs("https://example.com/watch?v=abc", "/tmp/x.%(ext)s")

	if args[len(args)-1] != "https://example.com/watch?v=abc" {
		t.Errorf("last arg = %v, want the url", args[len(args)-1])
	}
	if got := flagValue(args, "--audio-format"); got != "m4a" {
		t.Errorf("--audio-format = %q, want m4a", got)
	}
	if got := flagValue(args, "-o"); got != "/tmp/x.%(ext)s" {
		t.Errorf("-o = %q, want the template", got)
	}
}

func flagValue(args []string, flag string) string {
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func hasFlag(args []string, flag string) bool {
	return indexOf(args, flag) >= 0
}

func indexOf(args []string, flag string) int {
	for i, a := range args {
		if a == flag {
			return i
		}
	}
	return -1
}
