package catalog

import "testing"

func TestFitString(t *testing.T) {
	cases := []struct {
		name   string
		line   string
		length int
		end    int
		want   string
	}{
		{"short passthrough", "Tagesschau", 45, 7, "Tagesschau"},
		{"exact passthrough", "abcdefghij", 10, 2, "abcdefghij"},
		{"middle ellipsis", "abcdefghijk", 10, 2, "abcdefg*jk"},
		{"long tail kept", "The Late Late Show With Somebody", 10, 2, "The Lat*dy"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := fitString(tc.line, tc.length, tc.end)
			if got != tc.want {
				t.Fatalf("fitString(%q, %d, %d) = %q, want %q", tc.line, tc.length, tc.end, got, tc.want)
			}
			if len([]rune(got)) > tc.length {
				t.Fatalf("fitString result %q exceeds %d characters", got, tc.length)
			}
		})
	}
}

func TestToGiB(t *testing.T) {
	if got := toGiB(1 << 30); got != 1.0 {
		t.Fatalf("toGiB(1 GiB) = %v", got)
	}
	if got := toGiB(0); got != 0 {
		t.Fatalf("toGiB(0) = %v", got)
	}
}

func TestTimeOfDay(t *testing.T) {
	if got := timeOfDay("2024-01-31 20:15"); got != "20:15" {
		t.Fatalf("timeOfDay = %q", got)
	}
	if got := timeOfDay(""); got != "" {
		t.Fatalf("timeOfDay of empty = %q", got)
	}
}
