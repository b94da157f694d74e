package version

import "testing"

func TestBuildIDFor(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		expected  int
		wantError bool
	}{
		{name: "epoch date", date: "2026-03-01", expected: 0},
		{name: "next day after epoch", date: "2026-03-02", expected: 1},
		{name: "one year later", date: "2027-03-01", expected: 365},
		{name: "date with leap years included", date: "2032-03-01", expected: 2192},
		{name: "invalid format", date: "invalid", wantError: true},
		{name: "empty date", date: "", wantError: true},
		{name: "before epoch", date: "2026-02-28", wantError: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := BuildIDFor(tt.date)

			if tt.wantError {
				if err == nil {
					t.Fatalf("expected error, got nil (id=%d)", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("BuildIDFor(%q) = %d, want %d", tt.date, got, tt.expected)
			}
		})
	}
}

func TestVersionInfo_String(t *testing.T) {
	info := VersionInfo{BuildID: 3, BuildDate: "2026-03-04", Commit: "abc", Branch: "main", Calculated: true}
	want := "Build 3 (2026-03-04) commit[abc] branch[main]"
	if got := info.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	unknown := VersionInfo{Error: "build date is empty"}
	if got := unknown.String(); got != "Build unknown (build date is empty)" {
		t.Errorf("String() = %q", got)
	}
	if unknown.Fields()["build"] != "unknown" {
		t.Error("uncalculated build must be reported as unknown")
	}
}
