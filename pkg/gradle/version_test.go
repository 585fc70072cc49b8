package gradle

import "testing"

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int // sign only
	}{
		{name: "Equal", a: "8.5", b: "8.5", want: 0},
		{name: "MajorWins", a: "9.0", b: "8.11", want: 1},
		{name: "MinorCompared", a: "8.4", b: "8.5", want: -1},
		{name: "MissingMinorIsZero", a: "5", b: "5.0", want: 0},
		{name: "PatchIgnored", a: "6.7.1", b: "6.7", want: 0},
		{name: "SuffixStripped", a: "7.0-rc-1", b: "7.0", want: 0},
		{name: "MalformedIsZero", a: "garbage", b: "0.0", want: 0},
		{name: "MalformedBelowMin", a: "garbage", b: "4.4", want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompareVersions(tt.a, tt.b)
			if sign(got) != tt.want {
				t.Errorf("CompareVersions(%q, %q) = %d, want sign %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func TestSupportedVersion(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"8.5", true},
		{"4.4", true},
		{"4.10.3", true},
		{"4.3", false},
		{"3.5", false},
		{"10.0", true},
	}

	for _, tt := range tests {
		if got := SupportedVersion(tt.version); got != tt.want {
			t.Errorf("SupportedVersion(%q) = %v, want %v", tt.version, got, tt.want)
		}
	}
}

func TestFailureFormat(t *testing.T) {
	tests := []struct {
		name    string
		failure *Failure
		want    string
	}{
		{
			name:    "Nil",
			failure: nil,
			want:    "",
		},
		{
			name:    "Single",
			failure: &Failure{Kind: "ModuleVersionNotFoundException", Message: "Could not find com.foo:bar:1.0."},
			want:    "ModuleVersionNotFoundException: Could not find com.foo:bar:1.0.",
		},
		{
			name: "Chain",
			failure: &Failure{
				Kind:    "ResolveException",
				Message: "Could not resolve all dependencies.",
				Cause: &Failure{
					Kind:    "ConnectException",
					Message: "Connection refused",
					Cause: &Failure{
						Kind:    "IOException",
						Message: "no route to host",
					},
				},
			},
			want: "ResolveException: Could not resolve all dependencies." +
				"\nCaused by: ConnectException: Connection refused" +
				"\nCaused by: IOException: no route to host",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.failure.Format(); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}
