package services

import "testing"

func TestNormaliseText(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"  Core HR  ", "Core HR"},
		{"Employee\tSelf\n Service", "Employee Self Service"},
		{"   ", ""},
		{"", ""},
		{"360 Feedback", "360 Feedback"},
	}

	for _, tt := range tests {
		if got := normaliseText(tt.raw); got != tt.want {
			t.Errorf("normaliseText(%q) = %q; want %q", tt.raw, got, tt.want)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Core HR", "core-hr"},
		{"Employee Self Service", "employee-self-service"},
		{"360 Feedback", "360-feedback"},
		{"Learning", "learning"},
	}

	for _, tt := range tests {
		if got := slugify(tt.raw); got != tt.want {
			t.Errorf("slugify(%q) = %q; want %q", tt.raw, got, tt.want)
		}
	}
}
