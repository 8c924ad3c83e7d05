package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("MIDLINE_TEST_SET", "2223")
	t.Setenv("MIDLINE_TEST_EMPTY", "")

	tests := []struct {
		key, fallback, want string
	}{
		{"MIDLINE_TEST_SET", "2222", "2223"},
		{"MIDLINE_TEST_EMPTY", "2222", ""},
		{"MIDLINE_TEST_UNSET", "2222", "2222"},
	}
	for _, tt := range tests {
		if got := GetEnv(tt.key, tt.fallback); got != tt.want {
			t.Errorf("GetEnv(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
