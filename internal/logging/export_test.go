package logging

import (
	"os"
	"testing"
)

// unsetenv removes key for the duration of the test. t.Setenv registers the
// restore, so the variable comes back afterwards.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestMain(m *testing.M) {
	// Buffers never get color unless this is set; keep output assertions stable.
	os.Unsetenv("FORCE_COLOR")
	os.Exit(m.Run())
}
