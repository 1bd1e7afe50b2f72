package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thoreinstein/argtypes/internal/errors"
	"github.com/thoreinstein/argtypes/internal/logging"
	"github.com/thoreinstein/argtypes/internal/report"
)

func TestRunCheck(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "a")
	b := writeFile(t, dir, "b.txt", "b")

	var buf bytes.Buffer
	err := runCheckWithWriter(&buf, logging.ForTest(t), "file", []string{a, dir + "/./b.txt"})
	if err != nil {
		t.Fatalf("runCheck() error = %v", err)
	}

	want := a + "\n" + b + "\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestRunCheck_StopsAtFirstFailure(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "a")
	missing := filepath.Join(dir, "missing.txt")

	var buf bytes.Buffer
	err := runCheckWithWriter(&buf, logging.ForTest(t), "file", []string{a, missing, a})
	if err == nil {
		t.Fatal("expected error")
	}
	if got, want := err.Error(), `file "`+missing+`" does not exist.`; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
	if code := errors.ExitCode(err); code != errors.ExitUser {
		t.Errorf("ExitCode() = %d, want %d", code, errors.ExitUser)
	}
	if strings.Count(buf.String(), "\n") != 1 {
		t.Errorf("only the first path should be printed, got %q", buf.String())
	}
}

func TestRunCheck_UnknownKind(t *testing.T) {
	err := runCheckWithWriter(&bytes.Buffer{}, logging.ForTest(t), "pipe", []string{"/"})
	if !errors.Is(err, errors.ErrUnknownCheck) {
		t.Fatalf("error = %v, want ErrUnknownCheck", err)
	}

	var exitErr *errors.ExitError
	if !errors.As(err, &exitErr) || exitErr.Suggestion != "Run: argtypes kinds" {
		t.Errorf("expected a suggestion to list kinds, got %#v", err)
	}
}

func TestRunCheck_EmptyDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "x", "")

	err := runCheckWithWriter(&bytes.Buffer{}, logging.ForTest(t), "empty-dir", []string{dir})
	if err == nil || err.Error() != `"`+dir+`" must be an empty directory.` {
		t.Errorf("error = %v", err)
	}
}

func TestCompleteKinds(t *testing.T) {
	names, _ := completeKinds(checkCmd, nil, "")
	if len(names) == 0 || !strings.HasPrefix(names[0], "file\t") {
		t.Errorf("completeKinds() = %v", names)
	}

	if names, _ := completeKinds(checkCmd, []string{"file"}, ""); names != nil {
		t.Errorf("paths should use default completion, got %v", names)
	}
}

func TestRunCheckAll(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "a")
	missing := filepath.Join(dir, "missing.txt")

	var buf bytes.Buffer
	err := runCheckAllWithWriter(&buf, logging.ForTest(t), report.FormatText, "file", []string{missing, a, dir})
	if err == nil || err.Error() != "2 of 3 paths rejected" {
		t.Fatalf("error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		`✗ file "` + missing + `" does not exist. [file]`,
		"✓ " + a,
		`✗ "` + dir + `" is not a regular file. [file]`,
		"3 checked, 2 rejected",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunCheckAll_JSON(t *testing.T) {
	dir := t.TempDir()

	var buf bytes.Buffer
	if err := runCheckAllWithWriter(&buf, logging.ForTest(t), report.FormatJSON, "directory", []string{dir}); err != nil {
		t.Fatalf("runCheckAll() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"rejected": 0`) || !strings.Contains(buf.String(), `"path": "`+dir+`"`) {
		t.Errorf("output = %s", buf.String())
	}
}
