//go:build unix

package argtypes

import (
	"errors"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"golang.org/x/sys/unix"
)

var (
	nonexistentRE = regexp.MustCompile(`.* does not exist`)
	wrongTypeRE   = regexp.MustCompile(`.* is not a .*`)
)

func touch(t *testing.T, p Path) Path {
	t.Helper()
	if err := os.WriteFile(string(p), nil, 0o600); err != nil {
		t.Fatalf("creating %s: %v", p, err)
	}
	return p
}

func mkfifo(t *testing.T, p Path) Path {
	t.Helper()
	if err := unix.Mkfifo(string(p), 0o600); err != nil {
		t.Skipf("mkfifo not permitted here: %v", err)
	}
	return p
}

// listenUnix binds a socket in a short temp dir; sun_path is limited to ~104 bytes.
func listenUnix(t *testing.T) Path {
	t.Helper()
	dir, err := os.MkdirTemp("", "sock")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	p := Path(filepath.Join(dir, "s"))
	l, err := net.Listen("unix", string(p))
	if err != nil {
		t.Skipf("unix sockets unavailable: %v", err)
	}
	t.Cleanup(func() { l.Close() })
	return p
}

func findBlockDevice(t *testing.T) Path {
	t.Helper()
	entries, err := os.ReadDir("/dev")
	if err != nil {
		t.Skipf("no /dev: %v", err)
	}
	for _, e := range entries {
		p := Path(filepath.Join("/dev", e.Name()))
		if ok, _ := IsBlockDevice(p); ok {
			return p
		}
	}
	t.Skip("no block device visible")
	return ""
}

func TestExistingKinds(t *testing.T) {
	tests := []struct {
		name    string
		handler func() Handler[Path]
		// matching creates or finds an entry of the handler's kind.
		matching func(t *testing.T, dir Path) Path
		// other creates an existing entry of a different kind.
		other func(t *testing.T, dir Path) Path
	}{
		{
			name:     "file",
			handler:  ExistingFile,
			matching: func(t *testing.T, dir Path) Path { return touch(t, dir.Join("file")) },
			other:    func(_ *testing.T, dir Path) Path { return dir },
		},
		{
			name:     "directory",
			handler:  ExistingDirectory,
			matching: func(_ *testing.T, dir Path) Path { return dir },
			other:    func(t *testing.T, dir Path) Path { return touch(t, dir.Join("file")) },
		},
		{
			name:     "mount",
			handler:  ExistingMount,
			matching: func(*testing.T, Path) Path { return "/" },
			other:    func(t *testing.T, dir Path) Path { return touch(t, dir.Join("file")) },
		},
		{
			name:     "fifo",
			handler:  ExistingFifo,
			matching: func(t *testing.T, dir Path) Path { return mkfifo(t, dir.Join("fifo")) },
			other:    func(t *testing.T, dir Path) Path { return touch(t, dir.Join("file")) },
		},
		{
			name:     "block device",
			handler:  ExistingBlockDevice,
			matching: func(t *testing.T, _ Path) Path { return findBlockDevice(t) },
			other:    func(t *testing.T, dir Path) Path { return touch(t, dir.Join("file")) },
		},
		{
			name:     "char device",
			handler:  ExistingCharDevice,
			matching: func(*testing.T, Path) Path { return "/dev/null" },
			other:    func(t *testing.T, dir Path) Path { return touch(t, dir.Join("file")) },
		},
		{
			name:     "socket",
			handler:  ExistingSocket,
			matching: func(t *testing.T, _ Path) Path { return listenUnix(t) },
			other:    func(t *testing.T, dir Path) Path { return touch(t, dir.Join("file")) },
		},
		{
			name:    "symlink",
			handler: ExistingSymlink,
			matching: func(t *testing.T, dir Path) Path {
				link := dir.Join("symlink")
				if err := os.Symlink(string(link.Join("file")), string(link)); err != nil {
					t.Fatal(err)
				}
				return link
			},
			other: func(t *testing.T, dir Path) Path { return touch(t, dir.Join("file")) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/matching", func(t *testing.T) {
			p := tt.matching(t, Path(t.TempDir()))
			h := tt.handler()

			got, err := h(string(p))
			if err != nil {
				t.Fatalf("handler(%q) error = %v", p, err)
			}
			if got != p {
				t.Errorf("handler(%q) = %q, want unchanged", p, got)
			}

			// A Path value converts back without change.
			got, err = h(NewPath(p).String())
			if err != nil || got != p {
				t.Errorf("handler(Path %q) = %q, %v", p, got, err)
			}
		})

		t.Run(tt.name+"/nonexistent", func(t *testing.T) {
			p := Path(t.TempDir()).Join("nonexistent-" + tt.name)

			_, err := tt.handler()(string(p))
			if err == nil {
				t.Fatal("expected error")
			}
			if !IsArgumentTypeError(err) {
				t.Errorf("error type = %T, want *ArgumentTypeError", err)
			}
			if !nonexistentRE.MatchString(err.Error()) {
				t.Errorf("error = %q, want match %q", err, nonexistentRE)
			}
		})

		t.Run(tt.name+"/wrong kind", func(t *testing.T) {
			p := tt.other(t, Path(t.TempDir()))

			_, err := tt.handler()(string(p))
			if err == nil {
				t.Fatal("expected error")
			}
			if !wrongTypeRE.MatchString(err.Error()) {
				t.Errorf("error = %q, want match %q", err, wrongTypeRE)
			}
		})
	}
}

func TestExistingFile_Messages(t *testing.T) {
	dir := Path(t.TempDir())
	missing := dir.Join("missing.txt")

	_, err := ExistingFile()(string(missing))
	if got, want := err.Error(), `file "`+string(missing)+`" does not exist.`; got != want {
		t.Errorf("missing: got %q, want %q", got, want)
	}

	_, err = ExistingFile()(string(dir))
	if got, want := err.Error(), `"`+string(dir)+`" is not a regular file.`; got != want {
		t.Errorf("wrong kind: got %q, want %q", got, want)
	}
}

func TestExistingSymlink_Dangling(t *testing.T) {
	dir := Path(t.TempDir())
	link := dir.Join("dangling")
	if err := os.Symlink(string(dir.Join("missing")), string(link)); err != nil {
		t.Fatal(err)
	}

	if _, err := ExistingSymlink()(string(link)); err != nil {
		t.Errorf("ExistingSymlink() on dangling link error = %v", err)
	}

	// The default existence check follows the link.
	_, err := ExistingFile()(string(link))
	if err == nil || !nonexistentRE.MatchString(err.Error()) {
		t.Errorf("ExistingFile() on dangling link error = %v, want does-not-exist", err)
	}
}

func TestExistingFile_FollowsSymlink(t *testing.T) {
	dir := Path(t.TempDir())
	target := touch(t, dir.Join("target"))
	link := dir.Join("link")
	if err := os.Symlink(string(target), string(link)); err != nil {
		t.Fatal(err)
	}

	got, err := ExistingFile()(string(link))
	if err != nil {
		t.Fatalf("ExistingFile() error = %v", err)
	}
	if got != link {
		t.Errorf("ExistingFile() = %q, want the link path %q", got, link)
	}
}

func TestExistingMount_SymlinkToRoot(t *testing.T) {
	link := Path(t.TempDir()).Join("root")
	if err := os.Symlink("/", string(link)); err != nil {
		t.Fatal(err)
	}

	_, err := ExistingMount()(string(link))
	if err == nil || !wrongTypeRE.MatchString(err.Error()) {
		t.Errorf("symlink to / should not be a mount point, error = %v", err)
	}
}

func TestExisting_AccessError(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	dir := Path(t.TempDir())
	locked := dir.Join("locked")
	if err := os.Mkdir(string(locked), 0o700); err != nil {
		t.Fatal(err)
	}
	touch(t, locked.Join("file"))
	if err := os.Chmod(string(locked), 0); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(string(locked), 0o700) })

	_, err := ExistingFile()(string(locked.Join("file")))
	if err == nil {
		t.Fatal("expected error")
	}
	if !regexp.MustCompile(`^unable to access ".*": permission denied$`).MatchString(err.Error()) {
		t.Errorf("error = %q", err)
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Errorf("error should wrap the permission failure: %#v", err)
	}
}

func TestExisting_Idempotent(t *testing.T) {
	dir := Path(t.TempDir())
	file := touch(t, dir.Join("file"))

	for _, arg := range []string{string(file), string(dir.Join("missing"))} {
		h := ExistingFile()
		p1, err1 := h(arg)
		p2, err2 := h(arg)
		if p1 != p2 {
			t.Errorf("results differ for %q: %q vs %q", arg, p1, p2)
		}
		if (err1 == nil) != (err2 == nil) || (err1 != nil && err1.Error() != err2.Error()) {
			t.Errorf("errors differ for %q: %v vs %v", arg, err1, err2)
		}
	}
}

func TestExisting_CustomKind(t *testing.T) {
	dir := Path(t.TempDir())
	file := touch(t, dir.Join("empty"))

	isEmptyFile := func(p Path) (bool, error) {
		info, err := os.Stat(string(p))
		if err != nil {
			return statResult(err)
		}
		return info.Mode().IsRegular() && info.Size() == 0, nil
	}
	h := Existing(Kind{Name: "file", Extended: "empty file", Is: isEmptyFile})

	if _, err := h(string(file)); err != nil {
		t.Errorf("empty file rejected: %v", err)
	}

	full := dir.Join("full")
	if err := os.WriteFile(string(full), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := h(string(full))
	if err == nil || err.Error() != `"`+string(full)+`" is not a empty file.` {
		t.Errorf("error = %v", err)
	}
}

func TestExistingFile_DotDotThroughSymlink(t *testing.T) {
	dir := Path(t.TempDir())
	sub := dir.Join("real", "sub")
	if err := os.MkdirAll(string(sub), 0o700); err != nil {
		t.Fatal(err)
	}
	touch(t, dir.Join("real", "f"))
	link := dir.Join("link")
	if err := os.Symlink(string(sub), string(link)); err != nil {
		t.Fatal(err)
	}

	// link/../f is real/f once the kernel follows the link.
	arg := string(link) + "/../f"
	got, err := ExistingFile()(arg)
	if err != nil {
		t.Fatalf("ExistingFile(%q) error = %v", arg, err)
	}
	if want := Path(arg); got != want {
		t.Errorf("ExistingFile(%q) = %q, want %q", arg, got, want)
	}

	// A file beside the link must not stand in for the resolved target.
	touch(t, dir.Join("g"))
	arg = string(link) + "/../g"
	_, err = ExistingFile()(arg)
	if err == nil {
		t.Fatalf("ExistingFile(%q) accepted %s", arg, dir.Join("g"))
	}
	if want := `file "` + arg + `" does not exist.`; err.Error() != want {
		t.Errorf("error = %q, want %q", err, want)
	}
}

func TestExisting_NilPredicateChecksExistence(t *testing.T) {
	dir := Path(t.TempDir())
	h := Existing(Kind{Name: "entry"})

	for _, p := range []Path{dir, touch(t, dir.Join("file")), "/dev/null"} {
		if _, err := h(string(p)); err != nil {
			t.Errorf("Existing(entry)(%q) error = %v", p, err)
		}
	}

	missing := dir.Join("missing")
	_, err := h(string(missing))
	if err == nil || err.Error() != `entry "`+string(missing)+`" does not exist.` {
		t.Errorf("error = %v", err)
	}
}
