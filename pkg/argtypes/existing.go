package argtypes

import (
	"io/fs"
)

// Handler converts a raw command-line argument into a validated value.
type Handler[T any] func(arg string) (T, error)

// Kind describes a kind of filesystem entry for [Existing].
type Kind struct {
	// Name is used in the "does not exist" message, e.g. "file".
	Name string

	// Extended is used in the "is not a" message, e.g. "regular file".
	// Defaults to Name.
	Extended string

	// Is is the type predicate. When nil, any existing entry is accepted.
	Is Predicate

	// Exists is the existence predicate. Defaults to [Exists], which follows
	// symbolic links.
	Exists Predicate
}

func (k Kind) extended() string {
	if k.Extended == "" {
		return k.Name
	}
	return k.Extended
}

func (k Kind) is() Predicate {
	if k.Is == nil {
		return func(Path) (bool, error) { return true, nil }
	}
	return k.Is
}

func (k Kind) exists() Predicate {
	if k.Exists == nil {
		return Exists
	}
	return k.Exists
}

var (
	kindFile        = Kind{Name: "file", Extended: "regular file", Is: IsRegular}
	kindDirectory   = Kind{Name: "directory", Is: IsDir}
	kindMount       = Kind{Name: "mount point", Is: IsMount}
	kindFifo        = Kind{Name: "FIFO", Is: IsFifo}
	kindBlockDevice = Kind{Name: "block device", Is: IsBlockDevice}
	kindCharDevice  = Kind{Name: "char device", Is: IsCharDevice}
	kindSocket      = Kind{Name: "socket", Is: IsSocket}
	kindSymlink     = Kind{Name: "symbolic link", Is: IsSymlink, Exists: LExists}
)

// Existing returns a handler that requires an entry of kind k at the given
// path. Existence is checked before the type so a missing entry and an entry
// of the wrong kind produce different messages.
func Existing(k Kind) Handler[Path] {
	exists := k.exists()
	is := k.is()
	extended := k.extended()

	return func(arg string) (Path, error) {
		p := NewPath(arg)

		ok, err := exists(p)
		if err != nil {
			return "", accessError(p, err)
		}
		if !ok {
			return "", newArgError(fs.ErrNotExist, `%s "%s" does not exist.`, k.Name, p)
		}

		ok, err = is(p)
		if err != nil {
			return "", accessError(p, err)
		}
		if !ok {
			return "", newArgError(nil, `"%s" is not a %s.`, p, extended)
		}

		return p, nil
	}
}

// ExistingFile requires an existing regular file.
func ExistingFile() Handler[Path] {
	return Existing(kindFile)
}

// ExistingDirectory requires an existing directory.
func ExistingDirectory() Handler[Path] {
	return Existing(kindDirectory)
}

// ExistingMount requires an existing mount point.
func ExistingMount() Handler[Path] {
	return Existing(kindMount)
}

// ExistingFifo requires an existing named pipe.
func ExistingFifo() Handler[Path] {
	return Existing(kindFifo)
}

// ExistingBlockDevice requires an existing block device.
func ExistingBlockDevice() Handler[Path] {
	return Existing(kindBlockDevice)
}

// ExistingCharDevice requires an existing character device.
func ExistingCharDevice() Handler[Path] {
	return Existing(kindCharDevice)
}

// ExistingSocket requires an existing unix domain socket.
func ExistingSocket() Handler[Path] {
	return Existing(kindSocket)
}

// ExistingSymlink requires a symbolic link. The link target does not need to
// exist.
func ExistingSymlink() Handler[Path] {
	return Existing(kindSymlink)
}
