package argtypes

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*PathValue)(nil)
	_ pflag.Value = (*DataValue)(nil)
)

// PathValue is a pflag.Value that runs a path handler when the flag is set.
type PathValue struct {
	handler Handler[Path]
	typ     string
	path    Path
}

// NewPathValue returns a flag value validated by h. typ is shown in usage
// output, e.g. "file" or "dir".
func NewPathValue(h Handler[Path], typ string) *PathValue {
	return &PathValue{handler: h, typ: typ}
}

// Set validates s and stores the resulting path.
func (v *PathValue) Set(s string) error {
	p, err := v.handler(s)
	if err != nil {
		return err
	}
	v.path = p
	return nil
}

// String returns the validated path, or "" if the flag was never set.
func (v *PathValue) String() string {
	return string(v.path)
}

// Type returns the usage type name.
func (v *PathValue) Type() string {
	return v.typ
}

// Path returns the validated path.
func (v *PathValue) Path() Path {
	return v.path
}

// DataValue is a pflag.Value that loads structured data when the flag is set.
type DataValue struct {
	handler Handler[any]
	typ     string
	source  string
	data    any
}

// NewDataValue returns a flag value loaded by h.
func NewDataValue(h Handler[any], typ string) *DataValue {
	return &DataValue{handler: h, typ: typ}
}

// Set loads the file named by s.
func (v *DataValue) Set(s string) error {
	data, err := v.handler(s)
	if err != nil {
		return err
	}
	v.source = s
	v.data = data
	return nil
}

// String returns the path the data was loaded from.
func (v *DataValue) String() string {
	return v.source
}

// Type returns the usage type name.
func (v *DataValue) Type() string {
	return v.typ
}

// Data returns the loaded value.
func (v *DataValue) Data() any {
	return v.data
}

// Args returns cobra.PositionalArgs that validates args[i] with handlers[i].
// Arguments past the last handler are validated by the last handler, so
// Args(ExistingFile()) checks every argument. Argument counts are not
// enforced; combine with cobra.MatchAll and cobra.ExactArgs for that.
func Args[T any](handlers ...Handler[T]) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(handlers) == 0 {
			return nil
		}
		for i, arg := range args {
			h := handlers[min(i, len(handlers)-1)]
			if _, err := h(arg); err != nil {
				return err
			}
		}
		return nil
	}
}
