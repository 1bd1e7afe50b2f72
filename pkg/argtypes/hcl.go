package argtypes

import (
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

func init() {
	registerFormat(Format{
		Name:       "hcl",
		Extensions: []string{".hcl"},
		New:        HCLFile,
	})
}

// HCLFile returns a handler that loads an existing regular file as HCL.
//
// Only top-level attributes are accepted. Each expression is evaluated with
// no variables or functions in scope, so the file must hold literal data.
func HCLFile(opts ...Option) Handler[any] {
	o := newOptions(opts)

	return loadFile("hcl", o, func(p Path, data []byte) (any, error) {
		v, err := decodeHCL(p.String(), data)
		if err != nil {
			return nil, newArgError(err, `unable to load HCL file "%s": %s`, p, err)
		}
		return v, nil
	})
}

func decodeHCL(filename string, data []byte) (map[string]any, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, diags
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	// Evaluate in source order so the first failing attribute is reported.
	sorted := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		sorted = append(sorted, attr)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Range.Start.Byte < sorted[j].Range.Start.Byte
	})

	out := make(map[string]any, len(sorted))
	for _, attr := range sorted {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, diags
		}
		native, err := ctyToNative(val)
		if err != nil {
			return nil, errors.Wrapf(err, "attribute %q", attr.Name)
		}
		out[attr.Name] = native
	}
	return out, nil
}

// ctyToNative converts a cty value into the same shapes the JSON loader
// produces: map[string]any, []any, string, float64, bool or nil.
func ctyToNative(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, errors.Wrap(err, "converting number")
		}
		return f, nil

	case ty == cty.Bool:
		return v.True(), nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		out := make([]any, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			native, err := ctyToNative(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, native)
		}
		return out, nil

	case ty.IsObjectType() || ty.IsMapType():
		out := make(map[string]any, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			key, elem := it.Element()
			native, err := ctyToNative(elem)
			if err != nil {
				return nil, errors.Wrapf(err, "key %q", key.AsString())
			}
			out[key.AsString()] = native
		}
		return out, nil

	default:
		return nil, errors.Newf("unsupported value type %s", ty.FriendlyName())
	}
}
