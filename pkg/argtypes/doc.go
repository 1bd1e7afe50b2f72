// Package argtypes provides validator/converter handlers for command-line
// arguments.
//
// A handler takes the raw string a user typed and returns either a validated,
// normalized value or an [*ArgumentTypeError] whose message is suitable for
// printing as-is. Handlers never modify the filesystem.
//
// # Path Handlers
//
// Path handlers check that an entry of a given kind exists:
//
//	dir, err := argtypes.ExistingDirectory()("/var/lib/data")
//	if err != nil {
//		fmt.Fprintln(os.Stderr, err) // directory "/var/lib/data" does not exist.
//	}
//
// All of them are built from [Existing] and a [Kind], which bundles the
// display name, the type predicate and the existence predicate:
//
//	| Handler             | Missing message                     | Wrong-kind message            |
//	|---------------------|-------------------------------------|-------------------------------|
//	| ExistingFile        | file "p" does not exist.            | "p" is not a regular file.    |
//	| ExistingDirectory   | directory "p" does not exist.       | "p" is not a directory.       |
//	| ExistingSymlink     | symbolic link "p" does not exist.   | "p" is not a symbolic link.   |
//
// [NonexistentOrEmptyDirectory] accepts output locations that are either
// missing or empty directories.
//
// # Content Loaders
//
// [JSONFile], [TOMLFile], [HCLFile] and (unless built with the
// argtypes_noyaml tag) YAMLFile validate the path with [ExistingFile] and
// parse the contents into generic Go values (map[string]any, []any, string,
// float64, bool). [ConfigFile] picks a loader from the file extension.
// Use [YAMLAvailable] or [LookupFormat] to detect whether YAML support was
// compiled in.
//
// # Parser Integration
//
// [PathValue] and [DataValue] implement pflag.Value so a handler can back a
// cobra flag, and [Args] turns handlers into cobra.PositionalArgs:
//
//	var input = argtypes.NewPathValue(argtypes.ExistingFile(), "file")
//	cmd.Flags().Var(input, "input", "input file")
package argtypes
