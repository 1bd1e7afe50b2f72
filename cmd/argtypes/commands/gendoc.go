package commands

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/thoreinstein/argtypes/internal/errors"
	"github.com/thoreinstein/argtypes/internal/paths"
	"github.com/thoreinstein/argtypes/pkg/argtypes"
)

// genDocDir refuses directories that already hold files.
var genDocDir = argtypes.NewPathValue(argtypes.NonexistentOrEmptyDirectory(), "dir")

var genDocCmd = &cobra.Command{
	Use:    "gen-doc",
	Short:  "Generate Markdown documentation for the CLI",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runGenDoc(cmd.OutOrStdout(), rootCmd, genDocDir.String())
	},
}

func init() {
	genDocCmd.Flags().VarP(genDocDir, "dir", "d", "output directory, missing or empty")
	_ = genDocCmd.MarkFlagRequired("dir")
	rootCmd.AddCommand(genDocCmd)
}

func runGenDoc(w io.Writer, root *cobra.Command, outputDir string) error {
	if outputDir == "" {
		return errors.NewUserError(errors.New("output directory is required"), "")
	}

	if err := paths.EnsureDir(outputDir, paths.DefaultDirPerm); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "creating output directory"), "")
	}

	// Frontmatter is added so the pages drop into a static site unchanged
	root.DisableAutoGenTag = true
	if err := doc.GenMarkdownTreeCustom(root, outputDir, filePrepender, linkHandler); err != nil {
		return errors.NewSystemError(errors.Wrap(err, "generating markdown"), "")
	}

	fmt.Fprintf(w, "Documentation generated in %s\n", outputDir)
	return nil
}

func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, filepath.Ext(name))
	// argtypes_config_get.md -> argtypes config get
	title := strings.ReplaceAll(base, "_", " ")

	return fmt.Sprintf(`---
title: "%s"
description: "Reference for %s command"
draft: false
toc: true
---
`, title, title)
}

func linkHandler(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return "/docs/reference/" + strings.ToLower(base) + "/"
}
