package cmd

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootDoc = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childDoc = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// docsCmd writes the Markdown docs of every command
var docsCmd = &cobra.Command{
	Use:    "docs [dir]",
	Short:  "Write Markdown documentation for each command",
	Args:   cobra.MaximumNArgs(1),
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "./docs"
		if len(args) > 0 {
			dir = args[0]
		}
		return doc.GenMarkdownTreeCustom(RootCmd, dir, filePrepender, linkHandler)
	},
}

func init() {
	RootCmd.AddCommand(docsCmd)
}

// navOrder of each command's page, by base Markdown file name
var navOrder = map[string]int{
	"contig":            0,
	"contig_align":      0,
	"contig_assemble":   1,
	"contig_transcribe": 2,
	"contig_translate":  3,
	"contig_predict":    4,
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(filename string) string {
	base := docBase(filename)
	if base == "contig" {
		return fmt.Sprintf(rootDoc, base, navOrder[base])
	}
	return fmt.Sprintf(childDoc, strings.TrimPrefix(base, "contig_"), "contig", navOrder[base])
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	if base := docBase(filename); base != "contig" {
		return base
	}
	return "/"
}

func docBase(filename string) string {
	name := filepath.Base(filename)
	return strings.TrimSuffix(name, path.Ext(name))
}
