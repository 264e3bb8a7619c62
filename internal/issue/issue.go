// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	UnrecognizedVirtualFileId Id = iota + 1
	InvalidOwnerPackageId
	GraphLoadFailedId
	ConfigLoadFailedId
	RenderFailedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // must never be empty, because we need to have docs about all issue types
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	unrecognizedVirtualFileIssue = &Issue{
		id: UnrecognizedVirtualFileId,
		mdMsg: `
# Unrecognized virtual file!

A filename was routed to the synthesizer but matches none of the
virtual-file shapes.

## Virtual filename shapes:
- ` + "`/@quilter/external/<module-name>`" + `
- ` + "`<template-path>/<encoded>/quilter-pair-component`" + `
- ` + "`<path>/quilter_fastboot_switch[?names=a,b]`" + `
- ` + "`<path>/#quilter-implicit-modules`" + ` (or ` + "`-test-modules`" + `)

## Things you can try:
- Check how the filename was produced; only filenames the resolver
  itself encoded should reach the synthesizer
- Decode the filename to see which shape it almost matches:
~~~
$ quilter decode '<filename>'
~~~`,
	}

	invalidOwnerPackageIssue = &Issue{
		id: InvalidOwnerPackageId,
		mdMsg: `
# Invalid owning package!

An implicit-modules filename points into a package that is not a
recognized v2 package. This is a defect in whatever produced the
filename, not in your project.

## Things you can try:
- Inspect the package that owns the file:
~~~
$ quilter implicit --root /path/to/app '<from-file>'
~~~

- Check the package's manifest declares version 2 metadata
- Verify the dependency graph was loaded from the right root`,
	}

	graphLoadFailedIssue = &Issue{
		id: GraphLoadFailedId,
		mdMsg: `
# Failed to load the dependency graph!

Could not read the package tree under the given root.

## Things you can try:
- Check the root directory contains a package.json
- Check node_modules has been installed:
~~~
$ npm install
~~~

- Run with verbose mode to see which manifests were skipped:
~~~
$ quilter --verbose implicit --root /path/to/app '<from-file>'
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the quilter configuration file.

## Configuration file locations:
- Linux: ~/.config/quilter/config.cue
- macOS: ~/Library/Application Support/quilter/config.cue
- Windows: %APPDATA%\quilter\config.cue

## Things you can try:
- Check the configuration syntax
- Remove the config file to use defaults:
~~~
$ rm ~/.config/quilter/config.cue
~~~

## Example configuration:
~~~cue
resolvable_extensions: [".js", ".ts", ".hbs"]

ui: {
  color_scheme: "auto"
  verbose: false
}
~~~`,
	}

	renderFailedIssue = &Issue{
		id: RenderFailedId,
		mdMsg: `
# Failed to render module source!

A virtual file decoded fine but its source could not be generated.

## Common causes:
- An implicit-modules filename whose owning package graph could not
  be aggregated
- A template resource missing from the build

## Things you can try:
- Run with verbose mode for more details:
~~~
$ quilter --verbose render '<filename>'
~~~

- Decode the filename first to confirm the variant:
~~~
$ quilter decode '<filename>'
~~~`,
	}

	issues = map[Id]*Issue{
		unrecognizedVirtualFileIssue.Id(): unrecognizedVirtualFileIssue,
		invalidOwnerPackageIssue.Id():     invalidOwnerPackageIssue,
		graphLoadFailedIssue.Id():         graphLoadFailedIssue,
		configLoadFailedIssue.Id():        configLoadFailedIssue,
		renderFailedIssue.Id():            renderFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
