// Package landing renders the static hero and feature presentation shown
// before the workflow.
package landing

import (
	"fmt"
	"io"
	"sync"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

const (
	Title    = "DrawIO Converter"
	Tagline  = "Turn your UML diagrams into ready-to-use Java code"
	StartCmd = "start"

	WorkflowHeading = "Convert your DrawIO diagrams to Java"
	FeaturesHeading = "Why use DrawIO Converter?"
	Footer          = "© 2024 DrawIO Converter. All rights reserved."
)

type Feature struct {
	Title       string
	Description string
}

var Features = []Feature{
	{Title: "Fast conversion", Description: "Turn DrawIO diagrams into Java code in seconds"},
	{Title: "Automatic generation", Description: "Generate Java classes from your UML models"},
	{Title: "Quality code", Description: "Clean, structured code that follows best practices"},
}

// Page is the landing presentation. The hero is revealed once; later calls
// to ShowHero are no-ops.
type Page struct {
	w        io.Writer
	colorize bool
	revealed sync.Once
}

func New(w io.Writer, colorize bool) *Page {
	return &Page{w: w, colorize: colorize}
}

func (p *Page) title(s string) string {
	if !p.colorize {
		return s
	}
	return color.New(color.FgLightBlue, color.OpBold).Sprint(s)
}

// ShowHero prints the banner and the call to action.
func (p *Page) ShowHero() {
	p.revealed.Do(func() {
		fmt.Fprintln(p.w, p.title("</> "+Title))
		fmt.Fprintln(p.w, Tagline)
		fmt.Fprintf(p.w, "Type %q to begin, \"help\" for all commands.\n\n", StartCmd)
	})
}

// ShowWorkflowHeading is the target of the start action.
func (p *Page) ShowWorkflowHeading() {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.title(WorkflowHeading))
}

// ShowFeatures prints the feature cards as a table.
func (p *Page) ShowFeatures() {
	fmt.Fprintln(p.w, p.title(FeaturesHeading))

	table := tablewriter.NewWriter(p.w)
	table.SetHeader([]string{"Feature", "What you get"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, f := range Features {
		table.Append([]string{f.Title, f.Description})
	}
	table.Render()
}

func (p *Page) ShowFooter() {
	fmt.Fprintln(p.w, Footer)
}
