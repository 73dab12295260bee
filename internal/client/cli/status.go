package cli

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/drawioconv/internal/client/workflow"
	"github.com/olekukonko/tablewriter"
)

func renderStatus(w io.Writer, st workflow.State) {
	file := st.FileName()
	if file == "" {
		file = "-"
	}
	artifact := "-"
	if st.Artifact != nil {
		artifact = st.Artifact.DisplayName()
	}
	converting := "no"
	if st.InFlight {
		converting = fmt.Sprintf("yes (%s)", st.Phase)
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.AppendBulk([][]string{
		{"Step", fmt.Sprintf("%d/%d %s", int(st.Step)+1, workflow.StepCount, st.Step)},
		{"File", file},
		{"Converting", converting},
		{"Result", artifact},
	})
	table.Render()
}
