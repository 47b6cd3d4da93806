package filter

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderStatsTable lays the report out as a rounded table with the numeric
// columns right aligned, header cells included.
func renderStatsTable(stats []EventStat) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Name", "Count", "Bits"})
	for _, stat := range stats {
		tw.AppendRow(table.Row{
			`"` + stat.Name + `"`,
			strconv.Itoa(stat.Count),
			strconv.FormatInt(stat.Bits/8, 10),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignRight},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignRight},
	})
	return tw.Render()
}
