package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/veldt/tracklens/pkg/descriptor"
	"github.com/veldt/tracklens/pkg/listing"
)

// printResult renders one extraction result to stdout, honoring the
// global --json flag.
func printResult(result listing.GroupedResult) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	for _, entry := range result.Entries {
		if entry.Node != nil {
			fmt.Printf("%s: %s\n", entry.Node.Kind, entry.Node.Title)
		}
		if len(entry.Records) == 0 {
			continue
		}
		rows := make([][]string, len(entry.Records))
		for i, rec := range entry.Records {
			rows[i] = recordRow(rec)
		}
		fmt.Println(renderTable(
			[]string{"ID", "Group", "Details", "Size", "Snatched", "Seeders", "Leechers", "Status"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignLeft},
		))
	}
	return nil
}

func recordRow(rec *descriptor.Record) []string {
	return []string{
		rec.ID,
		rec.Group,
		detailSummary(rec),
		rec.Size,
		rec.Snatches,
		rec.Seeders,
		rec.Leechers,
		statusSummary(rec),
	}
}

// detailSummary compacts the category-specific fields into one cell,
// skipping empties.
func detailSummary(rec *descriptor.Record) string {
	var parts []string
	add := func(vals ...string) {
		for _, v := range vals {
			if v != "" {
				parts = append(parts, v)
			}
		}
	}

	switch {
	case rec.Video != nil:
		v := rec.Video
		add(v.Format, v.Container, v.Codec, v.Resolution, v.AspectRatio, v.Audio, v.AudioChannels, v.Region, v.Subtitles)
		if v.DualAudio {
			add("Dual Audio")
		}
	case rec.Printed != nil:
		p := rec.Printed
		add(p.Type, p.Format)
		if p.Translator != "" {
			add("(" + p.Translator + ")")
		}
		if p.Digital {
			add("Digital")
		}
		if p.Ongoing {
			add("Ongoing")
		}
	case rec.Game != nil:
		g := rec.Game
		add(g.Type, g.Platform, g.Region)
		if g.Archived {
			add("Archived")
		}
	case rec.Music != nil:
		m := rec.Music
		add(m.Codec, m.Bitrate, m.Media)
		if m.Log {
			add("Log")
		}
		if m.Cue {
			add("Cue")
		}
	}
	return strings.Join(parts, " / ")
}

func statusSummary(rec *descriptor.Record) string {
	var parts []string
	if rec.Rec != descriptor.RecNone {
		parts = append(parts, rec.Rec.String())
	}
	if rec.Freeleech {
		parts = append(parts, "FL")
	}
	return strings.Join(parts, " ")
}

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
