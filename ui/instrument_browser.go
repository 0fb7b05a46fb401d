package ui

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"qrt2csv/ds"
	"qrt2csv/qrt"
	"qrt2csv/qrt/drecord"
)

const (
	BrowserStateList = "list"
	BrowserStateRows = "rows"
	PreviewRows      = 10
)

// InstrumentBrowser lists the instruments of a decoded snapshot and previews
// the CSV rows each of them would produce.
type InstrumentBrowser struct {
	snapshot qrt.Snapshot
	state    string
	cursor   int
	offset   int
}

func CreateInstrumentBrowser(snapshot qrt.Snapshot) InstrumentBrowser {
	return InstrumentBrowser{
		snapshot: snapshot,
		state:    BrowserStateList,
	}
}

func clamp(n int, low int, high int) int {
	if n > high {
		n = high
	}
	if n < low {
		n = low
	}
	return n
}

func (s InstrumentBrowser) selected() qrt.Instrument {
	return s.snapshot.Instruments[s.cursor]
}

func (s InstrumentBrowser) viewList() string {
	if len(s.snapshot.Instruments) == 0 {
		return "No instrument has records.\n"
	}
	lines := lo.Map(
		s.snapshot.Instruments,
		func(instrument qrt.Instrument, i int) string {
			pointer := " "
			if i == s.cursor {
				pointer = ">"
			}
			return fmt.Sprintf(
				"%s %-8s %8d records %6d skipped",
				pointer, instrument.Entry.Symbol, len(instrument.Records), instrument.Skipped,
			)
		},
	)
	return strings.Join(lines, "\n") + "\n\nup/down: move  enter: preview  q: quit\n"
}

func (s InstrumentBrowser) viewRows() string {
	instrument := s.selected()
	end := clamp(s.offset+PreviewRows, 0, len(instrument.Records))
	rows := lo.Map(
		instrument.Records[s.offset:end],
		func(record drecord.Record, _ int) string {
			return record.Row()
		},
	)
	output := fmt.Sprintf("%s (%d-%d of %d)\n\n", instrument.Entry.Symbol, s.offset+1, end, len(instrument.Records))
	output += drecord.Header() + "\n"
	output += strings.Join(rows, "\n")
	output += "\n\nup/down: scroll  esc: back  q: quit\n"
	return output
}

func (s InstrumentBrowser) View() string {
	output := "QRT SNAPSHOT\n\n"
	output += fmt.Sprintf(
		"Alignment: %s (%d-byte slots), %d instruments\n\n",
		s.snapshot.Mode, s.snapshot.Mode.DescriptorSize(), len(s.snapshot.Instruments),
	)

	switch s.state {
	case BrowserStateList:
		output += s.viewList()
	case BrowserStateRows:
		output += s.viewRows()
	default:
		log.Panic(ds.ErrUnreachableCode{Caller: "InstrumentBrowser.View", Value: s.state})
	}

	return output
}

func (s InstrumentBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	key := keyMsg.String()
	if key == "ctrl+c" || key == "q" {
		return s, tea.Quit
	}

	switch s.state {
	case BrowserStateList:
		last := len(s.snapshot.Instruments) - 1
		switch key {
		case "up", "k":
			s.cursor = clamp(s.cursor-1, 0, last)
		case "down", "j":
			s.cursor = clamp(s.cursor+1, 0, last)
		case "enter":
			if last >= 0 {
				s.state = BrowserStateRows
				s.offset = 0
			}
		}
	case BrowserStateRows:
		last := lo.Max([]int{0, len(s.selected().Records) - 1})
		switch key {
		case "up", "k":
			s.offset = clamp(s.offset-1, 0, last)
		case "down", "j":
			s.offset = clamp(s.offset+1, 0, last)
		case "esc", "backspace":
			s.state = BrowserStateList
		}
	}

	return s, nil
}

func (s InstrumentBrowser) Init() tea.Cmd {
	return nil
}
