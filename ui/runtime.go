package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"qrt2csv/qrt"
)

func Start(snapshot qrt.Snapshot) error {
	browser := CreateInstrumentBrowser(snapshot)
	if err := tea.NewProgram(browser).Start(); err != nil {
		return errors.Wrap(err, "ui.Start error")
	}
	return nil
}
