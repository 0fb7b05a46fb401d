// Package csvout appends decoded instruments to per-symbol CSV files.
package csvout

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"qrt2csv/qrt"
	"qrt2csv/qrt/drecord"
)

type Writer struct {
	dir       string
	headerRow bool
}

// NewWriter creates dir and its parents when missing.
func NewWriter(dir string, headerRow bool) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, `NewWriter error creating directory "%s"`, dir)
	}
	return &Writer{
		dir:       dir,
		headerRow: headerRow,
	}, nil
}

// FileName maps a symbol to a file name inside the output directory.
func FileName(symbol string) string {
	name := strings.Map(
		func(r rune) rune {
			if r == '/' || r == '\\' || r == 0 {
				return '_'
			}
			return r
		},
		symbol,
	)
	if name == "" {
		name = "_"
	}
	return name + ".csv"
}

func (w *Writer) Path(symbol string) string {
	return filepath.Join(w.dir, FileName(symbol))
}

// WriteInstrument appends the instrument's rows to its file. The header row
// goes first only when the file is new or empty.
func (w *Writer) WriteInstrument(instrument qrt.Instrument) (path string, err error) {
	path = w.Path(instrument.Entry.Symbol)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return "", errors.Wrapf(err, `WriteInstrument error opening "%s"`, path)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = errors.Wrapf(closeErr, `WriteInstrument error closing "%s"`, path)
		}
	}()

	info, err := file.Stat()
	if err != nil {
		return "", errors.Wrapf(err, `WriteInstrument error reading size of "%s"`, path)
	}

	buf := bufio.NewWriter(file)
	if w.headerRow && info.Size() == 0 {
		buf.WriteString(drecord.Header())
		buf.WriteByte('\n')
	}
	for _, record := range instrument.Records {
		buf.WriteString(record.Row())
		buf.WriteByte('\n')
	}
	if err := buf.Flush(); err != nil {
		return "", errors.Wrapf(err, `WriteInstrument error writing "%s"`, path)
	}
	return path, nil
}

// WriteSnapshot writes every instrument that declares records and reports
// each written path to progress, if given.
func (w *Writer) WriteSnapshot(snapshot qrt.Snapshot, progress func(path string)) ([]string, error) {
	paths := make([]string, 0, len(snapshot.Instruments))
	for _, instrument := range snapshot.Instruments {
		if instrument.Entry.RecordCount == 0 {
			continue
		}
		path, err := w.WriteInstrument(instrument)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
		if progress != nil {
			progress(path)
		}
	}
	return paths, nil
}
