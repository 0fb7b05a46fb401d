package qrt

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"qrt2csv/ds"
	"qrt2csv/qrt/ddirectory"
	"qrt2csv/qrt/dheader"
	"qrt2csv/qrt/drecord"
	"qrt2csv/qrt/lbytes"
)

type (
	Options struct {
		InitialMode AlignmentMode
		Logger      *zerolog.Logger
	}
	state int
)

const (
	stateAttempt = state(iota)
	stateDone
)

// RecordOffset locates record index of an instrument in the record table.
// The second value is false when the record's page is absent from the file.
func RecordOffset(header dheader.Header, entry ddirectory.Entry, index uint32) (int64, bool, error) {
	if header.RecordSize == 0 {
		return 0, false, errors.New("RecordOffset error: record size is zero")
	}
	page := index / header.RecordSize
	if page >= uint32(len(entry.StockPositions)) {
		return 0, false, errors.Errorf(
			"RecordOffset error: page %d of record %d is outside the position table",
			page, index,
		)
	}
	base := entry.StockPositions[page]
	if base == ddirectory.PagePresentNone {
		return 0, false, nil
	}
	if base < 0 {
		return 0, false, errors.Errorf("RecordOffset error: negative page position %d", base)
	}

	recordSize := int64(drecord.DefaultRecordSize)
	pageLength := int64(header.RecordSize) * recordSize
	offset := int64(base)*pageLength +
		int64(header.RecordTableOffset) +
		int64(index%header.RecordSize)*recordSize
	return offset, true, nil
}

func decodeInstrument(reader *lbytes.Reader, header dheader.Header, entry ddirectory.Entry) (*Instrument, error) {
	instrument := Instrument{Entry: entry}
	capacity := lo.Min([]int64{int64(entry.RecordCount), reader.Size() / drecord.DefaultRecordSize})
	instrument.Records = make([]drecord.Record, 0, capacity)
	for i := uint64(0); i < uint64(entry.RecordCount); i++ {
		offset, present, err := RecordOffset(header, entry, uint32(i))
		if err != nil {
			return nil, drecord.ErrDecodeRecord{Offset: -1, Cause: err}
		}
		if !present {
			// the rest of an absent page is absent too
			pageEnd := (i/uint64(header.RecordSize) + 1) * uint64(header.RecordSize)
			next := lo.Min([]uint64{pageEnd, uint64(entry.RecordCount)})
			instrument.Skipped += int(next - i)
			i = next - 1
			continue
		}
		record, err := drecord.Decode(reader, offset)
		if err != nil {
			return nil, err
		}
		instrument.Records = append(instrument.Records, *record)
	}
	return &instrument, nil
}

// attempt decodes the directory and every record under one alignment mode.
// Any error abandons the whole attempt.
func attempt(reader *lbytes.Reader, header dheader.Header, mode AlignmentMode) ([]Instrument, error) {
	entries, err := ddirectory.DecodeBlock(reader, mode.DescriptorSize(), header.InstrumentCount)
	if err != nil {
		return nil, err
	}

	instruments := make([]Instrument, 0, len(entries))
	for _, entry := range entries {
		if entry.RecordCount == 0 {
			continue
		}
		instrument, err := decodeInstrument(reader, header, entry)
		if err != nil {
			err := errors.Wrapf(err, `attempt error decoding instrument "%s"`, entry.Symbol)
			return nil, err
		}
		instruments = append(instruments, *instrument)
	}
	return instruments, nil
}

// Decode reads the header, then decodes the directory and records under
// options.InitialMode. If that fails the other mode is tried once.
func Decode(reader *lbytes.Reader, options Options) (*Snapshot, error) {
	logger := zerolog.Nop()
	if options.Logger != nil {
		logger = *options.Logger
	}

	header, err := dheader.Decode(reader)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("header", ds.DumpJSON(header)).Msg("decoded header")

	snapshot := Snapshot{Header: *header}
	unresolved := ErrUnresolvedAlignment{}
	current := stateAttempt
	mode := options.InitialMode
	for current == stateAttempt {
		instruments, err := attempt(reader, *header, mode)
		switch {
		case err == nil:
			snapshot.Mode = mode
			snapshot.Instruments = instruments
			current = stateDone
		case len(unresolved.Attempts) == 0:
			unresolved.Attempts = append(unresolved.Attempts, AttemptError{Mode: mode, Cause: err})
			logger.Warn().Err(err).Stringer("mode", mode).Msg("decode attempt failed, flipping alignment")
			mode = mode.Flip()
		default:
			unresolved.Attempts = append(unresolved.Attempts, AttemptError{Mode: mode, Cause: err})
			logger.Error().Err(err).Stringer("mode", mode).Msg("decode attempt failed")
			return nil, unresolved
		}
	}

	logger.Info().
		Stringer("mode", snapshot.Mode).
		Int("instruments", len(snapshot.Instruments)).
		Int("records", CountRecords(snapshot.Instruments)).
		Msg("decoded snapshot")
	return &snapshot, nil
}

func CountRecords(instruments []Instrument) int {
	return lo.Reduce(
		instruments,
		func(count int, instrument Instrument, _ int) int {
			return count + len(instrument.Records)
		},
		0,
	)
}
