// Package qrt decodes QRT market-data snapshot files.
//
// A QRT file starts with a 32-byte header, followed by a directory of
// fixed-size instrument slots and a table of 36-byte records. The slot size
// depends on how the producing program padded its structs, which the file
// does not record, so Decode tries both layouts.
package qrt

import (
	"qrt2csv/qrt/ddirectory"
	"qrt2csv/qrt/dheader"
	"qrt2csv/qrt/drecord"
)

type (
	AlignmentMode int
	Instrument    struct {
		Entry   ddirectory.Entry `json:"entry"`
		Records []drecord.Record `json:"records"`
		Skipped int              `json:"skipped"`
	}
	Snapshot struct {
		Header      dheader.Header `json:"header"`
		Mode        AlignmentMode  `json:"mode"`
		Instruments []Instrument   `json:"instruments"`
	}
)

const (
	ModeUnaligned = AlignmentMode(iota)
	ModeAligned
)

func (m AlignmentMode) DescriptorSize() int {
	if m == ModeAligned {
		return ddirectory.DescriptorSizeAligned
	}
	return ddirectory.DescriptorSizeUnaligned
}

func (m AlignmentMode) RecordSize() int {
	return drecord.DefaultRecordSize
}

func (m AlignmentMode) Flip() AlignmentMode {
	if m == ModeAligned {
		return ModeUnaligned
	}
	return ModeAligned
}

func (m AlignmentMode) String() string {
	if m == ModeAligned {
		return "aligned"
	}
	return "unaligned"
}

func ParseAlignmentMode(s string) (AlignmentMode, bool) {
	switch s {
	case "", "unaligned":
		return ModeUnaligned, true
	case "aligned":
		return ModeAligned, true
	}
	return ModeUnaligned, false
}

func (m AlignmentMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
