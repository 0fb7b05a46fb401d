package qrt

import (
	"qrt2csv/ds"
	"qrt2csv/qrt/drecord"
)

// ToLinkedHashMap summarizes a snapshot, keeping the file order of
// instruments when marshalled to JSON.
func ToLinkedHashMap(snapshot Snapshot) *ds.LinkedHashMap[string, any] {
	header := ds.NewLinkedHashMap[string, any]()
	header.Put("record_size", snapshot.Header.RecordSize)
	header.Put("record_table_offset", snapshot.Header.RecordTableOffset)
	header.Put("instrument_count", snapshot.Header.InstrumentCount)

	instruments := ds.NewLinkedHashMap[string, any]()
	for _, instrument := range snapshot.Instruments {
		summary := ds.NewLinkedHashMap[string, any]()
		summary.Put("record_count", instrument.Entry.RecordCount)
		summary.Put("decoded", len(instrument.Records))
		summary.Put("skipped", instrument.Skipped)
		if len(instrument.Records) > 0 {
			first := instrument.Records[0]
			last := instrument.Records[len(instrument.Records)-1]
			summary.Put("first", first.Time().Format(drecord.TimeLayout))
			summary.Put("last", last.Time().Format(drecord.TimeLayout))
		}
		instruments.Put(instrument.Entry.Symbol, summary)
	}

	lhm := ds.NewLinkedHashMap[string, any]()
	lhm.Put("header", header)
	lhm.Put("alignment", snapshot.Mode.String())
	lhm.Put("descriptor_size", snapshot.Mode.DescriptorSize())
	lhm.Put("instruments", instruments)
	return lhm
}
