package dheader

type (
	// Header is the 32-byte preamble of a QRT file. Only three fields carry
	// meaning; the rest is kept so the preamble can be encoded back.
	Header struct {
		Unknown1          []byte `json:"unknown_1"`
		RecordSize        uint32 `json:"record_size"`
		Unknown2          []byte `json:"unknown_2"`
		RecordTableOffset uint32 `json:"record_table_offset"`
		Unknown3          []byte `json:"unknown_3"`
		InstrumentCount   uint32 `json:"instrument_count"`
	}
)

const (
	DefaultHeaderSize = 0x20
)
