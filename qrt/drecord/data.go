package drecord

type (
	// Record is one tick of an instrument. The layout is packed, so the struct
	// maps onto the 36 bytes on disk through encoding/binary as is.
	Record struct {
		EpochSeconds         uint32
		LastPrice            float32
		TotalVolumeToday     float32
		TotalTradeMoneyToday float32
		BuyVolumes           [3]uint16
		SellVolumes          [3]uint16
		BuyPrices            [3]uint8
		SellPrices           [3]uint8
		Reserved             uint16
	}
)

const (
	DefaultRecordSize = 36
	TimeLayout        = "2006-01-02-15-04-05"
)

// HeaderRow names the columns produced by Record.Row.
var HeaderRow = []string{
	"time",
	"new_price",
	"vol_today",
	"ammount",
	"buy_vol",
	"sell_vol",
	"buy_price(relative)",
	"sell_price(relative)",
}
