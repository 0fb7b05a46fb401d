package drecord

import (
	"fmt"
	"strings"
	"time"
)

func (r Record) Time() time.Time {
	return time.Unix(int64(r.EpochSeconds), 0).UTC()
}

// Row renders the record as one CSV line without the line break. Only the top
// level of the book is written; levels two and three are not part of the
// output format.
func (r Record) Row() string {
	return fmt.Sprintf(
		"%s,%8.1f,%4.0f,%8.0f,%d,%d,%d,%d",
		r.Time().Format(TimeLayout),
		float64(r.LastPrice),
		float64(r.TotalVolumeToday),
		float64(r.TotalTradeMoneyToday),
		r.BuyVolumes[0],
		r.SellVolumes[0],
		r.BuyPrices[0],
		r.SellPrices[0],
	)
}

func Header() string {
	return strings.Join(HeaderRow, ",")
}
