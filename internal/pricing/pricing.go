package pricing

import (
	"github.com/franpass87/bookwidget/internal/config"
	"github.com/franpass87/bookwidget/internal/models"
)

// Total computes the booking total from the current selection, the
// widget's extras and its configuration. It is a pure function: the
// widget never stores the result, it recomputes on every input change.
//
// Voucher-mode bookings are pre-paid, so the total is always zero there
// regardless of counts or extras. Otherwise:
//
//	total = adults*adultPrice + children*childPrice + sum(selected extras)
//
// Negative counts are treated as zero.
func Total(sel models.Selection, extras []models.Extra, cfg config.Widget) models.Cents {
	if cfg.Voucher {
		return 0
	}

	adults := sel.Adults
	if adults < 0 {
		adults = 0
	}
	children := sel.Children
	if children < 0 {
		children = 0
	}

	total := models.Cents(adults)*cfg.AdultPrice + models.Cents(children)*cfg.ChildPrice
	for _, e := range extras {
		if sel.ExtraIDs[e.ID] {
			total += e.Price
		}
	}
	return total
}

// Display formats the computed total for the widget's price area.
func Display(sel models.Selection, extras []models.Extra, cfg config.Widget) string {
	return Total(sel, extras, cfg).Format(cfg.Currency, cfg.DecimalSep)
}
