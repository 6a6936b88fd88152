package tui

import (
	"errors"

	"github.com/charmbracelet/huh"
)

func newDateForm(f *DateFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD, leave empty to clear").
				Value(&f.Date).
				Validate(func(s string) error {
					if err := validateDate(s); err != nil {
						return errors.New("use the YYYY-MM-DD format")
					}
					return nil
				}),
		),
	)
}

func newCountsForm(f *CountsFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Adults").
				Value(&f.Adults),
			huh.NewInput().
				Title("Children").
				Value(&f.Children),
		),
	)
}
