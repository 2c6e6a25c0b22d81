package render

import (
	"encoding/json"

	"github.com/playbill/playbill/internal/domain"
)

// StatementView is the JSON shape of a statement: cents for machines and the
// formatted amount for people, side by side.
type StatementView struct {
	Customer       string            `json:"customer"`
	Performances   []PerformanceView `json:"performances"`
	TotalPrice     int64             `json:"total_price"`
	TotalFormatted string            `json:"total_formatted"`
	TotalCredits   int64             `json:"total_credits"`
}

type PerformanceView struct {
	Play           string `json:"play"`
	Genre          string `json:"genre"`
	Audience       int    `json:"audience"`
	Price          int64  `json:"price"`
	PriceFormatted string `json:"price_formatted"`
	Credits        int64  `json:"credits"`
}

// View converts data into its JSON view.
func View(data domain.StatementData) StatementView {
	v := StatementView{
		Customer:       data.Customer,
		Performances:   make([]PerformanceView, 0, len(data.Performances)),
		TotalPrice:     data.TotalPrice,
		TotalFormatted: domain.FormatUSD(data.TotalPrice),
		TotalCredits:   data.TotalCredits,
	}
	for _, p := range data.Performances {
		v.Performances = append(v.Performances, PerformanceView{
			Play:           p.Play.Name,
			Genre:          p.Play.Genre,
			Audience:       p.Audience,
			Price:          p.Price,
			PriceFormatted: domain.FormatUSD(p.Price),
			Credits:        p.Credits,
		})
	}
	return v
}

// JSON renders data as indented JSON.
func JSON(data domain.StatementData) (string, error) {
	out, err := json.MarshalIndent(View(data), "", "  ")
	if err != nil {
		return "", err
	}
	return string(out) + "\n", nil
}
