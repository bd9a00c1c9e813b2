package inventory

import (
	"dealership/cmd/internal/domain/entity"
	"fmt"
	"strings"
)

// Card is the summary box the listing shows for one vehicle.
type Card struct {
	Title     string   `json:"title"`
	Lines     []string `json:"lines"`
	Financing []string `json:"financing"`
}

// CardFor renders item. Financing shows "N/A" until an option is saved.
func CardFor(item *entity.InventoryItem) Card {
	financing := item.OptionDescriptions()
	if len(financing) == 0 {
		financing = []string{"N/A"}
	}
	return Card{
		Title: fmt.Sprintf("%s %s (%s)", item.Make, item.Model, item.Year),
		Lines: []string{
			"Type: " + item.Type,
			"VIN: " + item.VIN,
			"Price: " + item.Price,
		},
		Financing: financing,
	}
}

// Text is the card body as a single block.
func (c Card) Text() string {
	return strings.Join(c.Lines, "\n") + "\nFinancing:\n" + strings.Join(c.Financing, "\n")
}
