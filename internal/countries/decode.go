package countries

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/persistorai/landroute/internal/models"
)

// rawCountry keeps only the fields the border graph needs. The upstream
// document carries many more, which are ignored.
type rawCountry struct {
	CCA3    string          `json:"cca3"`
	Borders json.RawMessage `json:"borders"`
}

// Decode parses a JSON array of country objects into records. A missing,
// null or non-array "borders" value yields no neighbours; non-string entries
// inside the array are skipped.
func Decode(r io.Reader) ([]models.CountryRecord, error) {
	var raw []rawCountry
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("countries: decode document: %w", err)
	}

	records := make([]models.CountryRecord, 0, len(raw))
	for _, rc := range raw {
		records = append(records, models.CountryRecord{
			Code:       rc.CCA3,
			Neighbours: decodeBorders(rc.Borders),
		})
	}

	return records, nil
}

func decodeBorders(msg json.RawMessage) []string {
	if len(msg) == 0 {
		return nil
	}

	var items []any
	if err := json.Unmarshal(msg, &items); err != nil {
		return nil
	}

	borders := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			borders = append(borders, s)
		}
	}

	return borders
}
