package output

import (
	"github.com/goccy/go-json"
	"github.com/ukaji3/lateralload-go/pkg/lateralload/models"
)

// ToJSON serializes a result.
func ToJSON(r *models.Result, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(r, "", "  ")
	}
	return json.Marshal(r)
}
