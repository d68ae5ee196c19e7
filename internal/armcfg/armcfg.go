// Package armcfg loads arm parameter overrides from a JSON file.
package armcfg

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-viper/mapstructure/v2"

	"github.com/QuentinBlan/CREATE-throwing-arm-controller/kinematics"
)

// Load reads a JSON parameter file and decodes it over the default arm
// parameters, so a file may override any subset of fields. The result is
// validated before use.
func Load(path string) (*kinematics.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading parameter file: %w", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing parameter file: %w", err)
	}

	params := kinematics.DefaultParams()
	if err := mapstructure.Decode(raw, &params); err != nil {
		return nil, fmt.Errorf("decoding parameters: %w", err)
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("parameter file %s: %w", path, err)
	}
	return &params, nil
}
