package simmetadata

import (
	"encoding/json"

	"github.com/xyproto/randomstring"

	"github.com/HadyTinawi/Elevator/internal/logger"
)

var Log = logger.GetLogger()

const IDENTIFIER_DEFAULT_LEN = 10

// SimMetaData describes a single run so its output can be traced back to the
// build, the seed and the configuration that produced it.
type SimMetaData struct {
	SoftwareVersion string `json:"software_version"`
	Identifier      string `json:"identifier"`
	Seed            int64  `json:"seed"`
	ConfigPath      string `json:"config_path"`
	Structure       string `json:"structure"`
}

func NewSimMetaData(softwareVersion string, identifier string, seed int64, configPath string, structure string) *SimMetaData {
	if identifier == "" {
		identifier = randomstring.EnglishFrequencyString(IDENTIFIER_DEFAULT_LEN)
		Log.Warn().Msgf("No run identifier provided, generated random identifier \"%v\"", identifier)
	}

	return &SimMetaData{
		SoftwareVersion: softwareVersion,
		Identifier:      identifier,
		Seed:            seed,
		ConfigPath:      configPath,
		Structure:       structure,
	}
}

func (simMetaData *SimMetaData) String() string {
	jsonData, err := json.Marshal(simMetaData)

	if err != nil {
		Log.Error().Msg("Error Serialising SimMetaData Object to JSON")
		return ""
	}
	return string(jsonData)
}
