package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/HadyTinawi/Elevator/internal/logger"
	"github.com/HadyTinawi/Elevator/internal/simconsts"
)

var Log = logger.GetLogger()

type Config struct {
	Structure            string  `json:"structure" yaml:"structure"`
	TotalFloors          int     `json:"total_floors" yaml:"total_floors"`
	PassengerProbability float64 `json:"passenger_probability" yaml:"passenger_probability"`
	NumElevators         int     `json:"num_elevators" yaml:"num_elevators"`
	ElevatorCapacity     int     `json:"elevator_capacity" yaml:"elevator_capacity"`
	SimulationDuration   int     `json:"simulation_duration" yaml:"simulation_duration"`
}

func Default() Config {
	return Config{
		Structure:            simconsts.DEFAULT_STRUCTURE,
		TotalFloors:          simconsts.DEFAULT_TOTAL_FLOORS,
		PassengerProbability: simconsts.DEFAULT_PASSENGER_PROBABILITY,
		NumElevators:         simconsts.DEFAULT_NUM_ELEVATORS,
		ElevatorCapacity:     simconsts.DEFAULT_ELEVATOR_CAPACITY,
		SimulationDuration:   simconsts.DEFAULT_SIMULATION_DURATION,
	}
}

// Load reads path and never fails. Files ending in .yaml or .yml are decoded as
// yaml, anything else as key=value properties. An unreadable file gives the
// defaults; a missing or bad key gives that key's default. The returned
// warnings describe every fallback taken.
func Load(path string) (Config, []string) {
	raw, err := readRaw(path)
	if err != nil {
		return Default(), []string{fmt.Sprintf("Could not load config %q, using defaults: %v", path, err)}
	}
	return FromValues(raw)
}

func readRaw(path string) (map[string]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return readYAML(path)
	default:
		return godotenv.Read(path)
	}
}

func readYAML(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoded := make(map[string]interface{})
	if err := yaml.NewDecoder(file).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}

	raw := make(map[string]string, len(decoded))
	for key, value := range decoded {
		// A null value counts as a missing key.
		if value == nil {
			continue
		}
		raw[key] = fmt.Sprint(value)
	}
	return raw, nil
}

// FromValues builds a Config from already parsed key/value pairs.
func FromValues(raw map[string]string) (Config, []string) {
	c := Default()
	var warnings []string

	lookup := func(key string) (string, bool) {
		value, ok := raw[key]
		if !ok {
			return "", false
		}
		value = strings.TrimSpace(value)
		return value, value != ""
	}

	if value, ok := lookup(simconsts.KEY_STRUCTURE); ok {
		c.Structure = value
	}

	intKeys := []struct {
		key     string
		minimum int
		target  *int
	}{
		{simconsts.KEY_TOTAL_FLOORS, 0, &c.TotalFloors},
		{simconsts.KEY_NUM_ELEVATORS, 1, &c.NumElevators},
		{simconsts.KEY_ELEVATOR_CAPACITY, 1, &c.ElevatorCapacity},
		{simconsts.KEY_SIMULATION_DURATION, 0, &c.SimulationDuration},
	}
	for _, k := range intKeys {
		value, ok := lookup(k.key)
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < k.minimum {
			warnings = append(warnings, fmt.Sprintf("Invalid %s %q, using default %d", k.key, value, *k.target))
			continue
		}
		*k.target = parsed
	}

	if value, ok := lookup(simconsts.KEY_PASSENGER_PROBABILITY); ok {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil || !(parsed >= 0 && parsed <= 1) {
			warnings = append(warnings, fmt.Sprintf("Invalid %s %q, using default %v",
				simconsts.KEY_PASSENGER_PROBABILITY, value, c.PassengerProbability))
		} else {
			c.PassengerProbability = parsed
		}
	}

	return c, warnings
}

func (c *Config) String() string {
	jsonData, err := json.Marshal(c)

	if err != nil {
		Log.Error().Msg("Error Serialising Config Object to JSON")
		return ""
	}
	return string(jsonData)
}
