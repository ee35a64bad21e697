package simconsts

const (
	GROUND_FLOOR = 1
	UNASSIGNED   = -1
)

// Configuration keys, as they appear in the properties and yaml files
const (
	KEY_STRUCTURE             = "structure"
	KEY_TOTAL_FLOORS          = "total_floors"
	KEY_PASSENGER_PROBABILITY = "passenger_probability"
	KEY_NUM_ELEVATORS         = "num_elevators"
	KEY_ELEVATOR_CAPACITY     = "elevator_capacity"
	KEY_SIMULATION_DURATION   = "simulation_duration"
)

const (
	DEFAULT_CONFIG_PATH           = "prop.properties"
	DEFAULT_STRUCTURE             = "linked"
	DEFAULT_TOTAL_FLOORS          = 32
	DEFAULT_PASSENGER_PROBABILITY = 0.03
	DEFAULT_NUM_ELEVATORS         = 1
	DEFAULT_ELEVATOR_CAPACITY     = 10
	DEFAULT_SIMULATION_DURATION   = 500
)

type Direction int

const (
	Down Direction = -1
	Up   Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return "Undefined"
	}
}

func DirectionOf(movingUp bool) Direction {
	if movingUp {
		return Up
	}
	return Down
}
