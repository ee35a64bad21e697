package car

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tiendc/go-deepcopy"

	"github.com/HadyTinawi/Elevator/internal/logger"
	"github.com/HadyTinawi/Elevator/internal/occupant"
	"github.com/HadyTinawi/Elevator/internal/simconsts"
)

var Log = logger.GetLogger()

var (
	ErrCarFull         = errors.New("car is full")
	ErrInvalidCapacity = errors.New("car capacity must be positive")
	ErrInvalidFloor    = errors.New("car floor must be at least the ground floor")
)

// State holds everything that changes while a car runs.
// Fields are exported so Snapshot can deep copy them.
type State struct {
	CurrentFloor int
	MovingUp     bool
	Capacity     int
	Onboard      []*occupant.Occupant
	PendingStops map[int]struct{}
}

// Car moves one floor per tick in a fixed direction while it has pending stops.
// The direction is chosen at construction and never reversed.
type Car struct {
	index int
	state State
}

// NewCar returns a car on the ground floor heading up.
func NewCar(index int, capacity int) (*Car, error) {
	return NewCarAt(index, capacity, simconsts.GROUND_FLOOR, true)
}

func NewCarAt(index int, capacity int, floor int, movingUp bool) (*Car, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("car %d: %w, got %d", index, ErrInvalidCapacity, capacity)
	}
	if floor < simconsts.GROUND_FLOOR {
		return nil, fmt.Errorf("car %d: %w, got %d", index, ErrInvalidFloor, floor)
	}

	return &Car{
		index: index,
		state: State{
			CurrentFloor: floor,
			MovingUp:     movingUp,
			Capacity:     capacity,
			Onboard:      make([]*occupant.Occupant, 0, capacity),
			PendingStops: make(map[int]struct{}),
		},
	}, nil
}

// AddOccupant boards o and queues its destination. Several occupants heading to
// the same floor share a single pending stop.
func (c *Car) AddOccupant(o *occupant.Occupant) error {
	if !c.HasSpareCapacity() {
		return fmt.Errorf("car %d holding %d/%d: %w", c.index, len(c.state.Onboard), c.state.Capacity, ErrCarFull)
	}

	c.state.Onboard = append(c.state.Onboard, o)
	o.Board()
	c.state.PendingStops[o.DestinationFloor] = struct{}{}

	Log.Debug().Msgf("Car %d boarded occupant %s (%d -> %d), %d/%d onboard",
		c.index, o.ID, o.OriginFloor, o.DestinationFloor, len(c.state.Onboard), c.state.Capacity)
	return nil
}

// Advance runs one tick: move a floor if anything is queued, then unload at the
// new floor if it is a pending stop.
func (c *Car) Advance() {
	if len(c.state.PendingStops) == 0 {
		return
	}

	if c.state.MovingUp {
		c.state.CurrentFloor++
	} else {
		if c.state.CurrentFloor == simconsts.GROUND_FLOOR {
			Log.Debug().Msgf("Car %d is at the ground floor heading down, holding position", c.index)
			return
		}
		c.state.CurrentFloor--
	}

	Log.Debug().Msgf("Car %d moved %s to floor %d", c.index, c.Direction().String(), c.state.CurrentFloor)
	c.serviceCurrentFloor()
}

func (c *Car) serviceCurrentFloor() {
	floor := c.state.CurrentFloor
	if _, pending := c.state.PendingStops[floor]; !pending {
		return
	}

	remaining := make([]*occupant.Occupant, 0, c.state.Capacity)
	alighted := 0
	for _, o := range c.state.Onboard {
		if o.DestinationFloor == floor {
			alighted++
			continue
		}
		remaining = append(remaining, o)
	}
	c.state.Onboard = remaining
	delete(c.state.PendingStops, floor)

	Log.Debug().Msgf("Car %d stopped at floor %d, %d occupant(s) alighted", c.index, floor, alighted)
}

func (c *Car) Index() int {
	return c.index
}

func (c *Car) CurrentFloor() int {
	return c.state.CurrentFloor
}

func (c *Car) MovingUp() bool {
	return c.state.MovingUp
}

func (c *Car) Direction() simconsts.Direction {
	return simconsts.DirectionOf(c.state.MovingUp)
}

func (c *Car) Capacity() int {
	return c.state.Capacity
}

func (c *Car) HasSpareCapacity() bool {
	return len(c.state.Onboard) < c.state.Capacity
}

// Occupants returns the onboard occupants. The slice is a copy; the occupants are shared.
func (c *Car) Occupants() []*occupant.Occupant {
	onboard := make([]*occupant.Occupant, len(c.state.Onboard))
	copy(onboard, c.state.Onboard)
	return onboard
}

func (c *Car) HasPendingStop(floor int) bool {
	_, pending := c.state.PendingStops[floor]
	return pending
}

// PendingStops returns the queued floors in ascending order.
func (c *Car) PendingStops() []int {
	stops := make([]int, 0, len(c.state.PendingStops))
	for floor := range c.state.PendingStops {
		stops = append(stops, floor)
	}
	sort.Ints(stops)
	return stops
}

// Snapshot returns a detached copy of the car state, occupants included.
func (c *Car) Snapshot() (State, error) {
	var snapshot State
	if err := deepcopy.Copy(&snapshot, &c.state); err != nil {
		return State{}, fmt.Errorf("car %d: copying state: %w", c.index, err)
	}
	return snapshot, nil
}
