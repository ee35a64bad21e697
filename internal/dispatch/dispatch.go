package dispatch

import (
	"fmt"
	"math"

	"github.com/HadyTinawi/Elevator/internal/car"
	"github.com/HadyTinawi/Elevator/internal/logger"
	"github.com/HadyTinawi/Elevator/internal/occupant"
	"github.com/HadyTinawi/Elevator/internal/simconsts"
)

var Log = logger.GetLogger()

// Unassigned is returned by Assign when every car is full.
const Unassigned = simconsts.UNASSIGNED

// System owns a fixed, ordered list of cars. A car's position in the list is its identity.
type System struct {
	cars []*car.Car
}

// NewSystem creates numCars cars of equal capacity, all on the ground floor heading up.
func NewSystem(numCars int, capacityPerCar int) (*System, error) {
	if numCars <= 0 {
		return nil, fmt.Errorf("dispatch system needs at least one car, got %d", numCars)
	}

	cars := make([]*car.Car, 0, numCars)
	for i := 0; i < numCars; i++ {
		c, err := car.NewCar(i, capacityPerCar)
		if err != nil {
			return nil, fmt.Errorf("creating dispatch system: %w", err)
		}
		cars = append(cars, c)
	}
	return &System{cars: cars}, nil
}

// NewSystemWithCars wraps cars that were already placed, in the given order.
func NewSystemWithCars(cars []*car.Car) *System {
	owned := make([]*car.Car, len(cars))
	copy(owned, cars)
	return &System{cars: owned}
}

// Assign boards o on one car and returns that car's index. When no car has room
// the occupant is left waiting and Unassigned is returned with a nil error.
// An error means the chosen car refused the occupant, which selection should never allow.
func (s *System) Assign(o *occupant.Occupant) (int, error) {
	index := s.selectCar(o.OriginFloor)
	if index == Unassigned {
		Log.Warn().Msgf("No car has room for occupant %s at floor %d", o.ID, o.OriginFloor)
		return Unassigned, nil
	}

	if err := s.cars[index].AddOccupant(o); err != nil {
		return Unassigned, fmt.Errorf("assigning occupant %s to car %d: %w", o.ID, index, err)
	}
	return index, nil
}

// Cars heading toward the origin are preferred; otherwise any car with room.
func (s *System) selectCar(originFloor int) int {
	if index := s.nearestCar(originFloor, true); index != Unassigned {
		return index
	}
	return s.nearestCar(originFloor, false)
}

// nearestCar returns the closest car with spare capacity. Ties go to the lower index.
func (s *System) nearestCar(originFloor int, directionalOnly bool) int {
	best := Unassigned
	bestDistance := math.MaxInt

	for index, c := range s.cars {
		if !c.HasSpareCapacity() {
			continue
		}
		if directionalOnly && !movingToward(c, originFloor) {
			continue
		}
		distance := floorDistance(c.CurrentFloor(), originFloor)
		if distance < bestDistance {
			best = index
			bestDistance = distance
		}
	}
	return best
}

func movingToward(c *car.Car, floor int) bool {
	if c.MovingUp() {
		return floor > c.CurrentFloor()
	}
	return floor < c.CurrentFloor()
}

func floorDistance(a int, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// AdvanceAll moves every car one tick, in list order.
func (s *System) AdvanceAll() {
	for _, c := range s.cars {
		c.Advance()
	}
}

func (s *System) Len() int {
	return len(s.cars)
}

func (s *System) Car(index int) *car.Car {
	return s.cars[index]
}

func (s *System) Cars() []*car.Car {
	cars := make([]*car.Car, len(s.cars))
	copy(cars, s.cars)
	return cars
}

// Snapshot returns detached copies of every car's state, in list order.
func (s *System) Snapshot() ([]car.State, error) {
	states := make([]car.State, 0, len(s.cars))
	for _, c := range s.cars {
		state, err := c.Snapshot()
		if err != nil {
			return nil, err
		}
		states = append(states, state)
	}
	return states, nil
}
