package car

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/HadyTinawi/Elevator/internal/logger"
	"github.com/HadyTinawi/Elevator/internal/occupant"
	"github.com/HadyTinawi/Elevator/internal/simconsts"
)

func newOccupant(t *testing.T, origin int, destination int) *occupant.Occupant {
	t.Helper()
	occ, err := occupant.NewOccupant(origin, destination)
	if err != nil {
		t.Fatalf("NewOccupant(%d, %d) returned error %v", origin, destination, err)
	}
	return occ
}

func newCar(t *testing.T, capacity int) *Car {
	t.Helper()
	c, err := NewCar(0, capacity)
	if err != nil {
		t.Fatalf("NewCar(0, %d) returned error %v", capacity, err)
	}
	return c
}

func TestNewCar(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)
	c := newCar(t, 10)

	if c.CurrentFloor() != simconsts.GROUND_FLOOR {
		t.Errorf("CurrentFloor() = %d, expected %d", c.CurrentFloor(), simconsts.GROUND_FLOOR)
	}
	if !c.MovingUp() || c.Direction() != simconsts.Up {
		t.Errorf("Direction() = %v, expected Up", c.Direction())
	}
	if c.Capacity() != 10 {
		t.Errorf("Capacity() = %d, expected 10", c.Capacity())
	}
	if len(c.Occupants()) != 0 || len(c.PendingStops()) != 0 {
		t.Errorf("New car has occupants %v and stops %v, expected none", c.Occupants(), c.PendingStops())
	}
}

func TestNewCarInvalid(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)

	if _, err := NewCar(0, 0); !errors.Is(err, ErrInvalidCapacity) {
		t.Errorf("NewCar(0, 0) error = %v, expected ErrInvalidCapacity", err)
	}
	if _, err := NewCarAt(0, 5, 0, true); !errors.Is(err, ErrInvalidFloor) {
		t.Errorf("NewCarAt(floor 0) error = %v, expected ErrInvalidFloor", err)
	}
}

func TestAddOccupant(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)
	c := newCar(t, 3)

	first := newOccupant(t, 2, 6)
	second := newOccupant(t, 4, 6)
	third := newOccupant(t, 1, 9)

	for _, occ := range []*occupant.Occupant{first, second, third} {
		if err := c.AddOccupant(occ); err != nil {
			t.Fatalf("AddOccupant() returned error %v", err)
		}
		if !occ.Boarded {
			t.Errorf("Occupant %s not marked boarded after AddOccupant()", occ.ID)
		}
	}

	stops := c.PendingStops()
	if len(stops) != 2 || stops[0] != 6 || stops[1] != 9 {
		t.Errorf("PendingStops() = %v, expected [6 9]", stops)
	}
	if len(c.Occupants()) != 3 {
		t.Errorf("len(Occupants()) = %d, expected 3", len(c.Occupants()))
	}

	extra := newOccupant(t, 5, 2)
	err := c.AddOccupant(extra)
	if !errors.Is(err, ErrCarFull) {
		t.Errorf("AddOccupant() on a full car error = %v, expected ErrCarFull", err)
	}
	if extra.Boarded {
		t.Errorf("Rejected occupant marked boarded")
	}
	if len(c.Occupants()) != c.Capacity() {
		t.Errorf("len(Occupants()) = %d, expected capacity %d", len(c.Occupants()), c.Capacity())
	}
	if c.HasPendingStop(2) {
		t.Errorf("Rejected occupant's destination was queued")
	}
}

func TestAdvanceIdle(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)
	c := newCar(t, 2)

	for i := 0; i < 5; i++ {
		c.Advance()
	}
	if c.CurrentFloor() != simconsts.GROUND_FLOOR {
		t.Errorf("Idle car moved to floor %d, expected it to stay at %d", c.CurrentFloor(), simconsts.GROUND_FLOOR)
	}
}

func TestAdvanceUnloadsAtPendingStop(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)
	c := newCar(t, 4)

	toThree := newOccupant(t, 1, 3)
	alsoToThree := newOccupant(t, 2, 3)
	toFive := newOccupant(t, 1, 5)
	for _, occ := range []*occupant.Occupant{toThree, alsoToThree, toFive} {
		if err := c.AddOccupant(occ); err != nil {
			t.Fatalf("AddOccupant() returned error %v", err)
		}
	}

	expectedFloors := []int{2, 3, 4, 5, 5, 5}
	expectedOnboard := []int{3, 1, 1, 0, 0, 0}
	for tick, floor := range expectedFloors {
		c.Advance()
		if c.CurrentFloor() != floor {
			t.Errorf("Tick %d: CurrentFloor() = %d, expected %d", tick+1, c.CurrentFloor(), floor)
		}
		if len(c.Occupants()) != expectedOnboard[tick] {
			t.Errorf("Tick %d: len(Occupants()) = %d, expected %d", tick+1, len(c.Occupants()), expectedOnboard[tick])
		}
		if c.HasPendingStop(c.CurrentFloor()) {
			t.Errorf("Tick %d: floor %d still pending after the car reached it", tick+1, c.CurrentFloor())
		}
	}

	if !toThree.Boarded || !toFive.Boarded {
		t.Errorf("Alighting reset the boarded flag")
	}
}

func TestAdvanceNeverReverses(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)
	c, err := NewCarAt(0, 2, 5, true)
	if err != nil {
		t.Fatalf("NewCarAt() returned error %v", err)
	}

	if err := c.AddOccupant(newOccupant(t, 5, 2)); err != nil {
		t.Fatalf("AddOccupant() returned error %v", err)
	}

	for i := 0; i < 4; i++ {
		c.Advance()
	}
	if c.CurrentFloor() != 9 {
		t.Errorf("CurrentFloor() = %d, expected the car to keep climbing to 9", c.CurrentFloor())
	}
	if c.Direction() != simconsts.Up {
		t.Errorf("Direction() = %v, expected Up", c.Direction())
	}
	if !c.HasPendingStop(2) {
		t.Errorf("Stop below an up-bound car was dropped")
	}
}

func TestAdvanceDownHoldsAtGroundFloor(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)
	c, err := NewCarAt(0, 2, 2, false)
	if err != nil {
		t.Fatalf("NewCarAt() returned error %v", err)
	}
	if err := c.AddOccupant(newOccupant(t, 2, 4)); err != nil {
		t.Fatalf("AddOccupant() returned error %v", err)
	}

	for i := 0; i < 3; i++ {
		c.Advance()
	}
	if c.CurrentFloor() != simconsts.GROUND_FLOOR {
		t.Errorf("CurrentFloor() = %d, expected %d", c.CurrentFloor(), simconsts.GROUND_FLOOR)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)
	c := newCar(t, 2)
	if err := c.AddOccupant(newOccupant(t, 1, 2)); err != nil {
		t.Fatalf("AddOccupant() returned error %v", err)
	}

	snapshot, err := c.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() returned error %v", err)
	}

	c.Advance()

	if snapshot.CurrentFloor != 1 {
		t.Errorf("Snapshot CurrentFloor = %d, expected 1", snapshot.CurrentFloor)
	}
	if len(snapshot.Onboard) != 1 {
		t.Errorf("Snapshot has %d occupants, expected 1", len(snapshot.Onboard))
	}
	if _, pending := snapshot.PendingStops[2]; !pending {
		t.Errorf("Snapshot lost pending stop 2 after the car advanced")
	}
	if c.CurrentFloor() != 2 || len(c.Occupants()) != 0 {
		t.Errorf("Car at floor %d with %d occupants, expected floor 2 and empty", c.CurrentFloor(), len(c.Occupants()))
	}
}
