package occupant

import (
	"errors"
	"testing"
)

func TestNewOccupant(t *testing.T) {
	occ, err := NewOccupant(3, 5)
	if err != nil {
		t.Fatalf("NewOccupant(3, 5) returned error %v, expected nil", err)
	}
	if occ.OriginFloor != 3 || occ.DestinationFloor != 5 {
		t.Errorf("NewOccupant(3, 5) = %d->%d, expected 3->5", occ.OriginFloor, occ.DestinationFloor)
	}
	if occ.Boarded {
		t.Errorf("Boarded = true, expected a new occupant to be waiting")
	}
	if occ.WaitTicks != 0 {
		t.Errorf("WaitTicks = %d, expected 0", occ.WaitTicks)
	}
	if occ.ID == "" {
		t.Errorf("ID is empty, expected a generated identifier")
	}

	other, _ := NewOccupant(3, 5)
	if other.ID == occ.ID {
		t.Errorf("Two occupants share the ID %s", occ.ID)
	}
}

func TestNewOccupantInvalid(t *testing.T) {
	cases := []struct {
		origin      int
		destination int
	}{
		{4, 4},
		{0, 3},
		{3, 0},
		{-1, 2},
		{1, 1},
	}

	for _, c := range cases {
		occ, err := NewOccupant(c.origin, c.destination)
		if !errors.Is(err, ErrInvalidOccupant) {
			t.Errorf("NewOccupant(%d, %d) error = %v, expected ErrInvalidOccupant", c.origin, c.destination, err)
		}
		if occ != nil {
			t.Errorf("NewOccupant(%d, %d) = %v, expected nil", c.origin, c.destination, occ)
		}
	}
}

func TestWaitTicksFreezeAfterBoarding(t *testing.T) {
	occ, _ := NewOccupant(1, 2)

	for tick := 1; tick <= 3; tick++ {
		occ.IncrementWait()
		if occ.WaitTicks != tick {
			t.Errorf("WaitTicks = %d after %d ticks, expected %d", occ.WaitTicks, tick, tick)
		}
	}

	occ.Board()
	occ.IncrementWait()
	occ.IncrementWait()
	if occ.WaitTicks != 3 {
		t.Errorf("WaitTicks = %d after boarding, expected it to stay at 3", occ.WaitTicks)
	}
}

func TestString(t *testing.T) {
	occ := Occupant{
		ID:               "uwvvblrtct",
		OriginFloor:      2,
		DestinationFloor: 7,
		Boarded:          true,
		WaitTicks:        4,
	}

	jsonString := "{\"id\":\"uwvvblrtct\",\"origin_floor\":2,\"destination_floor\":7,\"boarded\":true,\"wait_ticks\":4}"

	if occ.String() != jsonString {
		t.Errorf("String() = %s, expected %s", occ.String(), jsonString)
	}
}
