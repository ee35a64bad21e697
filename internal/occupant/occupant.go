package occupant

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/HadyTinawi/Elevator/internal/logger"
	"github.com/HadyTinawi/Elevator/internal/simconsts"
)

var Log = logger.GetLogger()

var ErrInvalidOccupant = errors.New("invalid occupant")

// Occupant is a passenger travelling from OriginFloor to DestinationFloor.
// Boarded never goes back to false; an occupant that has alighted still counts
// as boarded for the wait time statistics.
type Occupant struct {
	ID               string `json:"id"`
	OriginFloor      int    `json:"origin_floor"`
	DestinationFloor int    `json:"destination_floor"`
	Boarded          bool   `json:"boarded"`
	WaitTicks        int    `json:"wait_ticks"`
}

func NewOccupant(originFloor int, destinationFloor int) (*Occupant, error) {
	if originFloor < simconsts.GROUND_FLOOR || destinationFloor < simconsts.GROUND_FLOOR {
		return nil, fmt.Errorf("%w: floors must be at least %d, got origin %d and destination %d",
			ErrInvalidOccupant, simconsts.GROUND_FLOOR, originFloor, destinationFloor)
	}
	if originFloor == destinationFloor {
		return nil, fmt.Errorf("%w: origin and destination are both floor %d", ErrInvalidOccupant, originFloor)
	}

	return &Occupant{
		ID:               uuid.NewString(),
		OriginFloor:      originFloor,
		DestinationFloor: destinationFloor,
	}, nil
}

func (o *Occupant) Board() {
	o.Boarded = true
}

// IncrementWait adds one tick of waiting. Boarded occupants keep their wait time.
func (o *Occupant) IncrementWait() {
	if o.Boarded {
		return
	}
	o.WaitTicks++
}

func (o *Occupant) String() string {
	jsonData, err := json.Marshal(o)

	if err != nil {
		Log.Error().Msg("Error Serialising Occupant Object to JSON")
		return ""
	}
	return string(jsonData)
}
