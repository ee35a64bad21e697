package stats

import (
	"encoding/json"
	"fmt"

	"github.com/HadyTinawi/Elevator/internal/logger"
	"github.com/HadyTinawi/Elevator/internal/occupant"
)

var Log = logger.GetLogger()

// Summary aggregates wait times, in ticks, over every occupant of a run.
// All values are zero when there were no occupants.
type Summary struct {
	Occupants    int     `json:"occupants"`
	Unassigned   int     `json:"unassigned"`
	AverageWait  float64 `json:"average_wait_ticks"`
	LongestWait  int     `json:"longest_wait_ticks"`
	ShortestWait int     `json:"shortest_wait_ticks"`
}

func Summarize(occupants []*occupant.Occupant) Summary {
	summary := Summary{Occupants: len(occupants)}
	if len(occupants) == 0 {
		return summary
	}

	total := 0
	summary.ShortestWait = occupants[0].WaitTicks
	for _, o := range occupants {
		total += o.WaitTicks
		if o.WaitTicks > summary.LongestWait {
			summary.LongestWait = o.WaitTicks
		}
		if o.WaitTicks < summary.ShortestWait {
			summary.ShortestWait = o.WaitTicks
		}
		if !o.Boarded {
			summary.Unassigned++
		}
	}
	summary.AverageWait = float64(total) / float64(len(occupants))
	return summary
}

// Lines renders the summary as the plain text report.
func (s Summary) Lines() []string {
	return []string{
		fmt.Sprintf("Average Wait Time: %.2f", s.AverageWait),
		fmt.Sprintf("Longest Wait Time: %d", s.LongestWait),
		fmt.Sprintf("Shortest Wait Time: %d", s.ShortestWait),
	}
}

func (s Summary) String() string {
	jsonData, err := json.Marshal(s)

	if err != nil {
		Log.Error().Msg("Error Serialising Summary Object to JSON")
		return ""
	}
	return string(jsonData)
}
