package simulation

import (
	"fmt"

	"github.com/HadyTinawi/Elevator/internal/car"
	"github.com/HadyTinawi/Elevator/internal/config"
	"github.com/HadyTinawi/Elevator/internal/dispatch"
	"github.com/HadyTinawi/Elevator/internal/logger"
	"github.com/HadyTinawi/Elevator/internal/occupant"
	"github.com/HadyTinawi/Elevator/internal/simconsts"
	"github.com/HadyTinawi/Elevator/internal/stats"
)

var Log = logger.GetLogger()

// RandomSource is the part of *rand.Rand the simulation draws from.
type RandomSource interface {
	Float64() float64
	Intn(n int) int
}

// Simulation drives the dispatch system tick by tick and keeps every occupant it
// ever created, boarded or not, for the final statistics.
type Simulation struct {
	config    config.Config
	dispatch  *dispatch.System
	rng       RandomSource
	occupants []*occupant.Occupant
	tick      int
}

func New(cfg config.Config, rng RandomSource) (*Simulation, error) {
	if rng == nil {
		return nil, fmt.Errorf("simulation needs a random source")
	}

	system, err := dispatch.NewSystem(cfg.NumElevators, cfg.ElevatorCapacity)
	if err != nil {
		return nil, fmt.Errorf("creating simulation: %w", err)
	}

	return &Simulation{
		config:   cfg,
		dispatch: system,
		rng:      rng,
	}, nil
}

// Step runs one tick: spawn and assign occupants, advance every car, then age
// everyone still waiting. The order is fixed so a seeded run is reproducible.
func (s *Simulation) Step() error {
	if err := s.generateOccupants(); err != nil {
		return fmt.Errorf("tick %d: %w", s.tick, err)
	}
	s.dispatch.AdvanceAll()
	s.updateWaitTimes()

	s.tick++
	return nil
}

// Run steps through the configured number of ticks and summarises the wait times.
func (s *Simulation) Run() (stats.Summary, error) {
	Log.Info().Msgf("Running %d ticks: %d floor(s), %d car(s) of capacity %d, spawn probability %v",
		s.config.SimulationDuration, s.config.TotalFloors, s.config.NumElevators,
		s.config.ElevatorCapacity, s.config.PassengerProbability)

	for s.tick < s.config.SimulationDuration {
		if err := s.Step(); err != nil {
			return stats.Summary{}, err
		}
	}

	summary := stats.Summarize(s.occupants)
	Log.Info().Msgf("Simulation finished after %d ticks with %d occupant(s)", s.tick, summary.Occupants)
	return summary, nil
}

func (s *Simulation) generateOccupants() error {
	floors := s.config.TotalFloors
	// A single floor building has no valid destination for anyone.
	if floors < 2 {
		return nil
	}

	for floor := simconsts.GROUND_FLOOR; floor <= floors; floor++ {
		if s.rng.Float64() >= s.config.PassengerProbability {
			continue
		}

		destination := s.drawDestination(floor)
		o, err := occupant.NewOccupant(floor, destination)
		if err != nil {
			return err
		}

		index, err := s.dispatch.Assign(o)
		if err != nil {
			return err
		}
		if index != dispatch.Unassigned {
			Log.Debug().Msgf("Tick %d: occupant %s (%d -> %d) assigned to car %d", s.tick, o.ID, floor, destination, index)
		}
		s.occupants = append(s.occupants, o)
	}
	return nil
}

func (s *Simulation) drawDestination(origin int) int {
	for {
		destination := s.rng.Intn(s.config.TotalFloors) + simconsts.GROUND_FLOOR
		if destination != origin {
			return destination
		}
	}
}

func (s *Simulation) updateWaitTimes() {
	for _, o := range s.occupants {
		o.IncrementWait()
	}
}

func (s *Simulation) Tick() int {
	return s.tick
}

func (s *Simulation) Config() config.Config {
	return s.config
}

func (s *Simulation) Dispatch() *dispatch.System {
	return s.dispatch
}

// Occupants returns every occupant created so far, in creation order.
func (s *Simulation) Occupants() []*occupant.Occupant {
	occupants := make([]*occupant.Occupant, len(s.occupants))
	copy(occupants, s.occupants)
	return occupants
}

// Snapshot copies the state of every car as of the last completed tick.
func (s *Simulation) Snapshot() ([]car.State, error) {
	return s.dispatch.Snapshot()
}
