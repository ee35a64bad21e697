package main

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/HadyTinawi/Elevator/internal/config"
	"github.com/HadyTinawi/Elevator/internal/logger"
	"github.com/HadyTinawi/Elevator/internal/simmetadata"
	"github.com/HadyTinawi/Elevator/internal/simulation"
	"github.com/HadyTinawi/Elevator/internal/simutils"
)

var Logger = logger.GetLoggerConfigured(zerolog.InfoLevel)

func main() {
	options := simutils.ProcessCmdArgs()
	logger.GetLoggerConfigured(logger.LevelFromString(options.LogLevel))

	// Starting Programme
	Logger.Info().Msg("Starting Elevator Simulation")

	cfg, warnings := config.Load(options.ConfigPath)
	for _, warning := range warnings {
		Logger.Warn().Msg(warning)
	}
	Logger.Info().Msgf("Config: %v", cfg.String())

	metadata := simmetadata.NewSimMetaData(simutils.GetGitHash(), options.Identifier, options.Seed, options.ConfigPath, cfg.Structure)
	Logger.Info().Msgf("Simulation: %v", metadata.String())

	sim, err := simulation.New(cfg, rand.New(rand.NewSource(options.Seed)))
	if err != nil {
		Logger.Fatal().Err(err).Msg("Could not create simulation")
	}

	summary, err := sim.Run()
	if err != nil {
		Logger.Fatal().Err(err).Msg("Simulation aborted")
	}
	if summary.Unassigned > 0 {
		Logger.Warn().Msgf("%d of %d occupant(s) never found a car with room", summary.Unassigned, summary.Occupants)
	}

	if options.JSON {
		fmt.Println(summary.String())
		return
	}
	for _, line := range summary.Lines() {
		fmt.Println(line)
	}
}
