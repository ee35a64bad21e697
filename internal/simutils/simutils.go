package simutils

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/HadyTinawi/Elevator/internal/simconsts"
)

//go:generate sh -c "printf %s $(git rev-parse HEAD) > githash.txt"
//go:embed githash.txt
var gitHash string

func GetGitHash() string {
	return strings.TrimSpace(gitHash)
}

type Options struct {
	ConfigPath string
	Seed       int64
	Identifier string
	LogLevel   string
	JSON       bool
}

var errExit = errors.New("exit requested")

// ProcessCmdArgs parses os.Args. -help and -version print and exit.
func ProcessCmdArgs() Options {
	options, err := parseArgs(os.Args[1:], os.Stdout)
	if errors.Is(err, errExit) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	return options
}

func parseArgs(args []string, out io.Writer) (Options, error) {
	flags := flag.NewFlagSet("heissim", flag.ContinueOnError)
	flags.SetOutput(out)

	help := flags.Bool("help", false, "Show Help Window")
	version := flags.Bool("version", false, "Show Version")
	configPath := flags.String("config", simconsts.DEFAULT_CONFIG_PATH, "Configuration file, .properties/.env or .yaml. Missing files fall back to defaults")
	seed := flags.Int64("seed", 0, "Random seed. Defaults to the current time")
	identifier := flags.String("id", "", "Set the identifier of the run. Defaults to random string")
	logLevel := flags.String("loglevel", "info", "Log level: trace, debug, info, warn, error, disabled")
	jsonOutput := flags.Bool("json", false, "Print the summary as JSON")

	if err := flags.Parse(args); err != nil {
		return Options{}, err
	}

	if *version {
		fmt.Fprintln(out, "Version:", GetGitHash())
		return Options{}, errExit
	}

	if *help {
		fmt.Fprintln(out, "Usage: ./heissim [OPTIONS] [CONFIG FILE]")
		fmt.Fprintln(out, "Elevator dispatch simulation")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Options:")
		flags.PrintDefaults()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "The text summary rounds the average wait to two decimals; -json prints it unrounded.")
		return Options{}, errExit
	}

	// A positional argument names the config file, as -config does.
	if flags.NArg() > 0 {
		*configPath = flags.Arg(0)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	return Options{
		ConfigPath: *configPath,
		Seed:       *seed,
		Identifier: *identifier,
		LogLevel:   *logLevel,
		JSON:       *jsonOutput,
	}, nil
}
