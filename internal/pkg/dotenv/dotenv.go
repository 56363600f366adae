package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

type Result struct {
	// EnvFileLoaded is false when the env file does not exist.
	EnvFileLoaded bool
	// Args are the positional arguments left after the flags.
	Args []string
}

// Load reads the env file named by -env (".env" by default) and then applies
// -port. Variables already present in the process environment win over the
// file. A missing file is not an error.
func Load(args []string) (*Result, error) {
	flags := flag.NewFlagSet("shop", flag.ContinueOnError)
	envFile := flags.String("env", defaultEnvFile, "path to the env file")
	port := flags.String("port", "", "server port (overrides PORT environment variable)")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	result := &Result{Args: flags.Args()}

	err := godotenv.Load(*envFile)
	switch {
	case err == nil:
		result.EnvFileLoaded = true
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("load %s: %w", *envFile, err)
	}

	if *port != "" {
		if err := os.Setenv("PORT", *port); err != nil {
			return nil, fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return result, nil
}
