package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shibukawa/configdir"
	"go.uber.org/zap"

	"github.com/jobdeck/flaggate/pkg/flags"
)

const VendorName = "jobdeck"
const ApplicationName = "flaggate"

const logsDirectory = "logs"
const overridesFileName = "overrides.yaml"

const EnvTier = "APP_ENV"
const EnvHTTPAddr = "FLAGGATE_HTTP_ADDR"
const EnvOverridesFile = "FLAGGATE_OVERRIDES_FILE"

const defaultHTTPAddr = ":8080"

// Config is assembled once at startup and passed by injection.
// Environment input is read exactly once, in Load.
type Config struct {
	Tier          flags.Tier
	HTTPAddr      string
	OverridesFile string
	WatchFile     bool
	Debug         bool
}

// Load builds a Config from the environment. lookupEnv defaults to
// os.LookupEnv; tests substitute their own.
func Load(lookupEnv func(key string) (string, bool)) (*Config, error) {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}

	c := &Config{
		Tier:      flags.TierDevelopment,
		HTTPAddr:  defaultHTTPAddr,
		WatchFile: true,
	}

	if raw, found := lookupEnv(EnvTier); found {
		tier, err := flags.ParseTier(raw)
		if err != nil {
			return nil, errors.Wrap(err, "invalid "+EnvTier)
		}
		c.Tier = tier
	}

	if addr, found := lookupEnv(EnvHTTPAddr); found && addr != "" {
		c.HTTPAddr = addr
	}

	if path, found := lookupEnv(EnvOverridesFile); found && path != "" {
		c.OverridesFile = path
	} else {
		c.OverridesFile = DefaultOverridesPath()
	}

	c.Debug = c.Tier == flags.TierDevelopment

	return c, nil
}

// DefaultOverridesPath is the per-user config location of the local
// overrides file.
func DefaultOverridesPath() string {
	configDirs := configdir.New(VendorName, ApplicationName)
	folders := configDirs.QueryFolders(configdir.Global)
	return filepath.Join(folders[0].Path, overridesFileName)
}

// SetupLogger builds the process logger. It logs to a timestamped file
// under the user config directory, so log output does not interleave
// with CLI and TUI rendering.
func SetupLogger(debug bool) (*zap.Logger, string, error) {
	var c zap.Config
	if debug {
		c = zap.NewDevelopmentConfig()
	} else {
		c = zap.NewProductionConfig()
	}

	logFilePath, err := createLogFile()
	if err != nil {
		return nil, "", err
	}

	c.OutputPaths = []string{logFilePath}
	c.Development = false

	logger, err := c.Build()
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to build logger")
	}

	return logger, logFilePath, nil
}

func createLogFile() (string, error) {
	name := fmt.Sprintf("flaggate-%s.log", time.Now().UTC().Format(time.RFC3339))
	name = strings.Replace(name, ":", "-", -1)

	configDirs := configdir.New(VendorName, ApplicationName)
	folders := configDirs.QueryFolders(configdir.Global)
	path := filepath.Join(folders[0].Path, logsDirectory, name)

	if err := os.MkdirAll(filepath.Dir(path), 0770); err != nil {
		return "", errors.Wrap(err, "failed to create logs directory")
	}

	if _, err := os.Create(path); err != nil {
		return "", errors.Wrap(err, "failed to create log file")
	}

	return path, nil
}
