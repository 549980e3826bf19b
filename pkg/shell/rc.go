package shell

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pickle-lang/pickle/pkg/pickle"
	"github.com/pickle-lang/pickle/pkg/prog"
)

// config is the shell configuration, read from the rc file and overridden
// by command-line flags.
type config struct {
	Prompt  string `yaml:"prompt"`
	History string `yaml:"history"` // liner history file
	DB      string `yaml:"db"`      // bolt command history database
	Limits  struct {
		MaxString    int `yaml:"max-string"`
		MaxRecursion int `yaml:"max-recursion"`
		MaxArgs      int `yaml:"max-args"`
	} `yaml:"limits"`
}

func defaultConfig() *config {
	cfg := &config{
		Prompt:  "pickle> ",
		History: historyPath(),
		DB:      dbPath(),
	}
	cfg.Limits.MaxString = pickle.DefaultLimits.MaxString
	cfg.Limits.MaxRecursion = pickle.DefaultLimits.MaxRecursion
	cfg.Limits.MaxArgs = pickle.DefaultLimits.MaxArgs
	return cfg
}

// readConfig loads the rc file over the built-in defaults and applies the
// flag overrides. Problems with the rc file are warnings, never fatal.
func readConfig(stderr *os.File, f *prog.Flags) *config {
	cfg := defaultConfig()

	path := f.RC
	if path == "" {
		path = rcPath()
	}
	if !f.NoRc && path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				fmt.Fprintf(stderr, "Warning: bad rc file %s: %v\n", path, err)
			}
		} else if !os.IsNotExist(err) {
			fmt.Fprintln(stderr, "Warning:", err)
		}
	}

	if f.SuppressPrompt {
		cfg.Prompt = ""
	}
	if f.DB != "" {
		cfg.DB = f.DB
	}
	return cfg
}

func (cfg *config) limits() *pickle.Limits {
	return &pickle.Limits{
		MaxString:    cfg.Limits.MaxString,
		MaxRecursion: cfg.Limits.MaxRecursion,
		MaxArgs:      cfg.Limits.MaxArgs,
	}
}
