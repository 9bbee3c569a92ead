package format

import (
	"os"
	"sync/atomic"

	"github.com/goccy/go-yaml"
)

// RenderTarget selects the hosted display format a binding ultimately
// embeds the rendered string into (spec §5: "mathjax/png/svg selector").
// It never influences algebraic semantics, only which of the three
// dialect renderers a binding should reach for.
type RenderTarget string

const (
	TargetMathJax RenderTarget = "mathjax"
	TargetPNG     RenderTarget = "png"
	TargetSVG     RenderTarget = "svg"
)

// Config is the process-local printing-configuration record of spec
// §5: write-rarely, read-many, swapped atomically rather than guarded
// by a mutex, and carrying no algebraic semantics — only formatter
// toggles.
type Config struct {
	LaTeX   bool         `yaml:"latex"`
	Unicode bool         `yaml:"unicode"`
	Target  RenderTarget `yaml:"target"`
}

// DefaultConfig matches the ASCII Simple dialect (no LaTeX, no Unicode)
// with the MathJax render target.
func DefaultConfig() Config {
	return Config{LaTeX: false, Unicode: false, Target: TargetMathJax}
}

var active atomic.Pointer[Config]

func init() {
	cfg := DefaultConfig()
	active.Store(&cfg)
}

// Active returns the currently installed printing configuration.
// Concurrent readers never observe a torn write: the pointer swap in
// SetActive is the only mutation, per spec §5's atomic-swap requirement.
func Active() Config {
	return *active.Load()
}

// SetActive installs cfg as the process-local printing configuration.
func SetActive(cfg Config) {
	c := cfg
	active.Store(&c)
}

// LoadConfigFile reads a YAML printing-configuration file and installs
// it as the active configuration. Concurrent reconfiguration from
// multiple goroutines calling LoadConfigFile is undefined, per spec §5's
// explicit carve-out — only the read path (Active) is safe to call
// concurrently with a single writer.
func LoadConfigFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	SetActive(cfg)
	return nil
}
