package config

import (
	"flag"

	"github.com/lixenwraith/strands/parameter"
)

// Flags binds command-line options; only flags the user set override the config
type Flags struct {
	fs *flag.FlagSet

	ConfigPath  string
	EnvPath     string
	WriteConfig string
	Bench       string

	strands  int
	gravity  float64
	friction float64
	radius   float64
	fps      int
	noAudio  bool
	volume   float64
	noHUD    bool
	debug    bool
}

// NewFlags registers options on fs
func NewFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	def := Default()

	fs.StringVar(&f.ConfigPath, "config", parameter.DefaultConfigFile, "TOML config file")
	fs.StringVar(&f.EnvPath, "env", parameter.DefaultEnvFile, "dotenv file with "+parameter.EnvPrefix+"* overrides")
	fs.StringVar(&f.WriteConfig, "write-config", "", "write the effective config to this path and exit")
	fs.StringVar(&f.Bench, "bench", "", "run headless benchmark, profile as frames@fps[,frames@fps...] or \"default\"")

	fs.IntVar(&f.strands, "strands", def.StrandCount, "number of strands")
	fs.Float64Var(&f.gravity, "gravity", def.Physics.Gravity, "downward acceleration per frame")
	fs.Float64Var(&f.friction, "friction", def.Physics.Friction, "velocity retention per frame")
	fs.Float64Var(&f.radius, "radius", def.Pointer.Radius, "pointer influence radius in pixels")
	fs.IntVar(&f.fps, "fps", def.Display.FrameRate, "target frame rate")
	fs.BoolVar(&f.noAudio, "no-audio", false, "disable pluck sounds")
	fs.Float64Var(&f.volume, "volume", def.Audio.Volume, "master volume 0..1")
	fs.BoolVar(&f.noHUD, "no-hud", false, "hide the status line")
	fs.BoolVar(&f.debug, "debug", false, "write logs to logs/")
	return f
}

// Apply copies explicitly set flags into cfg
func (f *Flags) Apply(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "strands":
			cfg.StrandCount = f.strands
		case "gravity":
			cfg.Physics.Gravity = f.gravity
		case "friction":
			cfg.Physics.Friction = f.friction
		case "radius":
			cfg.Pointer.Radius = f.radius
		case "fps":
			cfg.Display.FrameRate = f.fps
		case "no-audio":
			cfg.Audio.Enabled = !f.noAudio
		case "volume":
			cfg.Audio.Volume = f.volume
		case "no-hud":
			cfg.Display.ShowHUD = !f.noHUD
		case "debug":
			cfg.Debug = f.debug
		}
	})
}

// Resolve layers defaults, config file, env and flags, then validates
// lookup is usually os.LookupEnv
func (f *Flags) Resolve(lookup func(string) (string, bool)) (Config, error) {
	if err := LoadEnv(f.EnvPath); err != nil {
		return Default(), err
	}
	cfg, err := Load(f.ConfigPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return cfg, err
	}
	f.Apply(&cfg)
	return cfg, cfg.Validate()
}
