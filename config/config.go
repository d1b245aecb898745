package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ushitora-anqou/ddkit/constant"
	"github.com/ushitora-anqou/ddkit/ddk"
)

type Config struct {
	Mode       ddk.Mode
	IconPath   string
	PresetPath string
	CPUProfile string
	Trace      bool
	Mute       bool
}

// Load reads .env files, then DDK_* environment variables, then command
// line flags; later sources win.
func Load(name string, args []string) (*Config, error) {
	loadDotEnv()

	cfg := &Config{
		Mode: ddk.Mode{
			Width:       getEnvInt("DDK_WIDTH", constant.WINDOW_WIDTH),
			Height:      getEnvInt("DDK_HEIGHT", constant.WINDOW_HEIGHT),
			Depth:       getEnvInt("DDK_DEPTH", constant.DEPTH_32),
			RefreshRate: getEnvInt("DDK_REFRESH", constant.REFRESH_RATE),
			Fullscreen:  getEnvBool("DDK_FULLSCREEN"),
			Title:       getEnvWithDefault("DDK_TITLE", constant.WINDOW_TITLE),
		},
		IconPath:   getEnvWithDefault("DDK_ICON", constant.ICON_PATH),
		PresetPath: os.Getenv("DDK_PRESET"),
		CPUProfile: os.Getenv("DDK_CPUPROFILE"),
		Trace:      getEnvBool("DDK_TRACE"),
		Mute:       getEnvBool("DDK_MUTE"),
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.IntVar(&cfg.Mode.Width, "width", cfg.Mode.Width, "window width")
	fs.IntVar(&cfg.Mode.Height, "height", cfg.Mode.Height, "window height")
	fs.IntVar(&cfg.Mode.Depth, "depth", cfg.Mode.Depth, "bits per pixel (16 or 32)")
	fs.IntVar(&cfg.Mode.RefreshRate, "refresh", cfg.Mode.RefreshRate, "frames per second, 0 for unpaced")
	fs.BoolVar(&cfg.Mode.Fullscreen, "fullscreen", cfg.Mode.Fullscreen, "fullscreen window")
	fs.StringVar(&cfg.Mode.Title, "title", cfg.Mode.Title, "window title")
	fs.StringVar(&cfg.IconPath, "icon", cfg.IconPath, "BMP window icon, ignored when missing")
	fs.StringVar(&cfg.PresetPath, "preset", cfg.PresetPath, "sound preset to load at startup")
	fs.StringVar(&cfg.CPUProfile, "cpuprofile", cfg.CPUProfile, "directory to write a CPU profile to")
	fs.BoolVar(&cfg.Trace, "trace", cfg.Trace, "verbose logging")
	fs.BoolVar(&cfg.Mute, "mute", cfg.Mute, "disable audio output")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("Usage: %s [flags]: unexpected argument %q", name, fs.Arg(0))
	}

	if err := cfg.Mode.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadDotEnv() {
	envPaths := []string{".env"}
	if execPath, err := os.Executable(); err == nil {
		envPaths = append(envPaths, filepath.Join(filepath.Dir(execPath), ".env"))
	}
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			// Load never overrides variables that are already set.
			_ = godotenv.Load(envPath)
			break
		}
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
