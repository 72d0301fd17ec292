package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Palette is a skin: the handful of colors every view draws with.
type Palette struct {
	Navy   string `yaml:"navy"`
	White  string `yaml:"white"`
	Gray   string `yaml:"gray"`
	Blue   string `yaml:"blue"`
	Sky    string `yaml:"sky"`
	Green  string `yaml:"green"`
	Red    string `yaml:"red"`
	Orange string `yaml:"orange"`
	Yellow string `yaml:"yellow"`
}

var builtinSkins = map[string]Palette{
	"default": {
		Navy:   "#1B2A4A",
		White:  "#F5F7FA",
		Gray:   "#6B7280",
		Blue:   "#3B82F6",
		Sky:    "#38BDF8",
		Green:  "#22C55E",
		Red:    "#EF4444",
		Orange: "#F97316",
		Yellow: "#EAB308",
	},
	"mono": {
		Navy:   "236",
		White:  "255",
		Gray:   "244",
		Blue:   "252",
		Sky:    "250",
		Green:  "255",
		Red:    "255",
		Orange: "250",
		Yellow: "250",
	},
}

var (
	ColorNavy   lipgloss.Color
	ColorWhite  lipgloss.Color
	ColorGray   lipgloss.Color
	ColorBlue   lipgloss.Color
	ColorSky    lipgloss.Color
	ColorGreen  lipgloss.Color
	ColorRed    lipgloss.Color
	ColorOrange lipgloss.Color
	ColorYellow lipgloss.Color
)

var (
	sectionStyle       lipgloss.Style
	activeSectionStyle lipgloss.Style
	cardTitleStyle     lipgloss.Style
	helpStyle          lipgloss.Style
	mutedStyle         lipgloss.Style
)

func init() {
	applyPalette(builtinSkins["default"])
}

// InitializeSkin activates a built-in skin or, failing that, the YAML skin
// file <configDir>/skins/<name>.yml. Missing colors keep their default.
func InitializeSkin(name, configDir string) error {
	if name == "" {
		name = "default"
	}
	if p, ok := builtinSkins[name]; ok {
		applyPalette(p)
		return nil
	}
	p, err := LoadPalette(filepath.Join(configDir, "skins", name+".yml"))
	if err != nil {
		return err
	}
	applyPalette(p)
	return nil
}

// LoadPalette reads a skin file on top of the default palette.
func LoadPalette(path string) (Palette, error) {
	p := builtinSkins["default"]
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read skin %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse skin %s: %w", path, err)
	}
	return p, nil
}

func applyPalette(p Palette) {
	ColorNavy = lipgloss.Color(p.Navy)
	ColorWhite = lipgloss.Color(p.White)
	ColorGray = lipgloss.Color(p.Gray)
	ColorBlue = lipgloss.Color(p.Blue)
	ColorSky = lipgloss.Color(p.Sky)
	ColorGreen = lipgloss.Color(p.Green)
	ColorRed = lipgloss.Color(p.Red)
	ColorOrange = lipgloss.Color(p.Orange)
	ColorYellow = lipgloss.Color(p.Yellow)

	sectionStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorGray).
		Padding(0, 1)
	activeSectionStyle = lipgloss.NewStyle().
		Foreground(ColorWhite).
		Background(ColorBlue).
		Bold(true).
		Padding(0, 1)
	cardTitleStyle = lipgloss.NewStyle().
		Foreground(ColorBlue).
		Bold(true)
	helpStyle = lipgloss.NewStyle().
		Foreground(ColorGray)
	mutedStyle = lipgloss.NewStyle().
		Foreground(ColorGray)
}
