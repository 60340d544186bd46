package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	Output        string `mapstructure:"output"`
	Quiet         bool   `mapstructure:"quiet"`
	ColorMarkdown string `mapstructure:"color_markdown"`
	ColorHTML     string `mapstructure:"color_html"`
	ColorBorder   string `mapstructure:"color_border"`
	ColorTitle    string `mapstructure:"color_title"`
	PreviewGap    int    `mapstructure:"preview_gap"`
}

// C is the global config instance
var C Config

// Init initializes configuration with viper
func Init() error {
	viper.SetDefault("output", "-")
	viper.SetDefault("quiet", false)
	viper.SetDefault("color_markdown", "36") // Cyan
	viper.SetDefault("color_html", "32")     // Green
	viper.SetDefault("color_border", "240")  // Gray
	viper.SetDefault("color_title", "212")   // Pink
	viper.SetDefault("preview_gap", 2)       // Spaces between preview panes

	viper.SetConfigName("underdown")
	viper.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "underdown"))
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("UNDERDOWN")
	viper.AutomaticEnv()

	// Try to read config, but don't fail if not found or malformed
	_ = viper.ReadInConfig()

	return viper.Unmarshal(&C)
}

// GetOutput returns the output destination, "-" meaning stdout
func GetOutput() string {
	return expandTilde(viper.GetString("output"))
}

// GetQuiet returns whether parser diagnostics are suppressed
func GetQuiet() bool {
	return viper.GetBool("quiet")
}

// GetColorMarkdown returns ANSI color code for the markdown pane
func GetColorMarkdown() string {
	return viper.GetString("color_markdown")
}

// GetColorHTML returns ANSI color code for the HTML pane
func GetColorHTML() string {
	return viper.GetString("color_html")
}

// GetColorBorder returns the color for pane borders
func GetColorBorder() string {
	return viper.GetString("color_border")
}

// GetColorTitle returns the color for pane titles
func GetColorTitle() string {
	return viper.GetString("color_title")
}

// GetPreviewGap returns spacing between preview panes
func GetPreviewGap() int {
	return viper.GetInt("preview_gap")
}

// SetOutput sets the output destination at runtime
func SetOutput(dest string) {
	viper.Set("output", dest)
	C.Output = dest
}

// SetQuiet sets diagnostic suppression at runtime
func SetQuiet(quiet bool) {
	viper.Set("quiet", quiet)
	C.Quiet = quiet
}

// expandTilde expands ~ to the user's home directory
func expandTilde(path string) string {
	if len(path) == 0 {
		return path
	}
	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
