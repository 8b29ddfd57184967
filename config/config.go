package config

import (
	"github.com/bgraf/trackpic/option"
	"github.com/spf13/viper"
)

var (
	KeyRenderWidth      = "render.width"
	KeyRenderHeight     = "render.height"
	KeyRenderBackground = "render.background"
	KeyRenderDegenerate = "render.degenerate"
	KeyRenderOutput     = "render.output"
	KeyInputMaxBytes    = "input.max-bytes"
	KeyToolsViewer      = "tools.viewer"
	KeyVerbose          = "verbose"
)

func init() {
	SetDefaults()
}

// SetDefaults registers the default value of every render and input key.
func SetDefaults() {
	viper.SetDefault(KeyRenderWidth, DefaultWidth())
	viper.SetDefault(KeyRenderHeight, DefaultHeight())
	viper.SetDefault(KeyRenderBackground, DefaultBackground())
	viper.SetDefault(KeyRenderDegenerate, DefaultDegeneratePolicy())
	viper.SetDefault(KeyInputMaxBytes, DefaultMaxTrackFileSize())
}

func GPXExtensions() []string {
	return []string{".gpx"}
}

func DefaultWidth() int {
	return 500
}

func DefaultHeight() int {
	return 500
}

func DefaultBackground() string {
	return "#000000"
}

func DefaultDegeneratePolicy() string {
	return "collapse"
}

func DefaultMaxTrackFileSize() int64 {
	return 64 << 20
}

func DefaultViewer() string {
	return "xdg-open"
}

// MaxTrackFileSize is the largest track file in bytes the loader accepts.
// Zero or a negative value disables the check.
func MaxTrackFileSize() int64 {
	return viper.GetInt64(KeyInputMaxBytes)
}

// OutputPath returns the configured image destination. None means the
// image is displayed instead of saved.
func OutputPath() option.Option[string] {
	p := viper.GetString(KeyRenderOutput)
	if p == "" {
		return option.None[string]()
	}
	return option.Some(p)
}

// Viewer returns the configured image viewer command, if any.
func Viewer() option.Option[string] {
	v := viper.GetString(KeyToolsViewer)
	if v == "" {
		return option.None[string]()
	}
	return option.Some(v)
}

func Verbose() bool {
	return viper.GetBool(KeyVerbose)
}
