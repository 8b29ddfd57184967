package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// RenderOptions is the validated set of canvas settings read from flags,
// environment and config file.
type RenderOptions struct {
	Width      int    `validate:"min=2,max=16384"`
	Height     int    `validate:"min=2,max=16384"`
	Background string `validate:"required,hexcolor"`
	Degenerate string `validate:"oneof=collapse fail"`
}

// LoadRenderOptions reads the render.* keys and validates them.
func LoadRenderOptions() (RenderOptions, error) {
	opts := RenderOptions{
		Width:      viper.GetInt(KeyRenderWidth),
		Height:     viper.GetInt(KeyRenderHeight),
		Background: viper.GetString(KeyRenderBackground),
		Degenerate: viper.GetString(KeyRenderDegenerate),
	}

	if err := opts.Validate(); err != nil {
		return RenderOptions{}, err
	}

	return opts, nil
}

func (o RenderOptions) Validate() error {
	v := validator.New()
	if err := v.Struct(o); err != nil {
		return fmt.Errorf("render options: %w", err)
	}
	return nil
}
