package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/bgraf/trackpic/cmd/tools"
	"github.com/bgraf/trackpic/config"
	"github.com/bgraf/trackpic/filesystem"
	"github.com/bgraf/trackpic/geotrack"
	"github.com/bgraf/trackpic/option"
	"github.com/bgraf/trackpic/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render TRACK-FILE",
	Short: "Render a track into an elevation-colored image",
	Long: `Render loads the first segment of the first track in a GPX file and draws
every point onto an image. Without an output file the image is opened in an
image viewer.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("output", "o", "", "Output image file, format by extension (display if empty)")
	renderCmd.Flags().IntP("width", "W", config.DefaultWidth(), "Image width in pixels")
	renderCmd.Flags().IntP("height", "H", config.DefaultHeight(), "Image height in pixels")
	renderCmd.Flags().String("background", config.DefaultBackground(), "Background color as hex")
	renderCmd.Flags().String("degenerate", config.DefaultDegeneratePolicy(), "Handling of tracks without extent on an axis: collapse or fail")
	renderCmd.Flags().BoolP("force", "f", false, "Overwrite an existing output file without asking")

	flagKeys := map[string]string{
		"output":     config.KeyRenderOutput,
		"width":      config.KeyRenderWidth,
		"height":     config.KeyRenderHeight,
		"background": config.KeyRenderBackground,
		"degenerate": config.KeyRenderDegenerate,
	}
	for flag, key := range flagKeys {
		if err := viper.BindPFlag(key, renderCmd.Flags().Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		panic(err) // Should not happen
	}

	opts, err := config.LoadRenderOptions()
	if err != nil {
		return err
	}

	return renderTrack(args[0], config.OutputPath(), opts, force)
}

// renderTrack runs the whole conversion and hands the image to its sink.
// Nothing is written unless the track could be rendered completely.
func renderTrack(trackFile string, output option.Option[string], opts config.RenderOptions, force bool) error {
	renderOpts, err := toRenderOptions(opts)
	if err != nil {
		return err
	}

	points, err := geotrack.LoadTrack(trackFile)
	if err != nil {
		return fmt.Errorf("load track '%s': %w", trackFile, err)
	}

	logger.Info().Str("track", trackFile).Int("points", len(points)).Msg("track loaded")

	canvas, err := render.Render(points, renderOpts)
	if err != nil {
		return fmt.Errorf("render track '%s': %w", trackFile, err)
	}

	if output.IsNone() {
		tmpFile, err := tools.ShowImage(canvas.Image())
		if err != nil {
			return fmt.Errorf("display image: %w", err)
		}
		logger.Debug().Str("file", tmpFile).Msg("image handed to viewer")
		return nil
	}

	outputFile := filesystem.Abs(output.Get())

	if !force && filesystem.Exists(outputFile) {
		overwrite, err := askOverwrite(outputFile)
		if err != nil {
			return err
		}
		if !overwrite {
			logger.Info().Str("file", outputFile).Msg("keeping existing image")
			return nil
		}
	}

	if err := filesystem.CreateParentDirectory(outputFile); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	if err := canvas.Save(outputFile); err != nil {
		return err
	}

	fmt.Printf("Created %dx%d image '%s'\n", canvas.Width(), canvas.Height(), outputFile)

	return nil
}

func toRenderOptions(opts config.RenderOptions) (render.Options, error) {
	background, err := render.ParseBackground(opts.Background)
	if err != nil {
		return render.Options{}, err
	}

	policy, err := render.ParseDegeneratePolicy(opts.Degenerate)
	if err != nil {
		return render.Options{}, err
	}

	return render.Options{
		Width:      opts.Width,
		Height:     opts.Height,
		Background: background,
		Degenerate: policy,
		Logger:     logger,
	}, nil
}

// askOverwrite asks whether an existing output file may be replaced.
var askOverwrite = confirmOverwrite

func confirmOverwrite(file string) (bool, error) {
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Overwrite existing image (%s)", file),
		Default: false,
	}

	var overwrite bool
	if err := survey.AskOne(prompt, &overwrite); err != nil {
		return false, err
	}

	return overwrite, nil
}
