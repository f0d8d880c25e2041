package main

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/eqplot/internal/config"
	"github.com/RMahshie/eqplot/internal/dsp"
	"github.com/RMahshie/eqplot/internal/eq"
	"github.com/RMahshie/eqplot/internal/ui"
)

func main() {
	// Configure zerolog for structured logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if level, err := zerolog.ParseLevel(cfg.Log.Level); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	calculator := dsp.NewButterworthCalculator(
		cfg.DSP.SampleRate,
		cfg.DSP.FilterOrder,
		cfg.DSP.PlotPoints,
		cfg.DSP.PlotMinHz,
		cfg.DSP.PlotMaxHz,
	)
	filter := eq.NewFilter(calculator, cfg.UI.InitialCutoffHz)

	log.Info().
		Float64("initial_cutoff_hz", cfg.UI.InitialCutoffHz).
		Float64("sample_rate", cfg.DSP.SampleRate).
		Int("filter_order", cfg.DSP.FilterOrder).
		Msg("Starting EQ plot demo")

	a := app.New()
	window := a.NewWindow(cfg.UI.WindowTitle)
	window.SetContent(ui.Wire(cfg, filter))
	window.Resize(fyne.NewSize(float32(cfg.UI.WindowWidth), float32(cfg.UI.WindowHeight)))
	window.ShowAndRun()

	log.Info().Msg("EQ plot demo exited")
}
