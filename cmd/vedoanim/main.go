package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/GHzytp/vedo/internal/anim"
	"github.com/GHzytp/vedo/internal/config"
	"github.com/GHzytp/vedo/internal/director"
	"github.com/GHzytp/vedo/internal/logging"
	"github.com/GHzytp/vedo/internal/render"
	"github.com/GHzytp/vedo/internal/scene"
	"github.com/GHzytp/vedo/internal/source"
	"github.com/GHzytp/vedo/internal/system"
	"github.com/GHzytp/vedo/internal/video"
)

func main() {
	cfg := config.Default()

	configPtr := flag.String("config", "", "Optional YAML config file")
	scenarioPtr := flag.String("scenario", "", "Scenario file (default: newest file in scenarios/)")
	outputPtr := flag.String("output", "", "Output video path (default: auto-generated in output/)")
	widthPtr := flag.Int("width", cfg.Width, "Frame width")
	heightPtr := flag.Int("height", cfg.Height, "Frame height")
	fpsPtr := flag.Int("fps", cfg.FPS, "Video frames per second")
	resolutionPtr := flag.Float64("resolution", cfg.TimeResolution, "Event time resolution in seconds")
	durationPtr := flag.Float64("duration", 0, "Total video duration override (0 = derive from events)")
	qualityPtr := flag.Int("quality", 0, "Video quality (0 = auto per encoder)")
	dpiPtr := flag.Int("dpi", cfg.DPI, "Backdrop render DPI")
	workersPtr := flag.Int("workers", runtime.NumCPU(), "Backdrop render workers")
	noVideoPtr := flag.Bool("no-video", false, "Play without recording a video")
	statsPtr := flag.Bool("stats", false, "Print a performance report")
	logLevelPtr := flag.String("log-level", cfg.LogLevel, "Log level: debug, info, warn, error")

	flag.Parse()

	if *configPtr != "" {
		if err := cfg.ApplyFile(*configPtr); err != nil {
			fmt.Fprintf(os.Stderr, "[-] Config error: %v\n", err)
			os.Exit(1)
		}
	}

	// Explicit flags win over the config file.
	passed := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { passed[f.Name] = true })
	if passed["output"] {
		cfg.OutputVideo = *outputPtr
	}
	if passed["width"] {
		cfg.Width = *widthPtr
	}
	if passed["height"] {
		cfg.Height = *heightPtr
	}
	if passed["fps"] {
		cfg.FPS = *fpsPtr
	}
	if passed["resolution"] {
		cfg.TimeResolution = *resolutionPtr
	}
	if passed["duration"] {
		cfg.TotalDuration = *durationPtr
	}
	if passed["quality"] {
		cfg.Quality = *qualityPtr
	}
	if passed["dpi"] {
		cfg.DPI = *dpiPtr
	}
	if passed["workers"] || cfg.Workers == 0 {
		cfg.Workers = *workersPtr
	}
	if passed["no-video"] {
		cfg.NoVideo = *noVideoPtr
	}
	if passed["stats"] {
		cfg.ShowStats = *statsPtr
	}
	if passed["log-level"] {
		cfg.LogLevel = *logLevelPtr
	}

	logger := logging.Setup(cfg.LogLevel)
	system.InitResourceLimits()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scenarioPath := *scenarioPtr
	if scenarioPath == "" {
		scenarioPath = cfg.ScenarioPath
	}
	if scenarioPath == "" {
		latest, err := director.FindLatestScenario(director.DefaultScenarioDir)
		if err != nil {
			logger.Fatal().Err(err).Msgf("no scenario given; put one in %s/", director.DefaultScenarioDir)
		}
		scenarioPath = latest
		fmt.Printf("[*] Using scenario: %s\n", scenarioPath)
	}

	sc, err := director.ReadScenario(scenarioPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to read scenario")
	}

	// Scenario-level settings fill in whatever flags did not pin down.
	if sc.FPS > 0 && !passed["fps"] {
		cfg.FPS = sc.FPS
	}
	if sc.TimeResolution > 0 && !passed["resolution"] {
		cfg.TimeResolution = sc.TimeResolution
	}
	if sc.TotalDuration > 0 && !passed["duration"] {
		cfg.TotalDuration = sc.TotalDuration
	}
	if sc.Width > 0 && !passed["width"] {
		cfg.Width = sc.Width
	}
	if sc.Height > 0 && !passed["height"] {
		cfg.Height = sc.Height
	}
	if sc.Output != "" && cfg.OutputVideo == "" {
		cfg.OutputVideo = sc.Output
	}

	objects, ordered, err := director.BuildObjects(sc)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build scenario objects")
	}

	stage := scene.NewScene()
	for _, obj := range ordered {
		stage.Add(obj)
	}

	canvas := render.NewCanvas(stage, cfg.Width, cfg.Height)
	if sc.Background != "" {
		bg, err := scene.ParseColor(sc.Background)
		if err != nil {
			logger.Fatal().Err(err).Msg("bad background color")
		}
		canvas.Background = bg
	}
	if err := canvas.SetQRLink(sc.QRLink, 0); err != nil {
		logger.Fatal().Err(err).Msg("failed to build QR watermark")
	}
	if sc.Backdrop != nil {
		if err := loadBackdrop(ctx, canvas, sc.Backdrop, cfg); err != nil {
			logger.Fatal().Err(err).Msg("failed to load backdrop")
		}
	}

	progress := func(current, total int, label string) {
		fmt.Printf("\r[>] %d/%d  %s        ", current, total, label)
		if current == total {
			fmt.Println()
		}
	}

	tl := anim.New(stage, anim.Options{
		TimeResolution: cfg.TimeResolution,
		TotalDuration:  cfg.TotalDuration,
		Progress:       progress,
		Logger:         logger,
	})

	if err := director.ApplySteps(tl, sc, objects); err != nil {
		logger.Fatal().Err(err).Msg("failed to book scenario steps")
	}

	var writer video.Writer
	var ffmpeg *video.FFmpegWriter
	if !cfg.NoVideo {
		outPath := cfg.OutputVideo
		if outPath == "" {
			os.MkdirAll("output", 0755)
			base := strings.TrimSuffix(filepath.Base(scenarioPath), filepath.Ext(scenarioPath))
			timestamp := time.Now().Format("2006-01-02_15-04-05")
			outPath = filepath.Join("output", fmt.Sprintf("%s_%s.mp4", base, timestamp))
		}
		encoderName := cfg.VideoEncoder
		if encoderName == "" {
			encoderName, _ = system.GetBestH264Encoder()
		}
		if encoderName != "libx264" {
			fmt.Printf("[*] Hardware encoder detected: %s\n", encoderName)
		}

		ffmpeg, err = video.NewFFmpegWriter(ctx, outPath, video.EncoderOptions{
			FPS:     cfg.FPS,
			Width:   cfg.Width,
			Height:  cfg.Height,
			Encoder: encoderName,
			Quality: cfg.Quality,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to start video writer")
		}
		writer = ffmpeg
		cfg.OutputVideo = outPath
	}

	fmt.Println("--- [VEDO ANIMATION] ---")
	fmt.Printf("[*] Scenario: %s | Objects: %d | Events: %d\n", scenarioPath, len(ordered), len(tl.Events()))
	fmt.Printf("[*] Canvas: %dx%d @ %d FPS | Resolution: %.3fs | Duration: %.2fs\n",
		cfg.Width, cfg.Height, cfg.FPS, cfg.TimeResolution, tl.TotalDuration())
	fmt.Println("------------------------")

	stats := system.RunStats{Start: time.Now(), Events: len(tl.Events()), Duration: tl.TotalDuration()}

	if err := tl.Play(ctx, canvas, writer); err != nil {
		logger.Fatal().Err(err).Msg("playback failed")
	}

	if cfg.ShowStats {
		if ffmpeg != nil {
			stats.Frames = ffmpeg.FrameCount()
		}
		stats.Report()
	}

	if cfg.NoVideo {
		fmt.Println("[+++] Done (no video requested).")
	} else {
		fmt.Printf("[+++] Success! Result: %s\n", cfg.OutputVideo)
	}
}

// loadBackdrop renders the configured PDF page or image and installs it on
// the canvas. All pages are pre-rendered in parallel so page flips stay
// cheap if a scenario ever asks for more than one.
func loadBackdrop(ctx context.Context, canvas *render.Canvas, b *director.Backdrop, cfg config.Config) error {
	var (
		src source.Source
		err error
	)
	if strings.HasSuffix(strings.ToLower(b.Input), ".pdf") {
		src, err = source.NewFitzPDFSource(b.Input)
	} else {
		src, err = source.NewImageSource(b.Input)
	}
	if err != nil {
		return err
	}
	defer src.Close()

	dpi := b.DPI
	if dpi <= 0 {
		// No pinned DPI: render the page to fit the canvas width.
		dpi = source.FitDPI(src, b.Page, cfg.Width, cfg.DPI)
	}
	pages, err := source.RenderAll(ctx, src, dpi, cfg.Workers)
	if err != nil {
		return err
	}
	if b.Page < 0 || b.Page >= len(pages) {
		return fmt.Errorf("backdrop page %d out of range (0-%d)", b.Page, len(pages)-1)
	}
	canvas.SetBackdrop(pages[b.Page])
	return nil
}
