package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"camnoise/internal/models"
	"camnoise/pkg/artifacts"
	"camnoise/pkg/config"
	"camnoise/pkg/console"
	"camnoise/pkg/imageio"
	"camnoise/pkg/pipeline"
)

func main() {
	// Parse command line arguments
	inputPath := flag.String("input", "", "Input image file (PNG/JPEG/GIF/WebP/BMP)")
	outputPath := flag.String("output", "output.png", "Output image file")
	configPath := flag.String("config", "camnoise.yaml", "Configuration file (optional)")
	interactive := flag.Bool("interactive", true, "Tune parameters live in the terminal")
	seed := flag.Uint64("seed", 0, "Random seed (0 = time-based)")

	// Batch-mode parameters, used when -interactive=false
	sigma := flag.Float64("sigma", 0, "Gaussian noise standard deviation")
	salt := flag.Float64("salt", 0, "Salt probability in [0,1]")
	pepper := flag.Float64("pepper", 0, "Pepper probability in [0,1]")
	k1 := flag.Float64("k1", 0, "Radial distortion coefficient k1")
	k2 := flag.Float64("k2", 0, "Radial distortion coefficient k2")
	p1 := flag.Float64("p1", 0, "Tangential distortion coefficient p1")
	p2 := flag.Float64("p2", 0, "Tangential distortion coefficient p2")
	levels := flag.Int("levels", 256, "Quantization levels per channel")
	kernel := flag.Int("kernel", 1, "Motion blur kernel size")
	flag.Parse()

	// Validate inputs
	if *inputPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	// Load configuration (defaults when the file is absent)
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *seed != 0 {
		cfg.Session.Seed = *seed
	}

	// Load the base image; a load failure is terminal and no pipeline
	// execution is attempted
	fmt.Printf("Loading image: %s\n", *inputPath)
	base, err := imageio.Load(*inputPath)
	if err != nil {
		log.Fatalf("Failed to load image: %v", err)
	}
	fmt.Printf("Image loaded: %dx%d pixels, %d channels\n", base.Width, base.Height, base.Channels)

	driver := pipeline.NewDriver(artifacts.NewGenerator(cfg.Session.Seed))
	store := imageio.NewStore(cfg.Output.JPEGQuality)

	if !*interactive {
		params := models.Params{
			Sigma:      *sigma,
			SaltProb:   *salt,
			PepperProb: *pepper,
			K1:         *k1,
			K2:         *k2,
			P1:         *p1,
			P2:         *p2,
			Levels:     *levels,
			KernelSize: *kernel,
		}
		result := driver.Apply(base, params)
		if err := store.Save(result, *outputPath); err != nil {
			log.Fatalf("Failed to save output image: %v", err)
		}
		fmt.Printf("Image saved to: %s\n", *outputPath)
		printParams(params)
		return
	}

	res, err := runInteractive(cfg, driver, store, base, *outputPath)
	if err != nil {
		log.Fatalf("Interactive session failed: %v", err)
	}

	if !res.Saved {
		fmt.Println("Exited without saving.")
		os.Exit(1)
	}

	fmt.Printf("Image saved to: %s\n", *outputPath)
	printParams(res.Params)
}

// runInteractive wires the terminal collaborators to the tuning session and
// runs it, restoring the terminal on the way out.
func runInteractive(cfg *config.Config, driver *pipeline.Driver, store *imageio.Store, base *models.Image, outputPath string) (pipeline.Result, error) {
	panel := console.NewConsole(cfg.Session.PreviewWidth)

	// Seed the sliders from the configured initial positions
	panel.SetControl(pipeline.ControlSigma, cfg.Controls.Sigma)
	panel.SetControl(pipeline.ControlSaltProb, cfg.Controls.SaltProb)
	panel.SetControl(pipeline.ControlPepperProb, cfg.Controls.PepperProb)
	panel.SetControl(pipeline.ControlLevels, cfg.Controls.Levels)
	panel.SetControl(pipeline.ControlK1, cfg.Controls.K1)
	panel.SetControl(pipeline.ControlK2, cfg.Controls.K2)
	panel.SetControl(pipeline.ControlP1, cfg.Controls.P1)
	panel.SetControl(pipeline.ControlP2, cfg.Controls.P2)
	panel.SetControl(pipeline.ControlKernel, cfg.Controls.Kernel)

	if err := panel.Open(); err != nil {
		return pipeline.Result{}, err
	}
	defer panel.Close()

	session := pipeline.NewSession(driver, panel, panel, panel, store)
	if cfg.Session.PollIntervalMs > 0 {
		session.PollTimeout = time.Duration(cfg.Session.PollIntervalMs) * time.Millisecond
	}

	return session.Run(base, outputPath)
}

// printParams prints the parameter values that produced the saved image.
func printParams(p models.Params) {
	fmt.Printf("  Gaussian Sigma: %.0f\n", p.Sigma)
	fmt.Printf("  Salt Probability: %.3f\n", p.SaltProb)
	fmt.Printf("  Pepper Probability: %.3f\n", p.PepperProb)
	fmt.Printf("  Quantization Levels: %d\n", p.Levels)
	fmt.Printf("  Distortion: k1=%.2f, k2=%.2f, p1=%.2f, p2=%.2f\n", p.K1, p.K2, p.P1, p.P2)
	fmt.Printf("  Motion Kernel: %d\n", p.KernelSize)
}
