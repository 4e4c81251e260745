package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Built-in scene name, JSON scene name in ./scenes, or path to a .json scene")
	width := flag.Int("width", 0, "Canvas width in pixels (0 = scene default)")
	height := flag.Int("height", 0, "Canvas height in pixels (0 = scene default)")
	format := flag.String("format", "ppm", "Output format: 'ppm' or 'png'")
	output := flag.String("output", "", "Output file (default output/<scene>/render_<timestamp>.<format>)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		showHelp()
		return
	}

	if *format != "ppm" && *format != "png" {
		fmt.Printf("Unknown output format: %s\n", *format)
		os.Exit(1)
	}

	fmt.Println("Starting Phong Raytracer...")

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	selectedScene = selectedScene.WithSize(*width, *height)

	filename := *output
	if filename == "" {
		filename = defaultOutputPath(selectedScene.Name, *format, time.Now())
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	raytracer := renderer.NewRaytracer(selectedScene, log.New(os.Stdout, "", 0))
	img, stats, err := raytracer.Render(context.Background())
	if err != nil {
		fmt.Printf("Render failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Shading: %d full phong, %d ambient+diffuse, %d ambient only\n",
		stats.FullPhongPixels, stats.DiffusePixels, stats.AmbientOnlyPixels)

	if err := saveCanvas(img, filename, *format); err != nil {
		fmt.Printf("Error saving render: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// showHelp displays usage information
func showHelp() {
	fmt.Println("Phong Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	scenes, err := scene.ListAllScenes(scene.DefaultScenesDir)
	if err != nil {
		fmt.Printf("  (failed to list scenes: %v)\n", err)
	}
	for _, info := range scenes {
		if info.Description != "" {
			fmt.Printf("  %-12s - %s\n", info.ID, info.Description)
		} else {
			fmt.Printf("  %-12s - %s\n", info.ID, info.FilePath)
		}
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.<format>")
}

// createScene resolves a built-in scene name or a JSON scene reference
func createScene(sceneType string) (*scene.Scene, error) {
	return scene.Resolve(sceneType, scene.DefaultScenesDir)
}

// defaultOutputPath builds the timestamped output filename for a scene
func defaultOutputPath(sceneName, format string, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.%s", timestamp, format))
}

// saveCanvas writes the canvas in the requested format
func saveCanvas(img *canvas.Canvas, filename, format string) error {
	switch format {
	case "png":
		return img.SavePNG(filename)
	case "ppm":
		return img.WriteFile(filename)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
