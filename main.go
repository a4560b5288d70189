package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/chazu/meshkit/pkg/config"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	script := flag.String("script", "", "Lisp script to evaluate (default: stdin)")
	cells := flag.Int("cells", 0, "Marching cubes resolution (default: 64)")
	levels := flag.Int("levels", 0, "Largest upsample level accepted (default: 5)")
	timeout := flag.String("timeout", "", "Evaluation timeout (default: 5s)")
	output := flag.String("out", "", "Output JSON file (default: stdout)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	if err := cfg.Resolve(config.Flags{
		MeshCells:   *cells,
		MaxLevels:   *levels,
		EvalTimeout: *timeout,
		Output:      *output,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	source, err := readScript(*script)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading script: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	result := NewApp(cfg).Evaluate(source)

	if err := writeResult(cfg.Output, result); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing result: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "%d parts, %d errors, %d warnings in %s\n",
		len(result.Meshes), len(result.Errors), len(result.Warnings),
		time.Since(start).Round(time.Millisecond))
	if len(result.Errors) > 0 {
		os.Exit(1)
	}
}

// readScript reads the script at path, or stdin when path is empty or "-".
func readScript(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// writeResult writes result as indented JSON to path, or stdout when path is
// empty.
func writeResult(path string, result EvalResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
