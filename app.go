package main

import (
	"log"

	"github.com/chazu/meshkit/pkg/config"
	"github.com/chazu/meshkit/pkg/engine"
	"github.com/chazu/meshkit/pkg/kernel/sdfx"
	"github.com/chazu/meshkit/pkg/scene"
	"github.com/chazu/meshkit/pkg/tessellate"
)

// colorPalette is a default palette used to assign distinct colors to parts.
var colorPalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// App ties the scripting engine to the tessellator.
type App struct {
	engine *engine.Engine
}

// MeshData is the JSON-serializable mesh format written by the CLI.
type MeshData struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	PartName string    `json:"partName"`
	Color    string    `json:"color"`
}

// EvalErrorData is a JSON-serializable eval error.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Part    string `json:"part,omitempty"`
	Message string `json:"message"`
}

// EvalResult is the full result of one evaluation.
type EvalResult struct {
	Meshes   []MeshData      `json:"meshes"`
	Errors   []EvalErrorData `json:"errors"`
	Warnings []EvalErrorData `json:"warnings"`
}

// NewApp creates a new App with an engine and the sdfx kernel. cfg must
// already be resolved.
func NewApp(cfg config.Config) *App {
	return &App{
		engine: engine.NewEngine(sdfx.New(cfg.MeshCells), engine.Options{
			Timeout:   cfg.Timeout(),
			MaxLevels: cfg.MaxLevels,
		}),
	}
}

// Evaluate takes Lisp source and returns mesh data + errors.
func (a *App) Evaluate(source string) EvalResult {
	result := EvalResult{
		Meshes:   []MeshData{},
		Errors:   []EvalErrorData{},
		Warnings: []EvalErrorData{},
	}

	// Step 1: Evaluate the Lisp source into a scene.
	s, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		log.Printf("Evaluate fatal error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}

	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result
	}

	// Step 2: Check every part. Warnings are reported but do not block.
	blocking, advisory := scene.Partition(scene.Validate(s))
	for _, w := range advisory {
		result.Warnings = append(result.Warnings, EvalErrorData{Part: w.Part, Message: w.Message})
	}
	if len(blocking) > 0 {
		for _, e := range blocking {
			result.Errors = append(result.Errors, EvalErrorData{Part: e.Part, Message: e.Message})
		}
		return result
	}

	// Step 3: Tessellate the scene into triangle meshes.
	meshes, err := tessellate.Tessellate(s)
	if err != nil {
		log.Printf("Tessellate error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{
			Message: "tessellation failed: " + err.Error(),
		})
		return result
	}

	// Step 4: Attach colors. Parts without one take the next palette entry.
	for i, m := range meshes {
		color := s.Parts[i].Color
		if color == "" {
			color = colorPalette[i%len(colorPalette)]
		}
		result.Meshes = append(result.Meshes, MeshData{
			Vertices: m.Vertices,
			Normals:  m.Normals,
			Indices:  m.Indices,
			PartName: m.PartName,
			Color:    color,
		})
	}

	return result
}
