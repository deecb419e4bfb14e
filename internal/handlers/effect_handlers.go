package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pixelbend/pixelbend/internal/colors"
	"github.com/pixelbend/pixelbend/internal/dithering"
	"github.com/pixelbend/pixelbend/internal/effects"
	"github.com/pixelbend/pixelbend/internal/logging"
)

// effectSpec is one step in a filter pipeline. Which fields matter
// depends on Type.
type effectSpec struct {
	Type    string     `json:"type"`
	Degrees float64    `json:"degrees,omitempty"`
	Factor  float64    `json:"factor,omitempty"`
	Hues    []float64  `json:"hues,omitempty"`
	Stops   []stopSpec `json:"stops,omitempty"`
}

type stopSpec struct {
	Color     string  `json:"color"`
	Threshold float64 `json:"threshold"`
}

func buildEffect(spec effectSpec) (effects.Effect, error) {
	switch strings.ToLower(spec.Type) {
	case "hue-rotate":
		return effects.HueRotate{Degrees: spec.Degrees}, nil
	case "contrast":
		return effects.Contrast{Factor: spec.Factor}, nil
	case "brighten":
		return effects.Brighten{Factor: spec.Factor}, nil
	case "saturate":
		return effects.Saturate{Factor: spec.Factor}, nil
	case "invert":
		return effects.Invert{}, nil
	case "quantize-hue":
		return effects.QuantizeHue{Hues: spec.Hues}, nil
	case "multiply-hue":
		return effects.MultiplyHue{Factor: spec.Factor}, nil
	case "grayscale":
		return effects.Grayscale(), nil
	case "gradient-map":
		stops := make([]effects.GradientStop, 0, len(spec.Stops))
		for _, s := range spec.Stops {
			color, err := colors.ParseHex(s.Color)
			if err != nil {
				return nil, fmt.Errorf("gradient stop: %w", err)
			}
			stops = append(stops, effects.GradientStop{Color: color, Threshold: s.Threshold})
		}
		return effects.NewGradientMap(stops)
	default:
		return nil, fmt.Errorf("unknown effect %q", spec.Type)
	}
}

// EffectsHandler applies a filter pipeline to an uploaded image and
// returns the result as PNG. The pipeline comes from the "effects"
// multipart field as a JSON array, applied in order.
func EffectsHandler(c *gin.Context) {
	raw := c.PostForm("effects")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing effects field"})
		return
	}

	var specs []effectSpec
	if err := json.Unmarshal([]byte(raw), &specs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("malformed effects: %v", err)})
		return
	}
	if len(specs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "effects pipeline is empty"})
		return
	}

	pipeline := make([]effects.Effect, 0, len(specs))
	for _, spec := range specs {
		effect, err := buildEffect(spec)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		pipeline = append(pipeline, effect)
	}

	grid, err := loadImageGrid(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var result *dithering.Grid = grid
	for _, effect := range pipeline {
		result = effects.ApplyToGrid(result, effect)
	}

	logging.InfoWithComponent(logging.ComponentEffects, "Applied effects",
		"steps", len(pipeline), "width", result.Width(), "height", result.Height())
	respondPNG(c, result)
}
