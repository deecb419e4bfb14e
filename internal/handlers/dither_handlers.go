package handlers

import (
	"fmt"
	"image"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pixelbend/pixelbend/internal/colors"
	"github.com/pixelbend/pixelbend/internal/config"
	"github.com/pixelbend/pixelbend/internal/database"
	"github.com/pixelbend/pixelbend/internal/dithering"
	"github.com/pixelbend/pixelbend/internal/imageprocessing"
	"github.com/pixelbend/pixelbend/internal/logging"
)

func formInt(c *gin.Context, key string, def int) int {
	if val := c.PostForm(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return def
}

func formFloat(c *gin.Context, key string, def float64) float64 {
	if val := c.PostForm(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return def
}

func formBool(c *gin.Context, key string) bool {
	switch strings.ToLower(c.PostForm(key)) {
	case "1", "t", "true", "y", "yes":
		return true
	}
	return false
}

// colorsField accepts either repeated "colors" fields or one
// comma-separated list.
func colorsField(c *gin.Context) []string {
	raw := c.PostFormArray("colors")
	if len(raw) == 1 && strings.Contains(raw[0], ",") {
		raw = strings.Split(raw[0], ",")
	}
	var hexes []string
	for _, h := range raw {
		if h = strings.TrimSpace(h); h != "" {
			hexes = append(hexes, h)
		}
	}
	return hexes
}

// loadImageGrid reads the input image, enforces the configured pixel
// limit, applies optional max_width/max_height downscaling, and converts
// to a pixel grid. The image comes from the "image" file part, or from
// an "image_url" field when no file is attached.
func loadImageGrid(c *gin.Context) (*dithering.Grid, error) {
	var (
		img    image.Image
		format string
	)
	if file, _, err := c.Request.FormFile("image"); err == nil {
		defer file.Close()
		img, format, err = imageprocessing.Decode(file)
		if err != nil {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}
	} else if url := c.PostForm("image_url"); url != "" {
		img, format, err = imageprocessing.LoadImageFromURL(url, 15*time.Second)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch image: %w", err)
		}
	} else {
		return nil, fmt.Errorf("missing image file: %w", err)
	}
	logging.DebugWithComponent(logging.ComponentAPI, "Decoded upload", "format", format,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())

	maxWidth := formInt(c, "max_width", 0)
	maxHeight := formInt(c, "max_height", 0)
	if maxWidth > 0 && maxHeight > 0 {
		if formBool(c, "crop") {
			img = imageprocessing.ResizeToFill(img, maxWidth, maxHeight)
		} else {
			img = imageprocessing.ResizeToFit(img, maxWidth, maxHeight)
		}
	}

	maxPixels := config.GetInt("DITHER_MAX_PIXELS", 16777216)
	if pixels := img.Bounds().Dx() * img.Bounds().Dy(); pixels > maxPixels {
		return nil, fmt.Errorf("image has %d pixels, limit is %d", pixels, maxPixels)
	}

	grid := imageprocessing.ToGrid(img)
	if formBool(c, "grayscale") {
		grid = imageprocessing.ToGrayscale(grid)
	}
	return grid, nil
}

// respondPNG writes a grid back as a PNG body
func respondPNG(c *gin.Context, grid *dithering.Grid) {
	data, err := imageprocessing.EncodePNG(imageprocessing.ToImage(grid))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode result"})
		return
	}
	c.Data(http.StatusOK, "image/png", data)
}

// DitherHandler runs error diffusion or ordered dithering over an
// uploaded image and returns the result as PNG.
//
// Multipart fields: image (file) or image_url, algorithm
// (diffusion|ordered), kernel, matrix_size, amplitude, palette, colors,
// gradient_base/gradient_shades/gradient_method, preset, max_width,
// max_height, crop, grayscale.
func DitherHandler(c *gin.Context) {
	algorithm := strings.ToLower(c.DefaultPostForm("algorithm", "diffusion"))
	kernelName := c.DefaultPostForm("kernel", config.Get("DITHER_DEFAULT_KERNEL", "floyd-steinberg"))
	matrixSize := formInt(c, "matrix_size", 4)
	amplitude := formFloat(c, "amplitude", config.GetFloat("BAYER_AMPLITUDE", 0))
	paletteName := c.PostForm("palette")

	// A preset supplies defaults; explicit fields still win.
	if presetName := c.PostForm("preset"); presetName != "" {
		if db := database.GetDB(); db != nil {
			preset, err := database.NewPresetService(db).GetPresetByName(presetName)
			if err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("unknown preset %q", presetName)})
				return
			}
			if c.PostForm("algorithm") == "" {
				algorithm = preset.Algorithm
			}
			if c.PostForm("kernel") == "" && preset.Kernel != "" {
				kernelName = preset.Kernel
			}
			if c.PostForm("matrix_size") == "" && preset.MatrixSize > 0 {
				matrixSize = preset.MatrixSize
			}
			if c.PostForm("amplitude") == "" && preset.Amplitude > 0 {
				amplitude = preset.Amplitude
			}
			if paletteName == "" {
				paletteName = preset.Palette
			}
		}
	}

	palette, err := ResolvePalette(paletteName, colorsField(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// A gradient_base color expands into a shade ramp instead of a
	// stored palette.
	if baseHex := c.PostForm("gradient_base"); baseHex != "" {
		base, err := colors.ParseHex(baseHex)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		method := colors.GradientMethod(c.DefaultPostForm("gradient_method", string(colors.GradientLCH)))
		palette, err = colors.BuildGradient(base, formInt(c, "gradient_shades", 8), method)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	grid, err := loadImageGrid(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var result *dithering.Grid
	switch algorithm {
	case "diffusion":
		kernel, ok := dithering.KernelByName(kernelName)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     fmt.Sprintf("unknown kernel %q", kernelName),
				"available": dithering.KernelNames(),
			})
			return
		}
		result, err = dithering.Diffuse(grid, kernel, palette)
	case "ordered":
		result, err = dithering.OrderedDither(grid, matrixSize, palette, amplitude)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown algorithm %q", algorithm)})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logging.InfoWithComponent(logging.ComponentDither, "Dithered image",
		"algorithm", algorithm, "width", result.Width(), "height", result.Height(),
		"palette_size", len(palette))
	respondPNG(c, result)
}
