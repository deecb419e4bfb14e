package logging

// Component constants for structured logging
const (
	ComponentStartup  = "startup"
	ComponentShutdown = "shutdown"
	ComponentDatabase = "database"
	ComponentAuth     = "auth"
	ComponentDither   = "dither"
	ComponentEffects  = "effects"
	ComponentCorrupt  = "corrupt"
	ComponentPalettes = "palettes"
	ComponentPresets  = "presets"
	ComponentAPI      = "api"
)
