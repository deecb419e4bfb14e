package colors

// Named sRGB constants, handy for building palettes and gradients.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}

	// primary
	Red   = RGB{255, 0, 0}
	Green = RGB{0, 255, 0}
	Blue  = RGB{0, 0, 255}

	// secondary
	Yellow = RGB{255, 255, 0}
	Purple = RGB{255, 0, 255}
	Cyan   = RGB{0, 255, 255}

	// other
	Pink    = RGB{255, 153, 204}
	Magenta = RGB{255, 38, 204}
	Rose    = RGB{255, 0, 150}

	Gold   = RGB{255, 204, 41}
	Orange = RGB{255, 102, 0}
	Rust   = RGB{179, 51, 0}

	Aquamarine = RGB{0, 255, 153}
)
