package config

// DisplayConfig holds settings for the terminal board.
type DisplayConfig struct {
	// Colour enables ANSI colours.
	Colour bool

	// Unicode draws pieces with chess glyphs instead of letters
	Unicode bool

	// ShowCoordinates prints file letters and rank numbers around the board
	ShowCoordinates bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Colour:          true,
		ShowCoordinates: true,
	}
}
