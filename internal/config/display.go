package config

// DisplayConfig holds settings for drawing the board.
type DisplayConfig struct {
	// Unicode draws pieces with unicode glyphs instead of letters
	Unicode bool

	// Coordinates labels rows and columns around the grid
	Coordinates bool

	// ShowHints lists the legal moves after each board
	ShowHints bool

	// JSON replaces the text board with a JSON snapshot
	JSON bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Coordinates: true,
	}
}
