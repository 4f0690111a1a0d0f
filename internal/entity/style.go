package entity

// OverlayStyle configures the tiled text overlay. Colors are hex RGB strings
// ("#RRGGBB"), BackgroundOpacity is a 0-100 percentage, all sizes are pixels.
type OverlayStyle struct {
	OffsetFromBottom  int    `json:"offset"`
	FontSize          int    `json:"font_size"`
	FontColor         string `json:"font_color"`
	Background        bool   `json:"background"`
	BackgroundColor   string `json:"background_color"`
	BackgroundOpacity int    `json:"background_opacity"`
	BackgroundPadding int    `json:"background_padding"`
}
