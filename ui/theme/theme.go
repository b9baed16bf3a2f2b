package theme

// Styling for the overlay control UI: palette constants, semantic ttk
// styles and a light/dark switch. The overlay surface itself is not
// themed; it paints markers over a transparent key color.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Light palette. The dark counterpart lives in CurrentPalette.
const (
	ColorBg        = "#eef1f5" // control window background
	ColorSurface   = "#ffffff" // form panels
	ColorBorder    = "#c9d1d9"
	ColorPrimary   = "#1f6feb" // action buttons
	ColorDanger    = "#cf222e" // exit, destructive actions
	ColorAccent    = "#1a7f37" // tracking-active accent
	ColorText      = "#24292f"
	ColorTextMuted = "#57606a"
)

// PaletteSnapshot is the resolved color set for the active mode.
type PaletteSnapshot struct {
	AppBg     string
	Surface   string
	Border    string
	Primary   string
	Danger    string
	Accent    string
	Text      string
	TextMuted string
}

// CurrentPalette returns the colors for the current light/dark mode.
func CurrentPalette() PaletteSnapshot {
	if darkMode {
		return PaletteSnapshot{
			AppBg:     "#161b22",
			Surface:   "#21262d",
			Border:    "#30363d",
			Primary:   "#58a6ff",
			Danger:    "#f85149",
			Accent:    "#3fb950",
			Text:      "#e6edf3",
			TextMuted: "#8b949e",
		}
	}
	return PaletteSnapshot{
		AppBg:     ColorBg,
		Surface:   ColorSurface,
		Border:    ColorBorder,
		Primary:   ColorPrimary,
		Danger:    ColorDanger,
		Accent:    ColorAccent,
		Text:      ColorText,
		TextMuted: ColorTextMuted,
	}
}

// Semantic ttk style names, for attaching with Style(...) on a widget.
const (
	StylePrimaryButton   = "primary.TButton"
	StyleDangerButton    = "danger.TButton"
	StyleConfidenceLabel = "confidence.TLabel" // threshold echo readout
	StyleStateLabel      = "state.TLabel"      // tracking state readout
)

// current mode, light by default
var darkMode bool

// InitStyles applies the styles for the current mode. Call once after the
// Tk app is up; SetDark/ToggleDark reapply on their own.
func InitStyles() { applyStyles() }

// SetDark switches the mode and reapplies styles. Returns the new mode.
func SetDark(dark bool) bool {
	darkMode = dark
	applyStyles()
	return darkMode
}

// ToggleDark flips the mode and reapplies styles. Returns the new mode.
func ToggleDark() bool { return SetDark(!darkMode) }

// IsDark reports the current mode.
func IsDark() bool { return darkMode }

func applyStyles() {
	_ = ActivateTheme("azure light") // baseline widget metrics for both modes
	p := CurrentPalette()
	App.Configure(Background(p.AppBg))

	StyleConfigure(StylePrimaryButton,
		Background(p.Primary),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleDangerButton,
		Background(p.Danger),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleConfidenceLabel,
		Foreground(p.Primary),
		Background(p.Surface),
		Padding("2p 1p"),
	)
	StyleConfigure(StyleStateLabel,
		Foreground("white"),
		Background(p.Accent),
		Padding("4p 2p"),
		Borderwidth(1),
		Relief("groove"),
	)
}
