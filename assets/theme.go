package assets

// Emoji constants used as cell and entity glyphs.
const (
	GlyphPlayer = "🧑"
	GlyphRobot  = "🤖"
	GlyphPinged = "📡"
	GlyphCharge = "🔋"
	GlyphKey    = "🔑"
	GlyphExit   = "🚪"
	GlyphChasm  = "⬛"
)

// DifficultyBlurbs are shown under each entry of the difficulty menu.
var DifficultyBlurbs = map[string]string{
	"easy":   "Few clefts, few robots, plenty of charges.",
	"normal": "The station as it was meant to be crossed.",
	"hard":   "Broken ground and a crowd of hunters.",
}
