package board

// Palette maps ARC colour codes 0..9 to the hex colours used by renderers.
// The core never draws; this is exposed for visualization collaborators.
var Palette = [10]string{
	"#404040",
	"#2e67c0",
	"#af3827",
	"#4f942e",
	"#e0c231",
	"#6d6d6d",
	"#9f3674",
	"#b76424",
	"#6d9fb6",
	"#5f1a23",
}

// ColorOf returns the palette colour for v and whether v is a palette code.
func ColorOf(v int) (string, bool) {
	if v < 0 || v >= len(Palette) {
		return "", false
	}
	return Palette[v], true
}
