package bloodtype

// defaultPalette holds the chart colours, one per blood type in display order.
var defaultPalette = [...]string{
	"#FF6384",
	"#36A2EB",
	"#FFCE56",
	"#4BC0C0",
	"#9966FF",
	"#FF9F40",
	"#C9CBCF",
	"#8B0000",
}

// Palette returns the first count chart colours. count is clamped to
// [0, 8].
func Palette(count int) []string {
	count = max(0, min(count, len(defaultPalette)))
	out := make([]string, count)
	copy(out, defaultPalette[:count])
	return out
}

// ColorFor returns the chart colour assigned to bt from colors, which is
// indexed in display order. It returns "" for invalid types or a short
// palette.
func ColorFor(bt BloodType, colors []string) string {
	i := bt.index()
	if i < 0 || i >= len(colors) {
		return ""
	}
	return colors[i]
}
