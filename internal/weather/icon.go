package weather

// IconUnknown marks a weather code outside every known group.
const IconUnknown = "NOT FOUND"

// iconGroups maps WMO weather-code groups to display glyphs. Order matters:
// the first group containing the code wins.
var iconGroups = []struct {
	codes []int
	glyph string
}{
	{[]int{0}, "☀️"},
	{[]int{1}, "🌤"},
	{[]int{2}, "⛅️"},
	{[]int{3}, "☁️"},
	{[]int{45, 48}, "☁️"},
	{[]int{51, 56, 61, 66, 80}, "🌦"},
	{[]int{53, 55, 63, 65, 57, 67, 81, 82}, "🌧"},
	{[]int{71, 73, 75, 77, 85, 86}, "🌨"},
	{[]int{95}, "🌩"},
	{[]int{96, 99}, "⛈"},
}

// Icon returns the glyph for a WMO weather code, or IconUnknown when no
// group matches. Unknown codes are never an error.
func Icon(code int) string {
	for _, group := range iconGroups {
		for _, c := range group.codes {
			if c == code {
				return group.glyph
			}
		}
	}
	return IconUnknown
}
