package chat

import "strings"

// Radius is how rounded one bubble corner is drawn.
type Radius int

const (
	RadiusSmall  Radius = iota // joins a neighbouring bubble in the same run
	RadiusMedium               // corners facing away from the run edge
	RadiusLarge                // outer corner at the start or end of a run
)

func (r Radius) String() string {
	switch r {
	case RadiusSmall:
		return "small"
	case RadiusMedium:
		return "medium"
	case RadiusLarge:
		return "large"
	default:
		return "unknown"
	}
}

// BubblePosition locates a message within a run of same-sender messages.
type BubblePosition struct {
	IsMine  bool
	IsFirst bool
	IsLast  bool
}

// CornerProfile gives the radius of each corner of a bubble.
type CornerProfile struct {
	TopLeft     Radius
	TopRight    Radius
	BottomRight Radius
	BottomLeft  Radius
}

// cornerTable holds the profile for every BubblePosition.
var cornerTable = buildCornerTable()

func buildCornerTable() map[BubblePosition]CornerProfile {
	table := make(map[BubblePosition]CornerProfile, 8)
	for _, mine := range []bool{false, true} {
		for _, first := range []bool{false, true} {
			for _, last := range []bool{false, true} {
				pos := BubblePosition{IsMine: mine, IsFirst: first, IsLast: last}
				table[pos] = deriveCorners(pos)
			}
		}
	}
	return table
}

// deriveCorners applies the grouping rule. Own bubbles gate the top-left and
// bottom-right corners; incoming bubbles gate the mirrored pair.
func deriveCorners(pos BubblePosition) CornerProfile {
	lead := edgeRadius(pos.IsFirst)
	trail := edgeRadius(pos.IsLast)
	if pos.IsMine {
		return CornerProfile{
			TopLeft:     lead,
			TopRight:    RadiusMedium,
			BottomRight: trail,
			BottomLeft:  RadiusMedium,
		}
	}
	return CornerProfile{
		TopLeft:     RadiusMedium,
		TopRight:    lead,
		BottomRight: RadiusMedium,
		BottomLeft:  trail,
	}
}

func edgeRadius(atEdge bool) Radius {
	if atEdge {
		return RadiusLarge
	}
	return RadiusSmall
}

// ResolveCornerProfile returns the corner profile for a bubble at pos holding
// content. It returns false when content is blank: the caller must not draw
// the bubble at all.
func ResolveCornerProfile(pos BubblePosition, content string) (CornerProfile, bool) {
	if strings.TrimSpace(content) == "" {
		return CornerProfile{}, false
	}
	return cornerTable[pos], true
}
