package book

// Unités : millimètres pour la page, points pour les polices.
const (
	mmPerInch = 25.4
	mmPerPt   = mmPerInch / 72

	pageFormat   = "A4"
	pageWidth    = 210.0
	pageHeight   = 297.0
	pageMargin   = 0.8 * mmPerInch
	contentWidth = pageWidth - 2*pageMargin

	thumbWidth  = 3 * mmPerInch
	thumbHeight = 1.8 * mmPerInch

	baseFont = "Helvetica"
)

// Noms de styles utilisés par la mise en page.
const (
	StyleCoverTitle    = "CoverTitle"
	StyleCoverSubtitle = "CoverSubtitle"
	StyleSummary       = "Summary"
	StyleIndexTitle    = "IndexTitle"
	StyleIndexEntry    = "IndexEntry"
	StyleRecipeTitle   = "RecipeTitle"
	StyleDescription   = "Description"
	StyleLink          = "Link"
	StyleSmallHeader   = "SmallHeader"
	StyleMeta          = "Meta"
	StyleNormal        = "Normal"
)

type rgb struct{ R, G, B int }

// Style décrit la typographie d'un paragraphe. Tailles en points.
type Style struct {
	Size       float64
	Leading    float64 // interligne ; 0 => 1.2 × Size
	SpaceAfter float64
	Align      string // "L", "C" ou "R"
	Color      rgb
	Bold       bool
}

func (s Style) lineHeight() float64 {
	if s.Leading > 0 {
		return s.Leading * mmPerPt
	}
	return 1.2 * s.Size * mmPerPt
}

func (s Style) fontStyle(bold, italic bool) string {
	out := ""
	if s.Bold || bold {
		out += "B"
	}
	if italic {
		out += "I"
	}
	return out
}

func hexColor(h string) rgb {
	var c rgb
	if len(h) == 7 && h[0] == '#' {
		c.R = hexByte(h[1:3])
		c.G = hexByte(h[3:5])
		c.B = hexByte(h[5:7])
	}
	return c
}

func hexByte(s string) int {
	v := 0
	for _, ch := range s {
		v <<= 4
		switch {
		case ch >= '0' && ch <= '9':
			v |= int(ch - '0')
		case ch >= 'a' && ch <= 'f':
			v |= int(ch-'a') + 10
		case ch >= 'A' && ch <= 'F':
			v |= int(ch-'A') + 10
		}
	}
	return v
}

// DefaultStyles reprend la feuille de style du livre.
func DefaultStyles() map[string]Style {
	return map[string]Style{
		StyleCoverTitle:    {Size: 36, SpaceAfter: 20, Align: "C", Color: hexColor("#8B572A"), Bold: true},
		StyleCoverSubtitle: {Size: 16, SpaceAfter: 60, Align: "C", Color: hexColor("#4A4A4A")},
		StyleSummary:       {Size: 14, Align: "L", Color: hexColor("#4A4A4A")},
		StyleIndexTitle:    {Size: 20, SpaceAfter: 15, Align: "L", Color: hexColor("#000000"), Bold: true},
		StyleIndexEntry:    {Size: 12, Leading: 16, SpaceAfter: 2, Align: "L", Color: hexColor("#333333")},
		StyleRecipeTitle:   {Size: 18, SpaceAfter: 10, Align: "L", Color: hexColor("#8B572A"), Bold: true},
		StyleDescription:   {Size: 10, Leading: 14, SpaceAfter: 15, Align: "L", Color: hexColor("#333333")},
		StyleLink:          {Size: 9, SpaceAfter: 5, Align: "L", Color: hexColor("#4A90E2")},
		StyleSmallHeader:   {Size: 12, SpaceAfter: 5, Align: "L", Color: hexColor("#4A4A4A"), Bold: true},
		StyleMeta:          {Size: 9, SpaceAfter: 8, Align: "L", Color: hexColor("#4A4A4A")},
		StyleNormal:        {Size: 10, SpaceAfter: 6, Align: "L", Color: hexColor("#000000")},
	}
}
