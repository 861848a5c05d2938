package book

// Element est un bloc du flux de mise en page, rendu dans l'ordre par PDFEngine.
type Element interface {
	element()
}

// Run est un fragment de texte homogène à l'intérieur d'un paragraphe.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	Link   string // URL cible, vide si le fragment n'est pas cliquable
}

// Paragraph : un ou plusieurs fragments dans un style nommé (voir styles.go).
// Un "\n" dans un fragment est un retour à la ligne simple.
type Paragraph struct {
	Style string
	Runs  []Run
}

// Spacer avance verticalement de Height millimètres.
type Spacer struct {
	Height float64
}

// PageBreak force le prochain élément sur une nouvelle page.
// Une page n'est ouverte que si un élément suit : pas de page blanche finale.
type PageBreak struct{}

// Image est une image JPEG déjà encodée, dimensionnée en millimètres.
type Image struct {
	Name   string
	Data   []byte
	Width  float64
	Height float64
}

// Cell est une case de tableau ; Align vide reprend l'alignement du style.
type Cell struct {
	Text  string
	Style string
	Align string
}

// Table aligne des cases sur une grille ; chaque ligne a len(ColWidths) cases.
type Table struct {
	Rows      [][]Cell
	ColWidths []float64
	Padding   float64 // marge verticale haute et basse de chaque case
}

func (Paragraph) element() {}
func (Spacer) element()    {}
func (PageBreak) element() {}
func (Image) element()     {}
func (Table) element()     {}

// Text concatène le texte des fragments.
func (p Paragraph) Text() string {
	var s string
	for _, r := range p.Runs {
		s += r.Text
	}
	return s
}

func plain(style, text string) Paragraph {
	return Paragraph{Style: style, Runs: []Run{{Text: text}}}
}
