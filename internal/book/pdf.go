package book

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

// DocInfo renseigne les métadonnées du PDF.
type DocInfo struct {
	Title   string
	Author  string
	Subject string
	Created time.Time
}

// PDFEngine rend un flux d'éléments sur des pages A4 (marges 0.8in).
type PDFEngine struct {
	styles map[string]Style
	info   DocInfo
}

func NewPDFEngine(styles map[string]Style, info DocInfo) *PDFEngine {
	if styles == nil {
		styles = DefaultStyles()
	}
	return &PDFEngine{styles: styles, info: info}
}

// Render écrit le document dans w et retourne le nombre de pages.
func (e *PDFEngine) Render(w io.Writer, story []Element) (int, error) {
	pdf := fpdf.New("P", "mm", pageFormat, "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetCatalogSort(true)
	if !e.info.Created.IsZero() {
		pdf.SetCreationDate(e.info.Created)
	}
	pdf.SetTitle(e.info.Title, true)
	pdf.SetAuthor(e.info.Author, true)
	pdf.SetSubject(e.info.Subject, true)
	pdf.SetCreator("recetario", true)

	r := &pdfRenderer{pdf: pdf, styles: e.styles}
	pdf.AddPage()

	for i, el := range story {
		if _, ok := el.(PageBreak); ok {
			r.pendingPage = true
			continue
		}
		if r.pendingPage {
			pdf.AddPage()
			r.pendingPage = false
		}

		switch v := el.(type) {
		case Paragraph:
			r.paragraph(v)
		case Spacer:
			r.spacer(v)
		case Image:
			r.image(v)
		case Table:
			r.table(v)
		default:
			return 0, fmt.Errorf("élément %d : type %T non géré", i, el)
		}
		if pdf.Err() {
			break
		}
	}
	if err := pdf.Error(); err != nil {
		return 0, fmt.Errorf("rendu pdf : %w", err)
	}

	pages := pdf.PageNo()
	if err := pdf.Output(w); err != nil {
		return 0, fmt.Errorf("sortie pdf : %w", err)
	}
	return pages, nil
}

type pdfRenderer struct {
	pdf         *fpdf.Fpdf
	styles      map[string]Style
	pendingPage bool
}

func (r *pdfRenderer) style(name string) Style {
	if st, ok := r.styles[name]; ok {
		return st
	}
	return r.styles[StyleNormal]
}

func (r *pdfRenderer) apply(st Style, bold, italic bool) {
	r.pdf.SetFont(baseFont, st.fontStyle(bold, italic), st.Size)
	r.pdf.SetTextColor(st.Color.R, st.Color.G, st.Color.B)
}

func (r *pdfRenderer) bottom() float64 {
	return pageHeight - pageMargin
}

func (r *pdfRenderer) paragraph(p Paragraph) {
	st := r.style(p.Style)
	h := st.lineHeight()

	// texte centré ou aligné à droite : un seul bloc
	if st.Align == "C" || st.Align == "R" {
		var bold, italic bool
		if len(p.Runs) > 0 {
			bold, italic = p.Runs[0].Bold, p.Runs[0].Italic
		}
		r.apply(st, bold, italic)
		r.pdf.MultiCell(0, h, toCP1252(p.Text()), "", st.Align, false)
	} else {
		for _, run := range p.Runs {
			r.apply(st, run.Bold, run.Italic)
			txt := toCP1252(run.Text)
			if run.Link != "" {
				r.pdf.WriteLinkString(h, txt, run.Link)
			} else {
				r.pdf.Write(h, txt)
			}
		}
		r.pdf.Ln(h)
	}
	if st.SpaceAfter > 0 {
		r.pdf.Ln(st.SpaceAfter * mmPerPt)
	}
}

func (r *pdfRenderer) spacer(s Spacer) {
	y := r.pdf.GetY() + s.Height
	if y > r.bottom() {
		y = r.bottom()
	}
	r.pdf.SetY(y)
}

func (r *pdfRenderer) image(img Image) {
	if r.pdf.GetY()+img.Height > r.bottom() {
		r.pdf.AddPage()
	}
	opts := fpdf.ImageOptions{ImageType: "JPG"}
	r.pdf.RegisterImageOptionsReader(img.Name, opts, bytes.NewReader(img.Data))
	if r.pdf.Err() {
		return
	}
	y := r.pdf.GetY()
	r.pdf.ImageOptions(img.Name, pageMargin, y, img.Width, img.Height, false, opts, 0, "")
	r.pdf.SetY(y + img.Height + 12*mmPerPt)
}

func (r *pdfRenderer) table(t Table) {
	for _, row := range t.Rows {
		rowH := 0.0
		for i, c := range row {
			st := r.style(c.Style)
			r.apply(st, false, false)
			lines := len(r.pdf.SplitLines([]byte(toCP1252(c.Text)), t.ColWidths[i]))
			if lines == 0 {
				lines = 1
			}
			if h := float64(lines) * st.lineHeight(); h > rowH {
				rowH = h
			}
		}
		rowH += 2 * t.Padding

		y := r.pdf.GetY()
		if y+rowH > r.bottom() {
			r.pdf.AddPage()
			y = r.pdf.GetY()
		}

		x := pageMargin
		for i, c := range row {
			st := r.style(c.Style)
			r.apply(st, false, false)
			align := c.Align
			if align == "" {
				align = st.Align
			}
			r.pdf.SetXY(x, y+t.Padding)
			r.pdf.MultiCell(t.ColWidths[i], st.lineHeight(), toCP1252(c.Text), "", align, false)
			x += t.ColWidths[i]
		}
		r.pdf.SetXY(pageMargin, y+rowH)
	}
}
