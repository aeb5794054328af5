package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/thepit/dojorank/internal/grading"
	"github.com/thepit/dojorank/internal/model"
)

// Page geometry in millimetres on A4 (210x297). Category banners break
// to a new page earlier than item rows, leaving headroom for the rows
// that follow the banner.
const (
	pageWidth     = 210.0
	marginLeft    = 15.0
	marginRight   = 15.0
	marginTop     = 20.0
	contentWidth  = pageWidth - marginLeft - marginRight
	rowHeight     = 6.0
	noteLineStep  = 5.5
	categoryBreak = 260.0
	rowBreak      = 270.0
)

// RenderInput is everything the result document needs. Scores and
// Summary are snapshots; Render never mutates them.
type RenderInput struct {
	ParticipantName string
	CurrentRank     string
	TestingForRank  string
	EventName       string
	EventDate       time.Time
	Location        string
	Curriculum      *model.RankTest
	Scores          grading.ScoreMap
	Summary         grading.Summary
	Notes           string
}

// Generator renders rank test result documents.
type Generator struct {
	SchoolName string
}

func NewGenerator(schoolName string) *Generator {
	return &Generator{SchoolName: schoolName}
}

// cursor tracks the running vertical position and inserts page breaks.
// Auto page breaking is disabled on the underlying PDF; every break in
// the document goes through Ensure.
type cursor struct {
	pdf *gofpdf.Fpdf
	y   float64
}

// Ensure starts a new page when the cursor sits past limit, so nothing
// is ever drawn below the bottom margin for its element type.
func (c *cursor) Ensure(limit float64) {
	if c.y > limit {
		c.pdf.AddPage()
		c.y = marginTop
	}
}

// Render produces the paginated result PDF.
func (g *Generator) Render(in RenderInput) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	cur := &cursor{pdf: pdf, y: marginTop}

	g.renderHeader(cur, in)
	g.renderMeta(cur, in)
	if in.Curriculum != nil {
		for _, cat := range in.Curriculum.Categories {
			g.renderCategory(cur, cat, in.Scores)
		}
	}
	g.renderResult(cur, in.Summary)
	if strings.TrimSpace(in.Notes) != "" {
		g.renderNotes(cur, in.Notes)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering result document: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *Generator) renderHeader(c *cursor, in RenderInput) {
	pdf := c.pdf
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, c.y)
	pdf.CellFormat(contentWidth, 8, g.SchoolName, "", 0, "C", false, 0, "")
	c.y += 9

	pdf.SetFont("Helvetica", "", 13)
	pdf.SetXY(marginLeft, c.y)
	pdf.CellFormat(contentWidth, 7, "Rank Test Results", "", 0, "C", false, 0, "")
	c.y += 12
}

func (g *Generator) renderMeta(c *cursor, in RenderInput) {
	pdf := c.pdf
	pdf.SetFont("Helvetica", "", 10)

	meta := []string{
		"Student: " + in.ParticipantName,
		fmt.Sprintf("Rank: %s  ->  %s", in.CurrentRank, in.TestingForRank),
		fmt.Sprintf("Event: %s, %s", in.EventName, in.EventDate.Format("January 2, 2006")),
	}
	if in.Location != "" {
		meta = append(meta, "Location: "+in.Location)
	}
	for _, line := range meta {
		pdf.SetXY(marginLeft, c.y)
		pdf.CellFormat(contentWidth, 5, line, "", 0, "L", false, 0, "")
		c.y += rowHeight
	}
	c.y += 4
}

func (g *Generator) renderCategory(c *cursor, cat model.Category, scores grading.ScoreMap) {
	pdf := c.pdf

	c.Ensure(categoryBreak)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(232, 232, 232)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, c.y)
	pdf.CellFormat(contentWidth, 7, "  "+cat.Name, "", 0, "L", true, 0, "")
	c.y += 9

	for _, item := range cat.Items {
		c.Ensure(rowBreak)
		g.renderItemRow(c, item, scores[item.ID])
		c.y += rowHeight
	}
	c.y += 2
}

func (g *Generator) renderItemRow(c *cursor, item model.Item, score grading.ItemScore) {
	pdf := c.pdf

	r, gg, b := stateColor(score.State)
	pdf.SetFillColor(r, gg, b)
	pdf.Circle(marginLeft+2.5, c.y+2.5, 1.6, "F")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft+7, c.y)
	pdf.CellFormat(0, 5, item.Name, "", 0, "L", false, 0, "")

	if score.Notes != "" {
		nameWidth := pdf.GetStringWidth(item.Name)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(110, 110, 110)
		pdf.SetXY(marginLeft+7+nameWidth+3, c.y)
		pdf.CellFormat(0, 5, "("+score.Notes+")", "", 0, "L", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(r, gg, b)
	pdf.SetXY(pageWidth-marginRight-30, c.y)
	pdf.CellFormat(30, 5, strings.ToUpper(score.State.String()), "", 0, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func (g *Generator) renderResult(c *cursor, sum grading.Summary) {
	pdf := c.pdf

	c.Ensure(rowBreak)
	pdf.SetDrawColor(120, 120, 120)
	pdf.Line(marginLeft, c.y, pageWidth-marginRight, c.y)
	c.y += 5

	c.Ensure(rowBreak)
	r, gg, b := statusColor(sum.FinalStatus)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(r, gg, b)
	pdf.SetXY(marginLeft, c.y)
	pdf.CellFormat(contentWidth, 6, "Overall Result: "+strings.ToUpper(sum.FinalStatus), "", 0, "L", false, 0, "")
	c.y += 7

	c.Ensure(rowBreak)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, c.y)
	score := fmt.Sprintf("Score: %d%% (%d/%d items)", sum.Percent, sum.PassedItems, sum.TotalItems)
	pdf.CellFormat(contentWidth, 5, score, "", 0, "L", false, 0, "")
	c.y += rowHeight
}

// renderNotes flows the restricted-markup notes into wrapped lines and
// writes them word by word. Wrapping and explicit newlines are resolved
// by Flow before any drawing; the vertical limit is then checked once
// per emitted line.
func (g *Generator) renderNotes(c *cursor, notes string) {
	pdf := c.pdf

	c.y += 2
	c.Ensure(rowBreak)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(marginLeft, c.y)
	pdf.CellFormat(contentWidth, 6, "Notes", "", 0, "L", false, 0, "")
	c.y += 8

	measure := func(text string, bold bool) float64 {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		return pdf.GetStringWidth(text)
	}

	for _, line := range Flow(ParseMarkup(notes), contentWidth, measure) {
		c.Ensure(rowBreak)
		for _, word := range line.Words {
			style := ""
			if word.Bold {
				style = "B"
			}
			pdf.SetFont("Helvetica", style, 10)
			pdf.Text(marginLeft+word.X, c.y+4, word.Text)
		}
		c.y += noteLineStep
	}
}

func stateColor(s grading.ItemState) (int, int, int) {
	switch s {
	case grading.StatePassed:
		return 46, 125, 50
	case grading.StateFailed:
		return 183, 28, 28
	default:
		return 130, 130, 130
	}
}

func statusColor(status string) (int, int, int) {
	switch status {
	case model.ParticipantPassed:
		return 46, 125, 50
	case model.ParticipantFailed:
		return 183, 28, 28
	default:
		return 80, 80, 80
	}
}

// DocumentName derives the upload file name for a result document:
// "{participant}_{event}_Results" with whitespace collapsed to
// underscores. The display name shown in the member's document list is
// the same string.
func DocumentName(participantName, eventName string) string {
	return strings.Join(strings.Fields(participantName+" "+eventName+" Results"), "_")
}
