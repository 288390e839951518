// Package documents renders the downloadable views of a profile: the
// experiences CSV and the PDF CV. Renderers only write to an io.Writer.
package documents

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/hardika-spec-610/linkedIn-BE/src/models"
	"github.com/pkg/errors"
)

type blockStyle int

const (
	styleName blockStyle = iota
	styleEmail
	styleSubheader
	styleLink
	styleSection
	styleItemTitle
	styleItemDate
	styleBody
)

// cvBlock is one line or paragraph of the CV
type cvBlock struct {
	Style blockStyle
	Text  string
	Link  string
}

const cvDateLayout = "02/01/2006"

// cvLayout lays out the CV content. Optional sections without data are left out.
func cvLayout(user models.User, experiences []models.Experience) []cvBlock {
	blocks := []cvBlock{
		{Style: styleName, Text: strings.TrimSpace(user.Name + " " + user.Surname)},
		{Style: styleEmail, Text: user.Email},
	}

	if user.Phone != "" {
		blocks = append(blocks, cvBlock{Style: styleSubheader, Text: user.Phone})
	}
	if address := addressLine(user.Address); address != "" {
		blocks = append(blocks, cvBlock{Style: styleSubheader, Text: address})
	}
	if user.Website != "" {
		blocks = append(blocks, cvBlock{Style: styleLink, Text: user.Website, Link: user.Website})
	}
	blocks = append(blocks,
		cvBlock{Style: styleSubheader, Text: user.Title},
		cvBlock{Style: styleSubheader, Text: user.Area},
	)

	if len(user.Skills) > 0 {
		blocks = append(blocks,
			cvBlock{Style: styleSection, Text: "Skills"},
			cvBlock{Style: styleBody, Text: strings.Join(user.Skills, ", ")},
		)
	}

	if len(user.Education) > 0 {
		blocks = append(blocks, cvBlock{Style: styleSection, Text: "Education"})
		for _, ed := range user.Education {
			title := ed.School
			if ed.Degree != "" {
				title = ed.Degree + ", " + ed.School
			}
			to := "Present"
			if ed.To != 0 {
				to = fmt.Sprint(ed.To)
			}
			blocks = append(blocks,
				cvBlock{Style: styleItemTitle, Text: title},
				cvBlock{Style: styleItemDate, Text: fmt.Sprintf("%d - %s", ed.From, to)},
			)
		}
	}

	if len(experiences) > 0 {
		blocks = append(blocks, cvBlock{Style: styleSection, Text: "Experiences"})
		for _, exp := range experiences {
			end := "Present"
			if !exp.Ongoing() {
				end = exp.EndDate.Format(cvDateLayout)
			}
			blocks = append(blocks,
				cvBlock{Style: styleItemTitle, Text: exp.Role + " at " + exp.Company},
				cvBlock{Style: styleItemDate, Text: exp.StartDate.Format(cvDateLayout) + " - " + end},
			)
			if exp.Description != "" {
				blocks = append(blocks, cvBlock{Style: styleBody, Text: exp.Description})
			}
		}
	}

	return blocks
}

func addressLine(a *models.Address) string {
	if a == nil {
		return ""
	}
	parts := make([]string, 0, 5)
	for _, p := range []string{a.Street, a.City, a.State, a.Zip, a.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// RenderCV writes the user's CV as a PDF document to w.
func RenderCV(w io.Writer, user models.User, experiences []models.Experience) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(CVFileName(user), true)
	pdf.SetAuthor(user.Name+" "+user.Surname, true)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	width := pageWidth - left - right

	blocks := cvLayout(user, experiences)
	for i, b := range blocks {
		switch b.Style {
		case styleName:
			pdf.SetFont("Courier", "B", 18)
			// the email shares the header line
			pdf.CellFormat(width/2, 10, tr(b.Text), "", 0, "L", false, 0, "")
		case styleEmail:
			pdf.SetFont("Helvetica", "I", 14)
			pdf.CellFormat(width/2, 10, tr(b.Text), "", 1, "R", false, 0, "")
			pdf.Ln(2)
		case styleSubheader:
			pdf.SetFont("Helvetica", "", 15)
			pdf.CellFormat(width, 8, tr(b.Text), "", 1, "L", false, 0, "")
		case styleLink:
			pdf.SetFont("Helvetica", "U", 15)
			pdf.SetTextColor(10, 102, 194)
			pdf.CellFormat(width, 8, tr(b.Text), "", 1, "L", false, 0, b.Link)
			pdf.SetTextColor(0, 0, 0)
		case styleSection:
			pdf.Ln(8)
			pdf.SetFont("Helvetica", "B", 16)
			pdf.CellFormat(width, 9, tr(b.Text), "", 1, "L", false, 0, "")
		case styleItemTitle:
			if i > 0 && blocks[i-1].Style != styleSection {
				pdf.Ln(4)
			}
			pdf.SetFont("Helvetica", "B", 14)
			pdf.MultiCell(width, 7, tr(b.Text), "", "L", false)
		case styleItemDate:
			pdf.SetFont("Helvetica", "I", 14)
			pdf.CellFormat(width, 7, tr(b.Text), "", 1, "L", false, 0, "")
		case styleBody:
			pdf.SetFont("Helvetica", "", 14)
			pdf.MultiCell(width, 7, tr(b.Text), "", "L", false)
		}
	}

	if err := pdf.Output(w); err != nil {
		return errors.Wrap(err, "render CV")
	}
	return nil
}

// CVFileName is <name>_<surname>_CV.pdf with spaces replaced
func CVFileName(user models.User) string {
	name := fmt.Sprintf("%s_%s_CV.pdf", user.Name, user.Surname)
	return strings.NewReplacer(" ", "_", `"`, "", "/", "_").Replace(name)
}
