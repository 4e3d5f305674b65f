// Package agreement renders a rental agreement as a self-contained HTML
// document suitable for printing or archiving. The layout mirrors the
// signed paper form: company header, client and vehicle particulars,
// rental window and amounts, condition report, terms in English and
// Urdu, and the signature block.
package agreement

import (
	"bytes"
	"fmt"
	"html/template"

	"vehicle-rental-backend/internal/domain"
)

// Company is the lessor identity printed in the header.
type Company struct {
	Name    string
	Phone   string
	Address string
	LogoURL string
}

type templateData struct {
	Company Company
	Rental  *domain.Rental
}

// Renderer renders rental agreements for one company.
type Renderer struct {
	company Company
	tmpl    *template.Template
}

func NewRenderer(company Company) (*Renderer, error) {
	tmpl, err := template.New("agreement").Funcs(template.FuncMap{
		"money": formatMoney,
	}).Parse(agreementHTML)
	if err != nil {
		return nil, fmt.Errorf("failed to parse agreement template: %w", err)
	}
	return &Renderer{company: company, tmpl: tmpl}, nil
}

// Render produces the agreement document for one rental.
func (r *Renderer) Render(rental *domain.Rental) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, templateData{Company: r.company, Rental: rental}); err != nil {
		return nil, fmt.Errorf("failed to render agreement %s: %w", rental.AgreementNumber, err)
	}
	return buf.Bytes(), nil
}

// formatMoney renders whole-rupee amounts with thousands separators.
func formatMoney(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	s := fmt.Sprintf("%d", amount)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return "Rs " + sign + s
}
