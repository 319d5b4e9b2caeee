package donations

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"teamup/internal/apperr"
	"teamup/internal/mailer"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail applies the loose donor email check.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Request is a donation as submitted. It is never persisted.
type Request struct {
	DonorName  string
	DonorEmail string
	Amount     float64
}

func (r Request) Validate() error {
	// a zero amount counts as absent
	if strings.TrimSpace(r.DonorName) == "" || strings.TrimSpace(r.DonorEmail) == "" || r.Amount == 0 {
		return apperr.MissingParameter("donorName, donorEmail, and donationAmount are required")
	}
	if !ValidEmail(r.DonorEmail) {
		return apperr.InvalidArgument("Please provide a valid email address")
	}
	if math.IsNaN(r.Amount) || math.IsInf(r.Amount, 0) || r.Amount <= 0 {
		return apperr.InvalidArgument("Donation amount must be a positive number")
	}
	return nil
}

type LineItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Total     float64 `json:"total"`
}

// Receipt is the payload handed to the mailer.
type Receipt struct {
	ReceiptNumber string     `json:"receiptNumber"`
	Date          string     `json:"date"`
	DonorName     string     `json:"donorName"`
	DonorEmail    string     `json:"donorEmail"`
	TotalAmount   string     `json:"totalAmount"`
	Items         []LineItem `json:"items"`
}

type Result struct {
	Receipt   Receipt
	Message   string
	EmailSent bool
	Timestamp time.Time
}

// Processor validates donations and sends their receipts.
type Processor struct {
	mailer  mailer.Client
	numbers *ReceiptNumberGenerator
	now     func() time.Time
}

func NewProcessor(m mailer.Client, numbers *ReceiptNumberGenerator) *Processor {
	return &Processor{
		mailer:  m,
		numbers: numbers,
		now:     time.Now,
	}
}

// Process validates req, builds a receipt and mails it to the donor. A mail
// failure is reported as Transient; the caller decides whether to resubmit.
func (p *Processor) Process(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := p.now()
	number, err := p.numbers.Generate(now)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrInternal, "generating receipt number", err)
	}

	amount := fmt.Sprintf("%.2f", req.Amount)
	receipt := Receipt{
		ReceiptNumber: number,
		Date:          now.Format("02/01/2006"),
		DonorName:     strings.TrimSpace(req.DonorName),
		DonorEmail:    strings.TrimSpace(req.DonorEmail),
		TotalAmount:   amount,
		Items: []LineItem{{
			Name:      "Custom Donation",
			Quantity:  1,
			UnitPrice: req.Amount,
			Total:     req.Amount,
		}},
	}

	if err := ctx.Err(); err != nil {
		return nil, apperr.FromStorage("sending receipt", err)
	}
	if _, err := p.mailer.Send(mailer.DonationReceiptTemplate, receipt.DonorName, receipt.DonorEmail, receipt); err != nil {
		return nil, apperr.Wrap(apperr.ErrTransient, "Failed to send donation receipt", err)
	}

	return &Result{
		Receipt:   receipt,
		Message:   fmt.Sprintf("Thank you for your donation of $%s AUD! A receipt has been sent to %s", amount, receipt.DonorEmail),
		EmailSent: true,
		Timestamp: now.UTC(),
	}, nil
}
