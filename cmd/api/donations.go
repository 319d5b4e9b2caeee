package main

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"teamup/internal/apperr"
	"teamup/internal/domain/donations"
)

type DonationPayload struct {
	DonorName  string `json:"donorName"`
	DonorEmail string `json:"donorEmail"`
	// accepts 25, 25.5 or "25.50"
	DonationAmount json.Number `json:"donationAmount" swaggertype:"number"`
}

type donationResponse struct {
	Success       bool      `json:"success"`
	Message       string    `json:"message"`
	ReceiptNumber string    `json:"receiptNumber"`
	EmailSent     bool      `json:"emailSent"`
	Timestamp     time.Time `json:"timestamp"`
}

// CreateDonation godoc
//
//	@Summary		Make a donation
//	@Description	Validates the donation and emails a receipt to the donor. Nothing is charged or stored.
//	@Tags			donations
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		DonationPayload	true	"Donation"
//	@Success		200		{object}	donationResponse
//	@Failure		400		{object}	error	"Missing or invalid donor details"
//	@Failure		503		{object}	error	"Receipt could not be sent"
//	@Router			/donations [post]
func (app *application) createDonationHandler(w http.ResponseWriter, r *http.Request) {
	var payload DonationPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	req := donations.Request{
		DonorName:  payload.DonorName,
		DonorEmail: payload.DonorEmail,
	}
	if strings.TrimSpace(payload.DonationAmount.String()) != "" {
		amount, err := payload.DonationAmount.Float64()
		if err != nil {
			app.badRequestResponse(w, r, apperr.InvalidArgument("Donation amount must be a positive number"))
			return
		}
		req.Amount = amount
	}

	res, err := app.donations.Process(r.Context(), req)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	app.logger.Infow("donation processed", "receipt", res.Receipt.ReceiptNumber, "amount", res.Receipt.TotalAmount)

	resp := donationResponse{
		Success:       true,
		Message:       res.Message,
		ReceiptNumber: res.Receipt.ReceiptNumber,
		EmailSent:     res.EmailSent,
		Timestamp:     res.Timestamp,
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}
