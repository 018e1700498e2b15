package httpapi

import (
	"net/http"

	"github.com/menuzap/menuzap/pkg/qrcode"
)

type generateQRRequest struct {
	URL  string `json:"url"`
	Size int    `json:"size,omitempty"`
}

type generateQRResponse struct {
	QRCodeURL string `json:"qrCodeUrl"`
}

// generateQR renders a QR code for the given URL as a PNG data URI, suitable
// for printing table cards that link to the public menu.
func (h *Handlers) generateQR(w http.ResponseWriter, r *http.Request) {
	var in generateQRRequest
	if err := decodeJSON(r, &in); err != nil {
		h.respondError(w, r, err)
		return
	}

	uri, err := qrcode.DataURI(in.URL, in.Size)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, generateQRResponse{QRCodeURL: uri})
}
