package mercadopago

import "errors"

// ErrMissingAccessToken is returned by New when no API credential is set.
var ErrMissingAccessToken = errors.New("mercadopago access token is required")
