package mercadopago

// Config holds Mercado Pago API credentials.
type Config struct {
	AccessToken string `env:"MP_ACCESS_TOKEN,required"` // AccessToken is the API credential of the selling account.
}
