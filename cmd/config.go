package cmd

// Config carries every setting the application reads from the environment.
type Config struct {
	HTTPPort    string
	Environment string
	DataDir     string

	RazorpayAPIURL        string
	RazorpayKeyID         string
	RazorpayKeySecret     string
	RazorpayWebhookSecret string

	ShiprocketAPIURL        string
	ShiprocketEmail         string
	ShiprocketPassword      string
	ShiprocketPickupPincode string

	GoogleSheetsURL string
}
