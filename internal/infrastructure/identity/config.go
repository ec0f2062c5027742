package identity

type Config struct {
	Issuer       string `yaml:"issuer"`
	ClientID     string `yaml:"client_id"`
	ClientSecret string
	RedirectURL  string `yaml:"redirect_url"`
}
