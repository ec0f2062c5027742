package notifier

type Config struct {
	URI           string
	ChannelPrefix string `yaml:"channel_prefix"`
	Timeout       int64  `yaml:"timeout_in_ms"`
}
