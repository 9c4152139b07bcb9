package pathdiff

type Config struct {
	// StrictTypes reports entries whose values print the same but whose
	// types differ, such as 1 and "1", as modified.
	StrictTypes bool
}

type Option func(*Config)

func StrictTypes(v bool) Option {
	return func(c *Config) { c.StrictTypes = v }
}

func NewConfig(opts ...Option) *Config {
	c := &Config{}
	for _, o := range opts {
		o(c)
	}
	return c
}
