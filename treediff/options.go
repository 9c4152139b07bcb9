package treediff

// DefaultIdentifierAttrs are the attributes used to identify an element,
// in priority order.
var DefaultIdentifierAttrs = []string{
	"class",
	"id",
	"name",
	"distName",
	"dn",
	"distinguishedName",
	"key",
	"type",
	"refId",
	"version",
}

// DefaultThreshold is the similarity score a candidate must exceed to be
// matched to an unkeyed node.
const DefaultThreshold = 0.4

type Config struct {
	IdentifierAttrs []string
	Threshold       float64
}

type Option func(*Config)

// IdentifierAttrs replaces the identifier attribute priority list.
func IdentifierAttrs(attrs ...string) Option {
	return func(c *Config) {
		c.IdentifierAttrs = append([]string(nil), attrs...)
	}
}

// Threshold sets the similarity threshold.
func Threshold(v float64) Option {
	return func(c *Config) { c.Threshold = v }
}

func NewConfig(opts ...Option) *Config {
	c := &Config{
		IdentifierAttrs: DefaultIdentifierAttrs,
		Threshold:       DefaultThreshold,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}
