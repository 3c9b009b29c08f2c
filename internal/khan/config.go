package khan

const (
	// DefaultEndpoint is the public GraphQL route that serves course trees
	// and individual content pages.
	DefaultEndpoint = "https://www.khanacademy.org/api/internal/graphql/ContentForPath"

	defaultPCV  = "892e3563cdaf14e26db1092266abcc8f9fd3419b"
	defaultHash = "45296627"
)

// Config holds the content API client settings.
type Config struct {
	Endpoint       string
	PCV            string
	Hash           string
	Lang           string
	App            string
	TimeoutMs      int
	RequestDelayMs int
}

// DefaultConfig returns a Config with the values the public site uses.
func DefaultConfig() Config {
	return Config{
		Endpoint:       DefaultEndpoint,
		PCV:            defaultPCV,
		Hash:           defaultHash,
		Lang:           "en",
		App:            "khanacademy",
		TimeoutMs:      15000,
		RequestDelayMs: 200,
	}
}
