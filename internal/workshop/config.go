package workshop

// Config controls the inputs of the demo scenarios. Limit caps how many
// results the lazy scenario pulls; zero means no cap.
type Config struct {
	Value   int        `yaml:"value" mapstructure:"value"`
	Numbers []int      `yaml:"numbers" mapstructure:"numbers" validate:"required,min=1"`
	Limit   int        `yaml:"limit" mapstructure:"limit" validate:"gte=0"`
	Locale  string     `yaml:"locale" mapstructure:"locale" validate:"required,bcp47_language_tag"`
	Greet   string     `yaml:"greet" mapstructure:"greet" validate:"required"`
	User    UserConfig `yaml:"user" mapstructure:"user"`
}

// UserConfig describes the starting user of the user scenario.
type UserConfig struct {
	Name     string `yaml:"name" mapstructure:"name" validate:"required"`
	Rename   string `yaml:"rename" mapstructure:"rename"`
	Location string `yaml:"location" mapstructure:"location"`
	Age      int    `yaml:"age" mapstructure:"age" validate:"gte=0"`
}

// DefaultConfig returns the workshop's stock inputs.
func DefaultConfig() Config {
	return Config{
		Value:   3,
		Numbers: []int{0, 1, 2, 3, 4},
		Locale:  "en",
		Greet:   "Hello",
		User: UserConfig{
			Name:     "John Doe",
			Rename:   "Jane Doe",
			Location: "NYC",
			Age:      59,
		},
	}
}
