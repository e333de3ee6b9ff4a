package analytics

type DifficultyTier string

const (
	TierLight    DifficultyTier = "Light"
	TierModerate DifficultyTier = "Moderate"
	TierHard     DifficultyTier = "Hard"
)

// Difficulty is a tier with its display color.
type Difficulty struct {
	Tier  DifficultyTier `json:"tier"`
	Color string         `json:"color"`
}

// Upper bounds are inclusive. The load estimator keeps its own table.
var difficultyBands = []struct {
	maxDays    int
	difficulty Difficulty
}{
	{15, Difficulty{Tier: TierLight, Color: ColorGreen}},
	{24, Difficulty{Tier: TierModerate, Color: ColorYellow}},
}

var hardDifficulty = Difficulty{Tier: TierHard, Color: ColorRed}

// ClassifyDifficulty maps estimated days to a tier: up to 15 is Light,
// 16 to 24 is Moderate and 25 or more is Hard.
func ClassifyDifficulty(estimatedDays int) Difficulty {
	for _, band := range difficultyBands {
		if estimatedDays <= band.maxDays {
			return band.difficulty
		}
	}
	return hardDifficulty
}
