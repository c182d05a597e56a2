package config

// BandConfig is one time-of-day rule. Start is inclusive, End exclusive, both
// in HH:MM (End may be 24:00). Rules are evaluated in order, first match wins.
type BandConfig struct {
	Name        string  `yaml:"name" validate:"required"`
	Start       string  `yaml:"start" validate:"required"`
	End         string  `yaml:"end" validate:"required"`
	WaitMinutes float64 `yaml:"waitMinutes" validate:"gte=0"`
}

// CostPolicyConfig is the complete cost-model configuration: an ordered list
// of time-band rules, the wait applied when no rule matches, and the penalty
// charged when consecutive segments use different lines.
type CostPolicyConfig struct {
	Bands                  []BandConfig `yaml:"bands"`
	DefaultWaitMinutes     float64      `yaml:"defaultWaitMinutes" validate:"gte=0"`
	TransferPenaltyMinutes float64      `yaml:"transferPenaltyMinutes" validate:"gte=0"`
}
