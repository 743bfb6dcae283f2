package signal

// Action is a trading position recommendation.
type Action int

const (
	// Out holds no position.
	Out Action = iota
	// Long holds a long position.
	Long
)

func (a Action) String() string {
	switch a {
	case Long:
		return "long"
	default:
		return "out"
	}
}

// MovingAverageCross is the basic dual moving-average strategy: go long
// while the short weighted average sits above the long one, stay out
// otherwise.
type MovingAverageCross struct {
	ShortPeriod int
	LongPeriod  int
}

// NewMovingAverageCross creates the strategy with the conventional 50/100
// periods when the arguments are non-positive.
func NewMovingAverageCross(shortPeriod, longPeriod int) MovingAverageCross {
	if shortPeriod <= 0 {
		shortPeriod = 50
	}
	if longPeriod <= 0 {
		longPeriod = 100
	}
	return MovingAverageCross{ShortPeriod: shortPeriod, LongPeriod: longPeriod}
}

// Compute evaluates the strategy on a price history, oldest first.
// Insufficient history yields Out.
func (s MovingAverageCross) Compute(prices []float64) Action {
	need := s.ShortPeriod
	if s.LongPeriod > need {
		need = s.LongPeriod
	}
	if len(prices) < need {
		return Out
	}

	shortMA := WMA{Period: s.ShortPeriod}.Back(prices)
	longMA := WMA{Period: s.LongPeriod}.Back(prices)

	if shortMA > longMA {
		return Long
	}
	return Out
}
