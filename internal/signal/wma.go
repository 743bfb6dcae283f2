package signal

// WMA is a linearly weighted moving average over a fixed period: the most
// recent sample carries weight n, the oldest weight 1.
type WMA struct {
	Period int
}

// Back computes the weighted average of the last Period samples of values.
// It returns 0 when fewer samples than Period are available.
func (w WMA) Back(values []float64) float64 {
	n := w.Period
	if n <= 0 || len(values) < n {
		return 0
	}
	tail := values[len(values)-n:]

	var sum float64
	for i, v := range tail {
		sum += float64(i+1) * v
	}
	return sum / float64(n*(n+1)/2)
}
