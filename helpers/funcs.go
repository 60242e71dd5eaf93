package helpers

import "math"

func Sum(numbers []float64) (total float64) {
	for _, x := range numbers {
		total += x
	}
	return total
}

func Mean(numbers []float64) float64 {
	if len(numbers) == 0 {
		return 0
	}
	return Sum(numbers) / float64(len(numbers))
}

// PopulationStdDev divides by n, not n-1.
func PopulationStdDev(numbers []float64, mean float64) float64 {
	if len(numbers) == 0 {
		return 0
	}
	total := 0.0
	for _, number := range numbers {
		total += math.Pow(number-mean, 2)
	}
	variance := total / float64(len(numbers))
	return math.Sqrt(variance)
}

func RoundTo(value float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(value*factor) / factor
}

func StringIntervalToSeconds(interval string) int {
	switch interval {
	case "1m":
		return 60
	case "3m":
		return 3 * 60
	case "5m":
		return 5 * 60
	case "15m":
		return 15 * 60
	case "30m":
		return 30 * 60
	case "1h":
		return 60 * 60
	case "2h":
		return 2 * 60 * 60
	case "4h":
		return 4 * 60 * 60
	case "6h":
		return 6 * 60 * 60
	case "8h":
		return 8 * 60 * 60
	case "12h":
		return 12 * 60 * 60
	case "3d":
		return 3 * 24 * 60 * 60
	case "1w":
		return 7 * 24 * 60 * 60
	case "1M":
		return 30 * 24 * 60 * 60
	default:
		return 24 * 60 * 60
	}
}
