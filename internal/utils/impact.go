package utils

import (
	"math"
	"strconv"
	"strings"
)

// Fixed-divisor estimate constants. No entity links a sponsor's money to a
// specific project, so corporate dashboards show approximations derived from
// total funding received, clearly labeled as estimates.
const (
	co2OffsetDivisor      = 500
	treesPlantedDivisor   = 10
	waterSavedMultiplier  = 4.2
	impactScoreMultiplier = 35
)

func EstimateCO2Offset(fundingReceived int) int {
	return int(math.Round(float64(fundingReceived) / co2OffsetDivisor))
}

func EstimateTreesPlanted(fundingReceived int) int {
	return fundingReceived / treesPlantedDivisor
}

func EstimateWaterSaved(fundingReceived int) int {
	return int(math.Floor(float64(fundingReceived) * waterSavedMultiplier))
}

func ImpactScore(hours int) int {
	return hours * impactScoreMultiplier
}

// FundingPercent guards against zero goals so progress bars never divide by
// zero. Received amounts above the goal yield percentages above 100.
func FundingPercent(received, goal int) int {
	if goal < 1 {
		goal = 1
	}

	return int(math.Round(float64(received) / float64(goal) * 100))
}

// ParseImpactValue extracts the leading number from free-text impact values
// such as "5,000 trees" or "2.1M liters". Returns false when the text does
// not start with a number.
func ParseImpactValue(value string) (int, bool) {
	trimmed := strings.TrimSpace(value)

	end := 0
	for end < len(trimmed) {
		c := trimmed[end]
		if (c >= '0' && c <= '9') || c == ',' {
			end++
			continue
		}
		break
	}

	digits := strings.ReplaceAll(trimmed[:end], ",", "")

	if digits == "" {
		return 0, false
	}

	n, err := strconv.Atoi(digits)

	if err != nil {
		return 0, false
	}

	return n, true
}

// FormatCount renders an integer with thousands separators, e.g. 15234
// becomes "15,234".
func FormatCount(n int) string {
	s := strconv.Itoa(n)

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	if negative {
		return "-" + b.String()
	}

	return b.String()
}

// FormatInvestment renders a funding total in millions, e.g. 1500000
// becomes "$1.5M".
func FormatInvestment(funding int) string {
	return "$" + strconv.FormatFloat(float64(funding)/1000000, 'f', 1, 64) + "M"
}
