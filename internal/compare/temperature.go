package compare

import "github.com/jmylchreest/swatch/internal/colour"

// neutralSaturation is the saturation below which a colour has no temperature.
const neutralSaturation = 15

// Temperature holds the share of warm, cool and neutral colours as percentages.
type Temperature struct {
	Warm    float64 `json:"warm"`
	Cool    float64 `json:"cool"`
	Neutral float64 `json:"neutral"`
}

// ColourTemperature classifies a single colour.
type ColourTemperature string

const (
	Warm    ColourTemperature = "warm"
	Cool    ColourTemperature = "cool"
	Neutral ColourTemperature = "neutral"
)

// Classify returns the temperature of a colour. Low saturation takes
// precedence over hue.
func Classify(h colour.HSL) ColourTemperature {
	if h.S < neutralSaturation {
		return Neutral
	}
	if h.H <= 60 || h.H >= 300 {
		return Warm
	}
	return Cool
}

func temperatureOf(hsl []colour.HSL) Temperature {
	var t Temperature
	if len(hsl) == 0 {
		return t
	}
	for _, h := range hsl {
		switch Classify(h) {
		case Warm:
			t.Warm++
		case Cool:
			t.Cool++
		default:
			t.Neutral++
		}
	}
	n := float64(len(hsl))
	t.Warm = 100 * t.Warm / n
	t.Cool = 100 * t.Cool / n
	t.Neutral = 100 * t.Neutral / n
	return t
}
