package calculation

import "fmt"

const baseHue = 220

// Fill returns the bar colour for the year at index. Hue steps by 2 degrees per year;
// event years are more saturated and darker so they stand out.
func Fill(index int, isLifeEvent bool) string {
	hue := baseHue + index*2
	if isLifeEvent {
		return fmt.Sprintf("hsl(%d 90%% 45%%)", hue)
	}
	return fmt.Sprintf("hsl(%d 70%% 50%%)", hue)
}
