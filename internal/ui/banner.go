package ui

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
)

const bannerText = `
██╗      █████╗ ███╗   ██╗ ██████╗     ███████╗ █████╗ ██╗      █████╗ ██████╗ ██╗   ██╗
██║     ██╔══██╗████╗  ██║██╔════╝     ██╔════╝██╔══██╗██║     ██╔══██╗██╔══██╗╚██╗ ██╔╝
██║     ███████║██╔██╗ ██║██║  ███╗    ███████╗███████║██║     ███████║██████╔╝ ╚████╔╝
██║     ██╔══██║██║╚██╗██║██║   ██║    ╚════██║██╔══██║██║     ██╔══██║██╔══██╗  ╚██╔╝
███████╗██║  ██║██║ ╚████║╚██████╔╝    ███████║██║  ██║███████╗██║  ██║██║  ██║   ██║
╚══════╝╚═╝  ╚═╝╚═╝  ╚═══╝ ╚═════╝     ╚══════╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝
`

// ColorizeText applies a random gradient to the input text
func ColorizeText(text string) string {
	source := rand.NewSource(time.Now().UnixNano())
	random := rand.New(source)

	startColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))
	firstPoint := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))

	chars := strings.Split(text, "")
	half := float32(len(chars) / 2)

	var coloredText strings.Builder
	for i, ch := range chars {
		coloredText.WriteString(startColor.Fade(0, half, float32(i%int(half)), firstPoint).Sprint(ch))
	}

	return coloredText.String()
}

// PrintBanner displays the application banner
func PrintBanner(w io.Writer, silence bool) {
	if !silence {
		fmt.Fprintln(w, ColorizeText(bannerText))
	}
}

// ColorizeSalary applies color formatting to a monthly salary in rubles
func ColorizeSalary(salary int, groupDigits bool) string {
	if salary == 0 {
		return pterm.Red("0")
	}

	formatted := FormatSalary(salary, groupDigits)

	switch {
	case salary >= 300000:
		return pterm.Green(formatted)
	case salary >= 200000:
		return pterm.LightGreen(formatted)
	case salary >= 100000:
		return pterm.Yellow(formatted)
	default:
		return pterm.Red(formatted)
	}
}

// FormatSalary renders a salary, optionally with thousands separators
func FormatSalary(salary int, groupDigits bool) string {
	if groupDigits {
		return humanize.Comma(int64(salary))
	}
	return fmt.Sprintf("%d", salary)
}
