// Command ezxdemo is an interactive terminal paint demo. The mouse draws,
// number keys pick colors, c clears, and q or escape quits.
package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/ezxgo/ezx"
	"github.com/ezxgo/ezx/backend/term"
)

var palette = []ezx.Color{
	ezx.White, ezx.Red, ezx.Green, ezx.Blue,
	ezx.Yellow, ezx.Cyan, ezx.Magenta, ezx.LightGray,
}

func main() {
	if os.Getenv("EZX_DEBUG") != "" {
		f, err := os.Create("ezxdemo.log")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		ezx.SetLogger(slog.New(slog.NewTextHandler(f, nil)))
	}

	eng := term.NewEngine()
	dc, err := ezx.NewContext(160, 48, ezx.WithEngine(eng))
	if err != nil {
		log.Fatalf("Failed to create context: %v", err)
	}
	defer dc.Close()

	dc.SetBkColor(ezx.Black)
	dc.ClearDevice()
	dc.SetTextColor(ezx.LightGray)
	dc.OutText(2, 2, "drag to paint, 1-8 color, c clear, q quit")

	brush := ezx.White
	for {
		msg, err := dc.AwaitMessage(ezx.FilterMouse | ezx.FilterChar)
		if err != nil {
			continue
		}
		switch m := msg.(type) {
		case ezx.MouseMessage:
			if m.Left {
				dc.SetFillColor(brush)
				dc.SolidCircle(m.X, m.Y, 2)
			}
		case ezx.CharMessage:
			switch {
			case m.Char == 'q' || m.Char == 0x1B:
				return
			case m.Char == 'c':
				dc.ClearDevice()
			case m.Char >= '1' && m.Char <= '8':
				brush = palette[m.Char-'1']
			}
		}
	}
}
