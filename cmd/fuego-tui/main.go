package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"fuego-ca/internal/core"
	"fuego-ca/internal/sims/wildfire"
)

func main() {
	w := flag.Int("w", 120, "grid width in cells")
	h := flag.Int("h", 40, "grid height in cells")
	seed := flag.Int64("seed", 42, "seed for the fuel layout")
	tps := flag.Int("tps", 4, "simulated hours per second")
	flag.Parse()

	world := wildfire.New(*w, *h)
	world.Reset(*seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.WithError(err).Fatal("create terminal screen")
	}
	if err := screen.Init(); err != nil {
		log.WithError(err).Fatal("init terminal screen")
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.Clear()

	events := make(chan tcell.Event)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	pacer := core.NewFixedStep(*tps)
	ticker := time.NewTicker(time.Millisecond * 50)
	defer ticker.Stop()

	paused := false
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
					return
				case ev.Rune() == ' ':
					paused = !paused
				case ev.Rune() == 'r':
					world.Reset(*seed)
				}
			case *tcell.EventMouse:
				if ev.Buttons()&tcell.Button1 != 0 {
					x, y := ev.Position()
					world.Ignite(x, y)
				}
			}
		case <-ticker.C:
			if !paused && pacer.ShouldStep() {
				world.Step()
			}
			draw(screen, world)
		}
	}
}

func draw(screen tcell.Screen, world *wildfire.World) {
	screen.Clear()
	size := world.Size()
	grid := world.Grid()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			style, ch := cellGlyph(grid[y*size.W+x])
			screen.SetContent(x, y, ch, nil, style)
		}
	}

	vec, speed := world.Wind()
	status := fmt.Sprintf("hour %d  wind %.0f km/h (%+d,%+d)  burning %d  burned %d  [space pause, r reset, q quit]",
		world.Hour(), speed, vec.DX, vec.DY, world.BurningCount(), world.BurnedCount())
	for i, r := range status {
		screen.SetContent(i, size.H, r, nil, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}
	screen.Show()
}

func cellGlyph(c wildfire.Cell) (tcell.Style, rune) {
	switch c {
	case wildfire.CellFuel:
		return tcell.StyleDefault.Foreground(tcell.NewRGBColor(34, 139, 34)), '#'
	case wildfire.CellBurning:
		return tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 0, 0)), '*'
	case wildfire.CellBurned:
		return tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 165, 0)), '.'
	default:
		return tcell.StyleDefault, ' '
	}
}
