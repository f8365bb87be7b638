// Command rgdemo opens a graphics window and draws a small scene.
// Click anywhere to move the circle there; press q to quit.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	graphics "github.com/dirkcgrunwald/remi-graphics"
)

func main() {
	var (
		width   = flag.Int("width", 400, "window width in pixels")
		height  = flag.Int("height", 400, "window height in pixels")
		addr    = flag.String("addr", "", "listen address (default: loopback, free port)")
		verbose = flag.Bool("v", false, "log display traffic")
		noOpen  = flag.Bool("no-open", false, "do not open the system browser")
	)
	flag.Parse()

	if *verbose {
		graphics.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	win, err := graphics.NewGraphWin("rgdemo", *width, *height,
		graphics.WithAddress(*addr),
		graphics.WithOpenBrowser(!*noOpen),
	)
	if err != nil {
		log.Fatalf("open window: %v", err)
	}
	defer win.Close()

	if err := run(win); err != nil && !closedError(err) {
		log.Fatalf("rgdemo: %v", err)
	}
}

func run(win *graphics.GraphWin) error {
	if err := win.SetCoords(0, 0, 100, 100); err != nil {
		return err
	}
	if err := win.SetBackground("whitesmoke"); err != nil {
		return err
	}

	c := graphics.NewCircle(graphics.NewPoint(50, 50), 10)
	if err := c.SetFill("steelblue"); err != nil {
		return err
	}
	if err := c.Draw(win); err != nil {
		return err
	}

	label := graphics.NewText(graphics.NewPoint(50, 92), "click to move the circle, q to quit")
	if err := label.Draw(win); err != nil {
		return err
	}

	for {
		if key, err := win.CheckKey(); err != nil {
			return err
		} else if key == "q" {
			return nil
		}

		p, err := win.GetMouse()
		if err != nil {
			return err
		}
		center := c.Center()
		if err := c.Move(p.X()-center.X(), p.Y()-center.Y()); err != nil {
			return err
		}
		fmt.Printf("circle moved to (%.1f, %.1f)\n", p.X(), p.Y())
	}
}

func closedError(err error) bool {
	return errors.Is(err, graphics.ErrWindowClosed) || errors.Is(err, graphics.ErrDeadSession)
}
