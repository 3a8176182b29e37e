// Package console runs the dashboard as an interactive terminal menu.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/godilite/ride-insights/internal/insight"
	"github.com/godilite/ride-insights/internal/render"
	"github.com/godilite/ride-insights/internal/service"
	"go.uber.org/zap"
)

// Dashboard is the service the console renders.
type Dashboard interface {
	Catalog() []service.CatalogEntry
	Connection() service.ConnectionInfo
	Run(ctx context.Context, id insight.ID) (service.Panel, error)
}

type Console struct {
	dash   Dashboard
	in     *bufio.Scanner
	out    io.Writer
	logger *zap.Logger
}

// New creates a console reading choices from in and writing to out.
func New(dash Dashboard, in io.Reader, out io.Writer, logger *zap.Logger) *Console {
	if dash == nil {
		panic("nil Dashboard provided to console.New")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Console{
		dash:   dash,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger.Named("console"),
	}
}

// Run loops until the user quits, input ends or ctx is done.
func (c *Console) Run(ctx context.Context) error {
	if conn := c.dash.Connection(); !conn.Connected {
		render.Tone(c.out, insight.ToneWarning, conn.Warning)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.menu()
		if !c.in.Scan() {
			fmt.Fprintln(c.out)
			return c.in.Err()
		}

		choice := strings.TrimSpace(c.in.Text())
		switch strings.ToLower(choice) {
		case "":
			continue
		case "q", "quit", "exit":
			color.New(color.FgGreen).Fprintln(c.out, "Goodbye!")
			return nil
		case "0":
			choice = "home"
		}

		id, err := insight.Parse(choice)
		if err != nil {
			render.Tone(c.out, insight.ToneError, "Invalid choice. Please try again.")
			continue
		}

		panel, err := c.dash.Run(ctx, id)
		if err != nil {
			c.logger.Error("insight failed", zap.String("insight", id.Slug()), zap.Error(err))
			render.Tone(c.out, insight.ToneError, err.Error())
			continue
		}
		render.Terminal(c.out, panel)
	}
}

func (c *Console) menu() {
	color.New(color.FgCyan).Fprintln(c.out, "\n=== Ola Ride Insights ===")
	fmt.Fprintf(c.out, "0. %s\n", insight.SectionHome)
	fmt.Fprintf(c.out, "-- %s --\n", insight.SectionInsights)
	for _, e := range c.dash.Catalog() {
		fmt.Fprintln(c.out, e.Label)
	}
	fmt.Fprintln(c.out, "q. Quit")
	fmt.Fprint(c.out, "\nEnter your choice (0-10, q): ")
}
