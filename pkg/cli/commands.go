package cli

import (
	"fmt"

	"github.com/devicelab-dev/uiauto/pkg/config"
	"github.com/devicelab-dev/uiauto/pkg/selector"
	"github.com/devicelab-dev/uiauto/pkg/uiobject"
	"github.com/urfave/cli/v2"
)

// rootObject wires the RPC client and builds the element handle addressed by
// the global selector flags.
func rootObject(c *cli.Context) (*uiobject.Object, *config.Config, error) {
	criteria := criteriaFromFlags(c)
	if len(criteria) == 0 {
		return nil, nil, fmt.Errorf("no selector flags given, set at least one of --text, --res, --clazz, --desc or --pkg")
	}

	client, cfg, err := setup(c)
	if err != nil {
		return nil, nil, err
	}
	return uiobject.NewDevice(client).Object(criteria), cfg, nil
}

var existsCommand = &cli.Command{
	Name:      "exists",
	Usage:     "Check whether an element matching the selector is on screen",
	ArgsUsage: " ",
	Description: `Prints "true" or "false". Exits non-zero when the element is absent so
the command composes in shell conditionals:

  uiauto --text OK exists && uiauto --text OK click`,
	Action: func(c *cli.Context) error {
		obj, _, err := rootObject(c)
		if err != nil {
			return err
		}
		found, err := obj.Exists()
		if err != nil {
			return err
		}
		fmt.Println(found)
		if !found {
			return cli.Exit("", 1)
		}
		return nil
	},
}

var textCommand = &cli.Command{
	Name:      "text",
	Usage:     "Print the text of the matched element",
	ArgsUsage: " ",
	Action: func(c *cli.Context) error {
		obj, _, err := rootObject(c)
		if err != nil {
			return err
		}
		text, err := obj.Text()
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	},
}

var infoCommand = &cli.Command{
	Name:      "info",
	Usage:     "Dump the full attribute map of the matched element",
	ArgsUsage: " ",
	Action: func(c *cli.Context) error {
		obj, _, err := rootObject(c)
		if err != nil {
			return err
		}
		info, err := obj.Info()
		if err != nil {
			return err
		}
		for _, line := range formatInfo(info) {
			fmt.Println(line)
		}
		return nil
	},
}

var clickCommand = &cli.Command{
	Name:      "click",
	Usage:     "Click the matched element",
	ArgsUsage: " ",
	Description: `Without flags, clicks the element center. With --x and --y, clicks the
given offset inside the element. With --duration, long-presses.

  uiauto --text OK click
  uiauto --res id/seekbar click --x 40 --y 5
  uiauto --text OK click --duration 2s`,
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "x", Usage: "Horizontal offset inside the element"},
		&cli.IntFlag{Name: "y", Usage: "Vertical offset inside the element"},
		&cli.DurationFlag{Name: "duration", Usage: "Press duration for a long click"},
	},
	Action: func(c *cli.Context) error {
		obj, _, err := rootObject(c)
		if err != nil {
			return err
		}
		click := obj.Click()
		if c.IsSet("x") {
			click = click.X(c.Int("x"))
		}
		if c.IsSet("y") {
			click = click.Y(c.Int("y"))
		}
		if c.IsSet("duration") {
			click = click.Duration(c.Duration("duration"))
		}
		ok, err := click.Do()
		if err != nil {
			return err
		}
		if !ok {
			return cli.Exit("click failed", 1)
		}
		return nil
	},
}

var waitCommand = &cli.Command{
	Name:      "wait",
	Usage:     "Wait for the matched element to appear or disappear",
	ArgsUsage: " ",
	Description: `Blocks until the element appears, or with --gone until it disappears.
Exits non-zero on timeout.

  uiauto --text OK wait --timeout 5s
  uiauto --text Loading wait --gone --timeout 30s`,
	Flags: []cli.Flag{
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "How long to wait before giving up",
			Value: uiobject.DefaultWaitTimeout,
		},
		&cli.BoolFlag{Name: "gone", Usage: "Wait for the element to disappear instead"},
	},
	Action: func(c *cli.Context) error {
		obj, cfg, err := rootObject(c)
		if err != nil {
			return err
		}
		wait := obj.Wait()
		timeout := c.Duration("timeout")
		if !c.IsSet("timeout") && cfg.WaitTimeout() > 0 {
			timeout = cfg.WaitTimeout()
		}

		var ok bool
		if c.Bool("gone") {
			ok, err = wait.Gone(timeout)
		} else {
			ok, err = wait.Exists(timeout)
		}
		if err != nil {
			return err
		}
		if !ok {
			return cli.Exit("condition not met within timeout", 1)
		}
		return nil
	},
}

var scrollCommand = &cli.Command{
	Name:      "scroll",
	Usage:     "Scroll inside the matched element",
	ArgsUsage: " ",
	Description: `Scrolls the matched container. --percent scrolls a fixed amount,
--until-text scrolls until a matching element appears, and with neither
the container scrolls to its end.

  uiauto --res id/list scroll --direction DOWN --percent 50
  uiauto --res id/list scroll --direction DOWN --until-text Advanced
  uiauto --res id/list scroll --direction DOWN`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "direction",
			Usage: "Scroll direction (UP, DOWN, LEFT, RIGHT)",
			Value: uiobject.DirectionDown,
		},
		&cli.IntFlag{Name: "percent", Usage: "Distance as a percentage of the visible size"},
		&cli.IntFlag{Name: "speed", Usage: "Scroll speed in pixels per second"},
		&cli.StringFlag{Name: "until-text", Usage: "Scroll until an element with this text appears"},
	},
	Action: func(c *cli.Context) error {
		obj, _, err := rootObject(c)
		if err != nil {
			return err
		}
		to, err := scrollDirection(obj.Scroll(), c.String("direction"))
		if err != nil {
			return err
		}
		if c.IsSet("percent") {
			to = to.Percent(c.Int("percent"))
		}
		if c.IsSet("speed") {
			to = to.Speed(c.Int("speed"))
		}
		if text := c.String("until-text"); text != "" {
			to = to.Until(selector.Criteria{"text": text})
		}
		more, err := to.Do()
		if err != nil {
			return err
		}
		fmt.Println(more)
		return nil
	},
}

func scrollDirection(s *uiobject.Scroll, direction string) (*uiobject.ScrollTo, error) {
	switch direction {
	case uiobject.DirectionDown:
		return s.Down(), nil
	case uiobject.DirectionUp:
		return s.Up(), nil
	case uiobject.DirectionLeft:
		return s.Left(), nil
	case uiobject.DirectionRight:
		return s.Right(), nil
	}
	return nil, fmt.Errorf("unknown direction %q, expected UP, DOWN, LEFT or RIGHT", direction)
}
