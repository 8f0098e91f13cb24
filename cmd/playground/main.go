// Command playground is a manual testing tool.  It opens a page, waits for a
// selector to become visible and prints the final URL.  Settings come from
// the environment (or a .env file), see config below.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/rusq/waiter"
)

var _ = godotenv.Load()

type config struct {
	URL      string        `envconfig:"PLAYGROUND_URL" default:"https://example.com/"`
	WaitFor  string        `envconfig:"PLAYGROUND_SELECTOR" default:"body"`
	Redirect string        `envconfig:"PLAYGROUND_REDIRECT_URL"`
	Headless bool          `envconfig:"PLAYGROUND_HEADLESS" default:"true"`
	Timeout  time.Duration `envconfig:"PLAYGROUND_TIMEOUT" default:"30s"`
	Debug    bool          `envconfig:"DEBUG"`
}

func main() {
	var cfg config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal(err)
	}
	if cfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg config) error {
	sess, err := waiter.NewSession(ctx, waiter.WithHeadless(cfg.Headless))
	if err != nil {
		return err
	}
	defer sess.Close()

	page, err := sess.Page(ctx)
	if err != nil {
		return err
	}

	w := waiter.New(waiter.WithTimeout(cfg.Timeout))

	el := page.Element(cfg.WaitFor)
	if err := w.GetAndWaitForVisible(ctx, page, el, cfg.URL); err != nil {
		return err
	}
	if cfg.Redirect != "" {
		if err := w.WaitForURLStartsWith(ctx, page, cfg.Redirect); err != nil {
			return err
		}
	}

	current, err := page.CurrentURL()
	if err != nil {
		return err
	}
	fmt.Println(current)
	return nil
}
