package start

import (
	"fmt"
	"net/http"
	"os"

	"github.com/DE-labtory/harpocrates/app"
	"github.com/DE-labtory/harpocrates/config"
	"github.com/DE-labtory/harpocrates/core"
	kitlog "github.com/go-kit/kit/log"
	"github.com/urfave/cli"
)

func Cmd() cli.Command {
	return cli.Command{
		Name:  "start",
		Usage: "harpocrates start",
		Action: func(c *cli.Context) error {
			return startHarpocrates()
		},
	}
}

func startHarpocrates() error {
	conf := config.Get()

	kitLogger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	kitLogger = kitlog.With(kitLogger, "ts", kitlog.DefaultTimestampUTC)
	httpLogger := kitlog.With(kitLogger, "component", "http")

	node, err := core.New()
	if err != nil {
		return fmt.Errorf("node instantiate failed with err: %s", err)
	}
	defer node.Close()

	go func() {
		httpLogger.Log("message", "answer node started")
		node.Run()
	}()

	httpLogger.Log("message", fmt.Sprintf("http server started: %s", conf.Api.Address))
	return http.ListenAndServe(conf.Api.Address, app.NewApiHandler(node, httpLogger))
}
