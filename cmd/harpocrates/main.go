package main

import (
	"log"
	"os"
	"time"

	initCmd "github.com/DE-labtory/harpocrates/cmd/harpocrates/init"
	startCmd "github.com/DE-labtory/harpocrates/cmd/harpocrates/start"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "harpocrates"
	app.Version = "0.0.1"
	app.Compiled = time.Now()
	app.Usage = "one-shot confidential answer store backed by threshold encryption"
	app.UsageText = "harpocrates [options] command [command options] [arguments...]"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "debug, d",
			Usage: "set debug mode",
		},
	}

	app.Commands = []cli.Command{}
	app.Commands = append(app.Commands, initCmd.Cmd())
	app.Commands = append(app.Commands, startCmd.Cmd())

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
