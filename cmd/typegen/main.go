// typegen mirrors Go record types into TypeScript declarations. It is a
// build-time tool invoked by hand (or from a go:generate line), never at
// request time:
//
//	typegen --input internal/types/types.go --output ui/types.ts
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/seanharvey/people-starter/internal/typegen"
)

func main() {
	app := &cli.App{
		Name:  "typegen",
		Usage: "Mirror Go record types into TypeScript declarations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Usage:    "Go source file holding the record types",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "TypeScript file to write (stdout when omitted)",
			},
		},
		Action: func(c *cli.Context) error {
			out, err := typegen.Generate(c.String("input"))
			if err != nil {
				return err
			}

			output := c.String("output")
			if output == "" {
				fmt.Print(out)
				return nil
			}
			return os.WriteFile(output, []byte(out), 0o644)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
