package main

import (
	"encoding/json"
	"fmt"
	"image"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ironsheep/palette-tools-mcp/internal/imaging"
	"github.com/ironsheep/palette-tools-mcp/internal/palette"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "palettectl"
	app.Usage = "extract color palettes from images"
	app.Version = "0.1.0"

	app.Commands = []*cli.Command{
		{
			Name:      "extract",
			Usage:     "Extract background/primary/secondary/detail colors",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "width",
					Usage: "analysis width in pixels (default: scale to 250 wide)",
				},
				&cli.IntFlag{
					Name:  "height",
					Usage: "analysis height in pixels (requires width)",
				},
				&cli.BoolFlag{
					Name:  "json",
					Usage: "emit the palette as JSON",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, "extract", 1)
				}

				img, err := loadImage(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				var size *palette.Size
				if c.Int("width") > 0 || c.Int("height") > 0 {
					size = &palette.Size{Width: c.Int("width"), Height: c.Int("height")}
				}

				pal, err := palette.Extract(img, size)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if c.Bool("json") {
					return printJSON(pal)
				}
				fmt.Printf("background  %s\n", pal.Background.Hex())
				fmt.Printf("primary     %s\n", pal.Primary.Hex())
				fmt.Printf("secondary   %s\n", pal.Secondary.Hex())
				fmt.Printf("detail      %s\n", pal.Detail.Hex())
				return nil
			},
		},
		{
			Name:      "dominant",
			Usage:     "List the most frequent colors in an image",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "count",
					Value: 5,
					Usage: "number of colors to list",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, "dominant", 1)
				}

				img, err := loadImage(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				colors, err := palette.Dominant(img, c.Int("count"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				for _, dc := range colors {
					fmt.Printf("%s  %6.2f%%  (%d px)\n", dc.Color.Hex(), dc.Percentage, dc.Count)
				}
				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadImage(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	img, _, err := imaging.Decode(data)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
