package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strconv"

	foundry "github.com/TheJoeSmo/Foundry"
	"github.com/TheJoeSmo/Foundry/rom"
	"github.com/TheJoeSmo/Foundry/tileset"
	"github.com/TheJoeSmo/Foundry/worldmap"
	"github.com/urfave/cli/v2"
)

const defaultDB = "foundry.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version, V",
		Usage: "print the version",
	}
}

func newFoundry(c *cli.Context) (*foundry.Foundry, error) {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	m, err := foundry.New(c.String("db"), logger)
	if err != nil {
		return nil, err
	}

	if shapes := c.String("shapes"); shapes != "" {
		f, err := os.Open(shapes)
		if err != nil {
			m.Close()
			return nil, err
		}
		defer f.Close()

		table, err := tileset.LoadTable(f)
		if err != nil {
			m.Close()
			return nil, err
		}
		m.SetShapeTable(table)
	}

	return m, nil
}

func intArg(c *cli.Context, i int) (int, error) {
	n, err := strconv.Atoi(c.Args().Get(i))
	if err != nil {
		return 0, fmt.Errorf("argument %d: %v", i, err)
	}
	return n, nil
}

func main() {
	app := cli.NewApp()

	app.Name = "foundry"
	app.Usage = "Super Mario Bros. 3 cartridge data utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"FOUNDRY_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to level database",
		},
		&cli.StringFlag{
			Name:    "shapes",
			EnvVars: []string{"FOUNDRY_SHAPES"},
			Usage:   "YAML shape table overriding the stock generator lengths",
		},
		&cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "scan",
			Usage:       "Catalogue every level of a cartridge image",
			Description: "",
			ArgsUsage:   "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, err := newFoundry(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer m.Close()

				if err := m.Scan(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "locate",
			Usage:       "Resolve a world-map board position to level addresses",
			Description: "",
			ArgsUsage:   "FILE WORLD SCREEN ROW COLUMN",
			Action: func(c *cli.Context) error {
				if c.NArg() < 5 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				var pos worldmap.Position
				for i, p := range []*int{&pos.World, &pos.Screen, &pos.Row, &pos.Column} {
					n, err := intArg(c, i+1)
					if err != nil {
						return cli.NewExitError(err, 1)
					}
					*p = n
				}

				m, err := newFoundry(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer m.Close()

				res, err := m.Locate(c.Args().First(), pos)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				fmt.Printf("tileset %d, objects at %#x, enemies at %#x\n",
					res.Address.Tileset, res.Address.LayoutAddress, res.Address.EnemyAddress)

				return nil
			},
		},
		{
			Name:        "levels",
			Usage:       "List the catalogued levels of a cartridge image",
			Description: "",
			ArgsUsage:   "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, err := newFoundry(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer m.Close()

				levels, err := m.LevelsForFile(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				for _, l := range levels {
					fmt.Printf("world %d screen %d row %d column %d: tileset %d, objects at %#x, enemies at %#x\n",
						l.World, l.Screen, l.Row, l.Column, l.Tileset, l.LayoutAddress, l.EnemyAddress)
				}

				return nil
			},
		},
		{
			Name:        "map",
			Usage:       "Print the tile grid of a world map",
			Description: "",
			ArgsUsage:   "FILE WORLD",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				world, err := intArg(c, 1)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				r, err := rom.Load(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				b, err := rom.ReadLayout(r, world)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				layout, err := worldmap.DecodeLayout(b)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				for row := 0; row < worldmap.ScreenHeight; row++ {
					for screen := 0; screen < layout.ScreenCount(); screen++ {
						for column := 0; column < worldmap.ScreenWidth; column++ {
							tile, err := layout.TileAt(screen, row, column)
							if err != nil {
								return cli.NewExitError(err, 1)
							}
							fmt.Printf("%02X ", tile)
						}
					}
					fmt.Println()
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
