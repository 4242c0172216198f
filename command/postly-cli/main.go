// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/postly/chain"
	"github.com/bitmark-inc/postly/command/postly-cli/configuration"
)

const (
	defaultNetwork  = chain.Local
	defaultLamports = 1000000000

	logFile  = "postly-cli.log"
	logCount = 3
	logSize  = 256 * 1024
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	save    bool
	network string
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "postly-cli"
	app.Usage = "append and list posts on a postly ledger"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: defaultNetwork,
			Usage: " connect to postly `NETWORK` [postly|testing|local]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate key pair, will not store in config file",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "setup",
			Usage:     "Initialise postly-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*postlyd host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "program, P",
					Value: "",
					Usage: "*program location `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " using existing `SEED`",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " using existing `SEED`",
				},
			},
			Action: runAdd,
		},
		{
			Name:      "airdrop",
			Usage:     "request test funds for an identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "lamports, l",
					Value: defaultLamports,
					Usage: " amount to request `LAMPORTS`",
				},
			},
			Action: runAirdrop,
		},
		{
			Name:      "post",
			Usage:     "append a post for the identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "content, c",
					Value: "",
					Usage: "*text of the post `STRING`",
				},
			},
			Action: runPost,
		},
		{
			Name:      "view",
			Usage:     "list every post of an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or account `OWNER` default is global identity",
				},
			},
			Action: runView,
		},
		{
			Name:      "balance",
			Usage:     "display the lamports of an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or account `OWNER` default is global identity",
				},
			},
			Action: runBalance,
		},
		{
			Name:   "info",
			Usage:  "display postly-cli status",
			Action: runInfo,
		},
		{
			Name:   "postlyInfo",
			Usage:  "display postlyd status",
			Action: runPostlyInfo,
		},
		{
			Name:  "version",
			Usage: "display postly-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "" == command || "help" == command {
			return nil
		}

		network, err := checkNetwork(c.GlobalString("network"))
		if nil != err {
			return err
		}

		p := os.Getenv("XDG_CONFIG_HOME")
		if "" == p {
			return fmt.Errorf("XDG_CONFIG_HOME environment is not set")
		}
		dir, err := checkFileExists(p)
		if nil != err {
			return err
		}
		if !dir {
			return fmt.Errorf("not a directory: %q", p)
		}
		configDir := path.Join(p, app.Name)
		file := path.Join(configDir, network+"-"+app.Name+".json")

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		if err := os.MkdirAll(configDir, 0750); nil != err {
			return err
		}
		err = logger.Initialise(logger.Configuration{
			Directory: configDir,
			File:      logFile,
			Size:      logSize,
			Count:     logCount,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: "warn",
			},
		})
		if nil != err {
			return err
		}

		m := &metadata{
			file:    file,
			save:    false,
			network: network,
			testnet: chain.Postly != network,
			verbose: verbose,
			e:       e,
			w:       w,
		}

		if "setup" == command || "generate" == command {
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err && "setup" == command {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}
		} else {
			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}

			m.config, err = configuration.Load(file)
			if nil != err {
				return err
			}
		}

		c.App.Metadata["config"] = m
		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		defer logger.Finalise()

		if m.save {
			if m.verbose {
				fmt.Fprintf(m.e, "updating config file: %s\n", m.file)
			}
			return configuration.Save(m.file, m.config)
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("error: %s", err)
	}
}
