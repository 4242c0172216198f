// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/postly/address"
	"github.com/bitmark-inc/postly/chain"
	"github.com/bitmark-inc/postly/keypair"
	"github.com/bitmark-inc/postly/ledger"
	"github.com/bitmark-inc/postly/rpc/certificate"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := certificate.Generate("rpc", certificateFilename, privateKeyFilename, addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "gen-program-id", "program":
		test := true
		if len(arguments) > 0 && chain.Postly == arguments[0] {
			test = false
		}
		if err := generateProgramID(os.Stdout, test); nil != err {
			fmt.Printf("generate program id error: %s\n", err)
			exitwithstatus.Exit(1)
		}

	case "start", "run":
		return false // continue processing

	case "dump-account", "account":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)       - display this message\n\n")
		fmt.Printf("  version                    (v)       - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)     - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                         and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]          - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                         and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-program-id [CHAIN]     (program) - create a program key pair and print it\n")
		fmt.Printf("                                         the location goes in the \"program\" setting\n")
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)     - just run the program, same as no arguments\n")
		fmt.Printf("                                         for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)     - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  dump-account ADDRESS       (account) - print the raw account stored at a location\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		if err := printJSON(os.Stdout, options); nil != err {
			exitwithstatus.Message("error: %s", err)
		}

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the ledger is open so these commands can read the account pool
func processDataCommand(log *logger.L, arguments []string, l *ledger.Ledger) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "dump-account", "account":
		if 1 != len(arguments) {
			exitwithstatus.Message("missing account address argument")
		}
		err := dumpAccount(os.Stdout, l, arguments[0])
		if nil != err {
			log.Errorf("dump account: %q error: %s", arguments[0], err)
			exitwithstatus.Message("dump account: %q error: %s", arguments[0], err)
		}

	case "start", "run":
		return false

	default:
		exitwithstatus.Message("error: no such command: %q", command)
	}

	return true
}

// a program id is just a key pair: the location is public, the seed is kept
func generateProgramID(w io.Writer, test bool) error {
	raw, _, err := keypair.MakeRawKeyPair(test)
	if nil != err {
		return err
	}
	return printJSON(w, raw)
}

// raw account content as JSON
func dumpAccount(w io.Writer, l *ledger.Ledger, text string) error {
	loc, err := address.FromBase58(text)
	if nil != err {
		return err
	}

	acc, err := l.GetAccount(loc)
	if nil != err {
		return err
	}

	return printJSON(w, struct {
		Location address.Location `json:"location"`
		*ledger.Account
	}{
		Location: loc,
		Account:  acc,
	})
}

func printJSON(w io.Writer, message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
