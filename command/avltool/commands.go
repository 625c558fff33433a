// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
)

// setup command handler
//
// commands that do not need the configuration file or logging
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "start", "run", "r":
		return false // continue processing

	case "demo", "d", "watch", "w":
		return false // defer processing until logging is started

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
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE] [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  demo                       (d)      - show each kind of rotation step by step\n")
		fmt.Printf("\n")

		fmt.Printf("  run [KEY...]               (r)      - insert, delete and search the configured keys\n")
		fmt.Printf("                                        KEYs are inserted after the configured ones\n")
		fmt.Printf("                                        same as no arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  watch [KEY...]             (w)      - as run, then repeat each time the\n")
		fmt.Printf("                                        configuration file changes\n")
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
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		json.Indent(&out, b, "", "  ")
		out.WriteTo(os.Stdout)
		os.Stdout.WriteString("\n")

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// tree command handler
//
// returns false if the command failed
func processDataCommand(w io.Writer, log *logger.L, arguments []string, configurationFile string, options *Configuration) bool {

	command := "run"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "demo", "d":
		if err := runDemo(w); nil != err {
			log.Errorf("demo error: %s", err)
			fmt.Fprintf(os.Stderr, "demo error: %s\n", err)
			return false
		}

	case "start", "run", "r":
		keys, err := parseKeys(arguments)
		if nil != err {
			fmt.Fprintf(os.Stderr, "error: %s\n", err)
			return false
		}
		if err := runScript(w, log, options, keys); nil != err {
			log.Errorf("run error: %s", err)
			fmt.Fprintf(os.Stderr, "run error: %s\n", err)
			return false
		}

	case "watch", "w":
		if "" == configurationFile {
			fmt.Fprintf(os.Stderr, "error: watch requires a configuration file\n")
			return false
		}
		keys, err := parseKeys(arguments)
		if nil != err {
			fmt.Fprintf(os.Stderr, "error: %s\n", err)
			return false
		}

		// stop on interrupt or terminate
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(ch)
		stop := make(chan struct{})
		go func() {
			sig := <-ch
			log.Infof("received signal: %v", sig)
			close(stop)
		}()

		if err := watchConfiguration(w, log, configurationFile, keys, stop); nil != err {
			log.Errorf("watch error: %s", err)
			fmt.Fprintf(os.Stderr, "watch error: %s\n", err)
			return false
		}

	default:
		fmt.Fprintf(os.Stderr, "error: no such command: %q\n", command)
		return false
	}

	return true
}
