package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/llehouerou/curtains/internal/app"
	"github.com/llehouerou/curtains/internal/config"
	"github.com/llehouerou/curtains/internal/document"
	"github.com/llehouerou/curtains/internal/errmsg"
	"github.com/llehouerou/curtains/internal/ratio"
	"github.com/llehouerou/curtains/internal/state"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	var resetRatio, debug bool

	flagSet := pflag.NewFlagSet("curtains", pflag.ContinueOnError)
	flagSet.StringVarP(&configPath, "config", "c", "", "extra config file loaded after the default locations")
	flagSet.BoolVar(&resetRatio, "reset-ratio", false, "forget the saved curtain height and exit")
	flagSet.BoolVar(&debug, "debug", false, "write debug logs to debug.log")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return errmsg.Wrap(errmsg.OpConfigLoad, "", err)
	}

	if debug || cfg.Debug || os.Getenv("CURTAINS_DEBUG") != "" {
		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			return fmt.Errorf("failed to log to file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	stateMgr, err := state.Open()
	if err != nil {
		return errmsg.Wrap(errmsg.OpStateOpen, "", err)
	}

	if resetRatio {
		err := stateMgr.DeleteSetting(ratio.Key)
		closeErr := stateMgr.Close()
		if err != nil {
			return errmsg.Wrap(errmsg.OpRatioReset, "", err)
		}
		return closeErr
	}

	args := flagSet.Args()
	if len(args) == 0 {
		stateMgr.Close()
		printHelp(flagSet)
		return errors.New("no documents given")
	}

	docs := make([]*document.Document, 0, len(args))
	for _, path := range args {
		doc, err := document.Load(path)
		if err != nil {
			stateMgr.Close()
			return errmsg.Wrap(errmsg.OpDocumentLoad, path, err)
		}
		docs = append(docs, doc)
	}

	m := app.New(app.Options{
		Config:    cfg,
		State:     stateMgr,
		Documents: docs,
	})

	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	final, err := program.Run()
	if fm, ok := final.(app.Model); ok {
		fm.Shutdown()
	}
	return err
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `curtains: a terminal pager with adjustable reading curtains.

Press c to lower curtains over the top and bottom of the page, drag their
grips with the mouse (or use + and -) to size the reading band.

Usage:
  curtains [flags] FILE...

Flags:
`)
	flagSet.PrintDefaults()
}
