package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"lifegame/src/config"
	"lifegame/src/runner"
	"lifegame/src/universe"
	"lifegame/src/view"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		return err
	}
	opts, err := cfg.UniverseOptions()
	if err != nil {
		return err
	}
	u, err := universe.New(cfg.Height, cfg.Width, opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.Interactive || cfg.Window {
		r := runner.New(cfg.RunnerOptions(), u, nil)
		defer r.Close()
		var v runner.Viewer
		if cfg.Window {
			v, err = view.NewWindow(ctx)
		} else {
			v, err = view.NewViewTerminal(ctx)
		}
		if err != nil {
			return err
		}
		r.RegisterViewer(v)
		return v.Start()
	}

	stateCh := make(chan runner.Status, 10) //the buffered channel to getting the status
	r := runner.New(cfg.RunnerOptions(), u, stateCh)
	out := view.NewConsoleOut(os.Stdout)
	r.RegisterViewer(out)
	_ = out.Start()

	r.Run(ctx)
	for st := range stateCh {
		//the viewer reports the result
		if st.RunningMode == runner.RunningStateFinished {
			break
		}
		if st.RunningMode == runner.RunningStateManual {
			log.Printf("interrupted at iteration %v", st.IterationNum)
			break
		}
	}
	//let the viewer finish its report
	r.Close()
	<-r.Done()
	return nil
}
