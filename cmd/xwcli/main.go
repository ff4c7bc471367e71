package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"crosswarped.com/xwsolver"
	"crosswarped.com/xwsolver/internal/load"
)

func main() {
	structureFile := flag.String("structure", "", "The file describing the grid layout ('_' = fillable)")
	wordsFile := flag.String("words", "", "The file to load candidate words from")
	output := flag.String("output", "", "Optional PNG file to render the solution to")

	timeout := flag.Duration("timeout", 1*time.Minute, "The timeout for the solver")

	profile := flag.Bool("profile", false, "Profile the solver")
	profileFile := flag.String("profile-file", "cpu.pprof", "The file to write the CPU profile to")
	memoryProfileFile := flag.String("memory-profile-file", "mem.pprof", "The file to write the memory profile to")

	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *structureFile == "" || *wordsFile == "" {
		fmt.Println("Usage: xwcli -structure <file> -words <file> [-output <file.png>]")
		os.Exit(1)
	}

	structure, err := load.Structure(*structureFile)
	if err != nil {
		log.Fatal().Err(err).Msg("loading structure")
	}

	words, err := load.Words(*wordsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("loading words")
	}
	log.Info().Int("words", len(words)).Msg("loaded vocabulary")

	crossword, err := xwsolver.New(structure, words)
	if err != nil {
		log.Fatal().Err(err).Msg("building crossword")
	}
	log.Info().Int("slots", len(crossword.Variables())).Msg("derived grid model")

	var mf *os.File
	if *profile {
		f, err := os.Create(*profileFile)
		if err != nil {
			log.Fatal().Err(err).Msg("creating profile file")
		}
		defer f.Close()

		mf, err = os.Create(*memoryProfileFile)
		if err != nil {
			log.Fatal().Err(err).Msg("creating memory profile file")
		}
		defer mf.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("starting CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	start := time.Now()
	assignment, err := xwsolver.NewSolver(crossword).Solve(ctx)
	elapsed := time.Since(start)

	switch {
	case errors.Is(err, xwsolver.ErrNoSolution):
		log.Info().Dur("elapsed", elapsed).Msg("no solution")
		fmt.Println("No solution.")
	case err != nil:
		log.Fatal().Err(err).Dur("elapsed", elapsed).Msg("solve aborted")
	default:
		log.Info().Dur("elapsed", elapsed).Msg("solved")
		fmt.Println(crossword.Render(assignment))
		if *output != "" {
			if err := crossword.SaveImage(*output, assignment); err != nil {
				log.Fatal().Err(err).Msg("saving image")
			}
			log.Info().Str("file", *output).Msg("wrote image")
		}
	}

	if mf != nil {
		pprof.WriteHeapProfile(mf)
	}
}
