package main

import (
	"errors"

	"github.com/jbreitbart/appenergy/extractor"
	"github.com/jbreitbart/appenergy/summary"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg := parseArgs()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	s, err := extractor.Run(cfg)
	switch {
	case errors.Is(err, extractor.ErrInvalidDirectory):
		log.WithError(err).Fatalln("Invalid directory")
	case errors.Is(err, extractor.ErrMissingInputFile):
		log.WithError(err).Fatalln("Input file missing")
	case errors.Is(err, extractor.ErrMissingRequiredColumn):
		log.WithError(err).Fatalln("No entry for " + cfg.PowerColumn + " in the log file")
	case errors.Is(err, extractor.ErrNoQualifyingIntervals):
		log.WithError(err).WithField("summary", cfg.SummaryFile()).Fatalln("No app qualified for the summary, average not written")
	case err != nil:
		log.WithError(err).Fatalln("Extraction failed")
	}

	if *storeJSON {
		if err := summary.StoreToFile(cfg.JSONFile(), s); err != nil {
			log.WithError(err).Fatalln("Could not store summary")
		}
	}
	if *storeProm {
		if err := summary.WriteTextfile(cfg.PromFile(), cfg.Tag, s); err != nil {
			log.WithError(err).Fatalln("Could not store metrics")
		}
	}

	if !*quiet {
		printSummary(s)
	}

	log.WithFields(log.Fields{
		"apps":    s.Len(),
		"summary": cfg.SummaryFile(),
	}).Infoln("Done")
}
