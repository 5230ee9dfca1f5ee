package main

import (
	"flag"

	"github.com/jbreitbart/appenergy/summary"
	log "github.com/sirupsen/logrus"
)

func main() {
	output := flag.String("output", "energy", "Prefix of the generated plot files")
	flag.Parse()

	inputFiles := flag.Args()
	if len(inputFiles) == 0 {
		log.Fatalln("No input file provided. Use analyzer <run>_summary.json ...")
	}

	var runs []*summary.Summary
	for _, f := range inputFiles {
		s, err := summary.ReadFromFile(f)
		if err != nil {
			log.WithError(err).WithField("file", f).Fatalln("Cannot read input file")
		}
		log.WithFields(log.Fields{
			"file": f,
			"tag":  s.Commandline.Tag,
			"apps": s.Len(),
		}).Infoln("Found run")
		runs = append(runs, s)
	}

	datFiles, err := createDatFiles(runs)
	if err != nil {
		log.WithError(err).Fatalln("Cannot create dat files")
	}

	if err := writeGNUPlotFile(*output, runs, datFiles); err != nil {
		log.WithError(err).Fatalln("Cannot create plot file")
	}
}
