package main

import (
	"fmt"
	"os"

	"github.com/jbreitbart/appenergy/summary"
	log "github.com/sirupsen/logrus"
)

func gnuplotScript(output string, runs []*summary.Summary, datFiles []string) (string, error) {
	if len(runs) != len(datFiles) {
		return "", fmt.Errorf("Internal error: %v runs but %v dat files", len(runs), len(datFiles))
	}

	var ret string
	ret += "set terminal pdf\n"
	ret += "set output '" + output + ".pdf'\n"

	ret += "set yrange [0:*]\n"
	ret += "set key right top\n"
	ret += "unset x2tics\n"
	ret += "unset y2tics\n"
	ret += "set border 3\n"
	ret += "set style fill solid 0.5\n"
	ret += "set boxwidth 0.8\n"
	ret += "set xtics rotate by -45\n"

	ret += "set ylabel 'Energy (J)'\n"

	for i, s := range runs {
		title := s.Commandline.Tag
		if title == "" {
			title = datFiles[i]
		}
		ret += "plot '" + datFiles[i] + "' using 1:5:xtic(2) with boxes title 'Energy (" + title + ")'\n"
	}

	return ret, nil
}

func writeGNUPlotFile(output string, runs []*summary.Summary, datFiles []string) error {
	log.Infoln("Creating plot file.")

	script, err := gnuplotScript(output, runs, datFiles)
	if err != nil {
		return err
	}

	filename := output + ".plot"
	if err := os.WriteFile(filename, []byte(script), 0644); err != nil {
		return fmt.Errorf("Error while write file %v: %w", filename, err)
	}
	return nil
}
