package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jbreitbart/appenergy/summary"
	log "github.com/sirupsen/logrus"
)

// createDatFiles writes one dat file per run and returns the filenames
func createDatFiles(runs []*summary.Summary) ([]string, error) {
	log.Infoln("Creating dat files.")

	ret := make([]string, 0, len(runs))
	for i, s := range runs {
		filename := datFilename(s, i)
		err := os.WriteFile(filename, []byte(datFile(s)), 0644)
		if err != nil {
			return nil, fmt.Errorf("Error while write file %v: %w", filename, err)
		}
		ret = append(ret, filename)
	}
	return ret, nil
}

func datFile(s *summary.Summary) string {
	out := "# " + s.Commandline.Tag + "\n"
	out += "# Index App Time(s) Power(W) Energy(J) ED\n"

	for i, r := range s.Rows {
		out += strconv.Itoa(i) + " " + r.App + " "
		out += strconv.FormatFloat(r.Time, 'E', -1, 64) + " " + strconv.FormatFloat(r.Power, 'E', -1, 64) + " "
		out += strconv.FormatFloat(r.Energy, 'E', -1, 64) + " " + strconv.FormatFloat(r.ED, 'E', -1, 64) + "\n"
	}

	return out
}

// datFilename falls back to the position of the run if no tag was stored
func datFilename(s *summary.Summary, idx int) string {
	tag := s.Commandline.Tag
	if tag == "" {
		tag = "run" + strconv.Itoa(idx)
	}
	return tag + "-energy.dat"
}
