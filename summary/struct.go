package summary

// Summary holds the statistics of all apps of one run
type Summary struct {
	// Apps in the order they were found in the execution log
	Rows []Row

	// Command line options passed to appenergy
	Commandline CommandlineT
}

// CommandlineT is stored next to the rows so a summary file can be traced
// back to its inputs
type CommandlineT struct {
	LogDir      string
	RepDir      string
	Tag         string
	Suite       string
	MinSamples  int
	PowerColumn string
}

// Row is a single line of the summary file
type Row struct {
	App string
	// Time is the runtime in seconds
	Time float64
	// Power is the average power in Watts
	Power float64
	// Energy in Joules
	Energy float64
	// ED is the energy-delay product
	ED float64
}
