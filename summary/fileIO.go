package summary

import (
	"encoding/json"
	"os"
)

// StoreToFile writes s as JSON to filename
func StoreToFile(filename string, s *Summary) error {
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filename, raw, 0644)
}

// ReadFromFile reads a summary stored with StoreToFile
func ReadFromFile(filename string) (*Summary, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var s Summary
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
