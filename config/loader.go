package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrCompaniesFileNotFound is returned when the companies file does not exist.
	ErrCompaniesFileNotFound = errors.New("companies file not found")

	// ErrInvalidCompany is returned when an entry is missing its ISIN, name or code.
	ErrInvalidCompany = errors.New("invalid company entry")
)

// CompaniesFile is the on-disk format for extra ISIN entries.
//
//	companies:
//	  - isin: INE009A01021
//	    name: Infosys
//	    code: INFY
type CompaniesFile struct {
	Companies []Company `yaml:"companies"`
}

// LoadCompaniesFile reads and validates a companies file
func LoadCompaniesFile(path string) (*CompaniesFile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the user on purpose
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrCompaniesFileNotFound
		}
		return nil, err
	}

	var cf CompaniesFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for i, c := range cf.Companies {
		if c.ISIN == "" || c.Name == "" || c.Code == "" {
			return nil, fmt.Errorf("%w: entry %d in %s", ErrInvalidCompany, i, path)
		}
		// keep keys in the same form NormalizeISIN produces
		cf.Companies[i].ISIN = NormalizeISIN(c.ISIN)
	}

	return &cf, nil
}

// BuildRegistry returns the default registry, extended by the companies file
// at path when path is not empty. File entries win over built-in ones.
func BuildRegistry(path string) (*Registry, error) {
	if path == "" {
		return DefaultRegistry(), nil
	}
	cf, err := LoadCompaniesFile(path)
	if err != nil {
		return nil, err
	}
	return NewRegistry(DefaultCompanies, cf.Companies), nil
}
