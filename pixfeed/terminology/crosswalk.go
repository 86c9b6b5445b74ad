package terminology

import (
	"fmt"
	"io"

	"github.com/dimchansky/utfbom"
	"github.com/go-gota/gota/dataframe"
	"github.com/pkg/errors"

	"github.com/CMSgov/pixfeed-app/log"
)

const (
	colSourceSystem = "source_system"
	colSourceCode   = "source_code"
	colTargetSystem = "target_system"
	colTargetCode   = "target_code"
)

var crosswalkFields = []string{colSourceSystem, colSourceCode, colTargetSystem, colTargetCode}

type crosswalkKey struct {
	sourceSystem string
	sourceCode   string
	targetSystem string
}

// Crosswalk is a static concept map loaded from a tab separated file with the
// columns source_system, source_code, target_system and target_code.
type Crosswalk struct {
	entries map[crosswalkKey]string
}

// LoadCrosswalk reads a crosswalk TSV. A leading byte order mark is skipped.
func LoadCrosswalk(r io.Reader) (*Crosswalk, error) {
	df := dataframe.ReadCSV(utfbom.SkipOnly(r), dataframe.HasHeader(true), dataframe.DetectTypes(false),
		dataframe.WithDelimiter('\t'))
	if df.Err != nil {
		return nil, errors.Wrap(df.Err, "failed to parse crosswalk")
	}

	if err := validateCrosswalk(df); err != nil {
		return nil, err
	}

	c := &Crosswalk{entries: make(map[crosswalkKey]string, df.Nrow())}
	for i, record := range df.Maps() {
		key := crosswalkKey{
			sourceSystem: str(record[colSourceSystem]),
			sourceCode:   str(record[colSourceCode]),
			targetSystem: str(record[colTargetSystem]),
		}
		target := str(record[colTargetCode])
		if key.sourceSystem == "" || key.sourceCode == "" || key.targetSystem == "" || target == "" {
			log.Terminology.Warnf("Skipping incomplete crosswalk row %d", i+1)
			continue
		}
		c.entries[key] = target
	}

	log.Terminology.Debugf("Loaded %d crosswalk entries", len(c.entries))
	return c, nil
}

func validateCrosswalk(df dataframe.DataFrame) error {
	names := make(map[string]struct{}, df.Ncol())
	for _, n := range df.Names() {
		names[n] = struct{}{}
	}
	for _, field := range crosswalkFields {
		if _, ok := names[field]; !ok {
			return fmt.Errorf("crosswalk is missing required column %s", field)
		}
	}
	return nil
}

// gota reports empty and NaN cells as nil.
func str(v interface{}) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func (c *Crosswalk) Translate(code, sourceSystem, targetSystem string) (string, bool) {
	target, ok := c.entries[crosswalkKey{sourceSystem, code, targetSystem}]
	return target, ok
}

func (c *Crosswalk) Len() int {
	return len(c.entries)
}
