package formatter

import (
	"testing"

	"github.com/donaldgifford/hyprconf/internal/parser"
	"github.com/donaldgifford/hyprconf/internal/testutil"
)

func TestGolden(t *testing.T) {
	testutil.RunGoldenDir(t, "../../testdata", func(input string) (string, error) {
		cfg, err := parser.Parse(input)
		if err != nil {
			return "", err
		}
		return WriteEntities(cfg, nil), nil
	})
}

func TestGoldenIsStable(t *testing.T) {
	// Canonical output fed back through the pipeline must not change.
	testutil.RunGoldenDir(t, "../../testdata", func(input string) (string, error) {
		cfg, err := parser.Parse(input)
		if err != nil {
			return "", err
		}
		again, err := parser.Parse(WriteEntities(cfg, nil))
		if err != nil {
			return "", err
		}
		return WriteEntities(again, nil), nil
	})
}
