package formatter

import (
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/hyprconf/internal/model"
)

func TestDumpYAML(t *testing.T) {
	cfg := richConfig()
	data, err := Dump(cfg, DumpYAML)
	require.NoError(t, err)

	out := string(data)
	require.Contains(t, out, "general:\n  border_size: 3\n")
	require.Contains(t, out, "mode: deny")
	require.NotContains(t, out, "kb_model: null", "unset optional attributes are omitted")

	var back model.Config
	require.NoError(t, yaml.Unmarshal(data, &back))
	if diff := cmp.Diff(cfg, &back, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("yaml dump does not load back (-want +got):\n%s", diff)
	}
}

func TestDumpTOML(t *testing.T) {
	cfg := richConfig()
	data, err := Dump(cfg, DumpTOML)
	require.NoError(t, err)

	var back model.Config
	_, err = toml.Decode(string(data), &back)
	require.NoError(t, err)
	if diff := cmp.Diff(cfg, &back, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("toml dump does not load back (-want +got):\n%s", diff)
	}
	require.Nil(t, cfg.Submaps["passthru"], "Dump must not modify its input")
}

func TestDumpUnknownFormat(t *testing.T) {
	_, err := Dump(model.New(), "xml")
	require.ErrorContains(t, err, `unknown dump format "xml"`)
}
