package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Neumenon/tribble/tribble"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, tribble.DefaultConfig(), cfg)
}

func TestParse_FullProfile(t *testing.T) {
	cfg, err := Parse([]byte(`
name: night-link
alphabet: "-=+"
pad: "="
sync: "+"
carrier: "+=-="
`))
	require.NoError(t, err)
	assert.Equal(t, tribble.Zero, cfg.Pad)
	assert.Equal(t, tribble.Pos, cfg.Sync)
	assert.Equal(t, tribble.DefaultPattern(), cfg.Carrier)

	// The mapped config must actually drive a codec.
	c, err := tribble.New(cfg)
	require.NoError(t, err)
	out, err := c.Encode([]byte{0x2A})
	require.NoError(t, err)
	back, err := c.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x2A}, back)
}

func TestParse_AlternateAlphabet(t *testing.T) {
	cfg, err := Parse([]byte("alphabet: \"abc\"\ncarrier: \"cab\"\n"))
	require.NoError(t, err)

	c, err := tribble.New(cfg)
	require.NoError(t, err)
	out, err := c.Encode([]byte{7})
	require.NoError(t, err)
	for _, r := range out {
		assert.Contains(t, "abc", string(r))
	}
}

func TestMap_FieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		field   string
	}{
		{"short alphabet", Profile{Alphabet: "-="}, "alphabet"},
		{"duplicate alphabet", Profile{Alphabet: "--="}, "alphabet"},
		{"pad outside alphabet", Profile{Pad: "x"}, "pad"},
		{"pad too long", Profile{Pad: "=="}, "pad"},
		{"sync outside alphabet", Profile{Sync: "?"}, "sync"},
		{"carrier outside alphabet", Profile{Carrier: "+=x"}, "carrier"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Map("test.yaml", tt.profile)
			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.field, fe.Field)
			assert.Contains(t, err.Error(), "test.yaml")
		})
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse([]byte("alphabet: [unclosed"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("carrier: \"+=-=\"\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, tribble.DefaultPattern(), cfg.Carrier)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
