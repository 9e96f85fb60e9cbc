package clone_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mirror/clone"
	"mirror/member"
)

func registry(t *testing.T) *member.TypeRegistry {
	t.Helper()

	r := member.NewTypeRegistry()
	_, err := member.RegisterType[node](r)
	require.NoError(t, err)

	return r
}

func TestParseProfile(t *testing.T) {
	yaml := `
defaults: true
types:
  - mirror/clone_test.node
kinds:
  - map
`

	p, err := clone.ParseProfile([]byte(yaml), registry(t))
	require.NoError(t, err)

	assert.True(t, p.Defaults)
	assert.Equal(t, []string{"mirror/clone_test.node"}, p.Types)
	assert.Equal(t, []string{"map"}, p.Kinds)

	doc := newDocument()

	cp, err := clone.Deep(clone.NewBuilder().Apply(p).Build(), doc)
	require.NoError(t, err)

	assert.NotSame(t, doc, cp)
	assert.Same(t, doc.Owner, cp.Owner)
	assert.Equal(t, reflect.ValueOf(doc.Index).Pointer(), reflect.ValueOf(cp.Index).Pointer())
	assert.Same(t, doc.at.Location(), cp.at.Location())
}

func TestParseProfile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name:    "unknown type",
			yaml:    "types: [example.com/missing.Type]",
			wantErr: clone.ErrUnknownType,
		},
		{
			name:    "unknown kind",
			yaml:    "kinds: [pointer]",
			wantErr: clone.ErrUnknownKind,
		},
		{
			name: "malformed",
			yaml: "types: {",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := clone.ParseProfile([]byte(tt.yaml), registry(t))
			require.Error(t, err)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoadProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kinds: [ptr, slice]\n"), 0o644))

	p, err := clone.LoadProfile(path, nil)
	require.NoError(t, err)
	assert.False(t, p.Defaults)
	assert.Equal(t, []string{"ptr", "slice"}, p.Kinds)

	n := &node{name: "n"}
	cp, err := clone.Deep(clone.NewBuilder().Apply(p).Build(), n)
	require.NoError(t, err)
	assert.Same(t, n, cp)

	_, err = clone.LoadProfile(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestProfile_Marshal(t *testing.T) {
	p, err := clone.ParseProfile([]byte("defaults: true\nkinds: [map]\n"), nil)
	require.NoError(t, err)

	out, err := p.Marshal()
	require.NoError(t, err)
	assert.Equal(t, "defaults: true\nkinds:\n    - map\n", string(out))
}
