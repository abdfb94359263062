package unicode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUTF16(t *testing.T) {
	got, err := ToUTF16("Hé😀")
	require.NoError(t, err)
	assert.Equal(t, []uint16{'H', 0xe9, 0xd83d, 0xde00, 0}, got)

	got, err = ToUTF16("")
	require.NoError(t, err)
	assert.Equal(t, []uint16{0}, got)

	_, err = ToUTF16("a\x00b")
	assert.ErrorIs(t, err, ErrEmbeddedNUL)
}

func TestFromUTF16(t *testing.T) {
	assert.Equal(t, "Hé😀", FromUTF16([]uint16{'H', 0xe9, 0xd83d, 0xde00, 0, 'x'}))
	assert.Equal(t, "ok", FromUTF16([]uint16{'o', 'k'}))
	assert.Equal(t, "", FromUTF16(nil))
	assert.Equal(t, "a�b", FromUTF16([]uint16{'a', 0xd800, 'b'}))
}

func TestUTF16RoundTrip(t *testing.T) {
	for _, s := range []string{"window", "Fenêtre", "窗口", "🪟 pane"} {
		u, err := ToUTF16(s)
		require.NoError(t, err)
		assert.Equal(t, s, FromUTF16(u))
	}
}

func TestLatin1(t *testing.T) {
	assert.Equal(t, "Caf\xe9", ToLatin1("Café"))
	assert.Equal(t, "a?b", ToLatin1("a窗b"))
	assert.Equal(t, "Café", FromLatin1("Caf\xe9"))
	assert.Equal(t, "plain", FromLatin1(ToLatin1("plain")))
}
