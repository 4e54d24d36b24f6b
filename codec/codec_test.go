package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONCodec(t *testing.T) {
	type payload struct {
		K      int       `json:"k"`
		Lambda []float64 `json:"lambda"`
	}

	c := JSON{}

	assert.Equal(t, "json", c.Name())

	data, err := c.Marshal(payload{K: 3, Lambda: []float64{0.2, 0.3, 0.5}})
	require.NoError(t, err)

	var got payload
	require.NoError(t, c.Unmarshal(data, &got))
	assert.Equal(t, payload{K: 3, Lambda: []float64{0.2, 0.3, 0.5}}, got)
}

func TestByName(t *testing.T) {
	c, ok := ByName("json")
	require.True(t, ok)
	assert.Equal(t, "json", c.Name())

	_, ok = ByName("msgpack")
	assert.False(t, ok)
}

func TestMustMarshal(t *testing.T) {
	data := MustMarshal(nil, map[string]int{"k": 2})
	assert.JSONEq(t, `{"k":2}`, string(data))

	assert.Panics(t, func() {
		MustMarshal(JSON{}, make(chan int))
	})
}
