package coin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_FixedOrder(t *testing.T) {
	assert.Equal(t, []Type{Bitcoin, Ethereum, Litecoin}, All())
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Type
	}{
		{"bitcoin", Bitcoin},
		{"Ethereum", Ethereum},
		{" LITECOIN ", Litecoin},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Parse("dogecoin")
	assert.Error(t, err)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Bitcoin", Bitcoin.DisplayName())
	assert.Equal(t, "Ethereum", Ethereum.DisplayName())
	assert.Equal(t, "Litecoin", Litecoin.DisplayName())
	assert.False(t, Type("dogecoin").Valid())
}
