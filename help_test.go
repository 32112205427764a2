package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelp_Write(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give    Help
		wantErr string
	}{
		{give: UsageHelp},
		{give: DefaultHelp},
		{give: ConfigHelp},
		{give: FieldsHelp},
		{
			give:    "not-a-topic",
			wantErr: `unknown help topic "not-a-topic": valid values`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.give.String(), func(t *testing.T) {
			t.Parallel()

			err := tt.give.Write(io.Discard)
			if len(tt.wantErr) > 0 {
				assert.ErrorContains(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHelp_usageIsFirstLine(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	require.NoError(t, UsageHelp.Write(&buff))
	assert.Equal(t, 1, strings.Count(buff.String(), "\n"))
	assert.True(t, strings.HasPrefix(_defaultHelp, buff.String()))
}

func TestHelp_Set(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give string
		want Help
	}{
		{give: "true", want: DefaultHelp},
		{give: "false", want: NoHelp},
		{give: " Fields ", want: FieldsHelp},
	}

	for _, tt := range tests {
		t.Run(tt.give, func(t *testing.T) {
			t.Parallel()

			var h Help
			require.NoError(t, h.Set(tt.give))
			assert.Equal(t, tt.want, h)
			assert.Equal(t, tt.want, h.Get())
		})
	}
}

func TestHelp_noHelp(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	require.NoError(t, NoHelp.Write(&buff))
	assert.Empty(t, buff.String())
	assert.False(t, NoHelp.Known())
}
