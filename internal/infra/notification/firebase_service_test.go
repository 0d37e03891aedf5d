package notification

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"testing"

	"marketplace/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkTokens(t *testing.T) {
	t.Parallel()

	makeTokens := func(n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = "token-" + strconv.Itoa(i)
		}

		return out
	}

	tests := []struct {
		name  string
		count int
		sizes []int
	}{
		{name: "empty", count: 0, sizes: []int{}},
		{name: "single chunk", count: 3, sizes: []int{3}},
		{name: "exact limit", count: 500, sizes: []int{500}},
		{name: "overflow", count: 1201, sizes: []int{500, 500, 201}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokens := makeTokens(tt.count)
			chunks := chunkTokens(tokens, maxMulticastTokens)

			sizes := make([]int, 0, len(chunks))
			var flattened []string
			for _, c := range chunks {
				sizes = append(sizes, len(c))
				flattened = append(flattened, c...)
			}
			assert.Equal(t, tt.sizes, sizes)
			if tt.count > 0 {
				assert.Equal(t, tokens, flattened)
			}
		})
	}
}

func TestNew_WithoutCredentialsUsesNoop(t *testing.T) {
	svc, err := New(Params{
		Ctx:    context.Background(),
		Config: &config.Config{Firebase: &config.FirebaseConfig{ProjectID: "demo"}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	assert.IsType(t, &noopService{}, svc)

	success, failure, invalid, err := svc.SendBatchNotification(context.Background(), []string{"a", "b"}, "t", "b", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, success)
	assert.Zero(t, failure)
	assert.Empty(t, invalid)
}
