package pwcheck

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreAll_PreservesOrder(t *testing.T) {
	passwords := make([]string, 0, 200)
	for i := 0; i < 200; i++ {
		passwords = append(passwords, fmt.Sprintf("Pass-%d-word_%d", i, i*7))
	}
	passwords = append(passwords, "qwerty", "", "Blue-Fox_Sings 9 Kites!")

	cfg := DefaultConfig()
	got, err := ScoreAll(context.Background(), passwords, testBlocklist, testDictionary, cfg, 8)
	require.NoError(t, err)
	require.Len(t, got, len(passwords))

	for i, pw := range passwords {
		assert.Equal(t, ScorePassword(pw, testBlocklist, testDictionary, cfg), got[i], pw)
	}
}

func TestScoreAll_DefaultWorkers(t *testing.T) {
	got, err := ScoreAll(context.Background(), []string{"a", "b"}, nil, nil, DefaultConfig(), 0)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestScoreAll_Empty(t *testing.T) {
	got, err := ScoreAll(context.Background(), nil, nil, nil, DefaultConfig(), 2)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestScoreAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := ScoreAll(ctx, []string{"a", "b", "c"}, nil, nil, DefaultConfig(), 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got)
}
