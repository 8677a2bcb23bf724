//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"recycle-bot/internal/domain/port"
)

func TestStubClassifier_ReturnsError(t *testing.T) {
	c, err := NewGoCVClassifier(Config{})
	require.NoError(t, err)
	require.Equal(t, 224, c.InputSize)

	var classifier port.ImageClassifier = c
	pred, err := classifier.Classify(context.Background(), []byte("jpeg"))
	require.Nil(t, pred)
	require.EqualError(t, err, "gocv build tag is not enabled")
	require.NoError(t, c.Close())
}
