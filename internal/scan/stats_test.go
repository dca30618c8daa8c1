package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregates_Verify(t *testing.T) {
	agg := newAggregates()
	require.NoError(t, agg.verify())

	agg.discovered = 3
	agg.processed = 2
	agg.failed = 1
	require.NoError(t, agg.verify())

	agg.failed = 0
	err := agg.verify()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "counter mismatch")
}

func TestAggregates_SnapshotIndependence(t *testing.T) {
	agg := newAggregates()
	agg.discovered = 2
	agg.processed = 2
	agg.extCounts[".txt"] = 2
	agg.largeFiles = append(agg.largeFiles, "/data/big.txt")
	agg.duplicates["big.txt"] = append(agg.duplicates["big.txt"], "/data/big.txt", "/data/sub/big.txt")

	snap := agg.snapshot()

	agg.extCounts[".txt"] = 7
	agg.largeFiles[0] = "changed"
	agg.duplicates["big.txt"][0] = "changed"

	assert.Equal(t, 2, snap.ExtensionCounts[".txt"])
	assert.Equal(t, "/data/big.txt", snap.LargeFiles[0])
	assert.Equal(t, "/data/big.txt", snap.Duplicates["big.txt"][0])
}

func TestExtensionOf(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"report", NoExtension},
		{"archive.tar.gz", ".gz"},
		{".gitignore", NoExtension},
		{"a.txt", ".txt"},
		{"photo.JPG", ".JPG"},
		{"trailing.", "."},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, extensionOf(tt.name), "extensionOf(%q)", tt.name)
	}
}
