package tests

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jfrog/jfrog-client-go/utils/io/fileutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func CreateTempDirWithCallbackAndAssert(t *testing.T) (string, func()) {
	tempDirPath, err := fileutils.CreateTempDir()
	assert.NoError(t, err, "Couldn't create temp dir")
	return tempDirPath, func() {
		assert.NoError(t, fileutils.RemoveTempDir(tempDirPath), "Couldn't remove temp dir")
	}
}

// WriteFile creates a file under dir, creating intermediate directories.
func WriteFile(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func ChangeDirWithCallback(t *testing.T, originWd, destinationWd string) func() {
	assert.NoError(t, os.Chdir(destinationWd), "Couldn't change dir to "+destinationWd)
	return func() {
		assert.NoError(t, os.Chdir(originWd), "Couldn't change dir to "+originWd)
	}
}
