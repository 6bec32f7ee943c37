package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	oldVersion, oldCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = oldVersion, oldCommit })

	Version = "1.2.3"
	Commit = "0123456789abcdef"

	info := Info()
	assert.Contains(t, info, "1.2.3 (commit 01234567,")
	assert.NotContains(t, info, "89abcdef")
}
