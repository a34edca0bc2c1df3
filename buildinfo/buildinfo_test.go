package buildinfo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func restoreVars(t *testing.T) {
	oldVersion := Version
	oldBuiltAt := BuiltAt
	oldCommit := Commit
	oldVersionString := VersionString

	t.Cleanup(func() {
		Version = oldVersion
		BuiltAt = oldBuiltAt
		Commit = oldCommit
		VersionString = oldVersionString
		buildVersionString()
	})
}

func TestVersionString(t *testing.T) {
	restoreVars(t)
	assert := assert.New(t)

	Version = "head"
	BuiltAt = ""
	Commit = ""
	buildVersionString()
	assert.Equal("head, no build date", VersionString)

	Version = "v1.2.0"
	BuiltAt = "1136239445"
	buildVersionString()
	assert.Contains(VersionString, "v1.2.0, built on ")
	assert.Contains(VersionString, "2006")

	BuiltAt = "not-an-epoch"
	buildVersionString()
	assert.Equal("v1.2.0, invalid build date", VersionString)

	BuiltAt = ""
	Commit = "deadbeef"
	buildVersionString()
	assert.Equal("v1.2.0, no build date, ref deadbeef", VersionString)
}

func TestBuildTime(t *testing.T) {
	restoreVars(t)
	assert := assert.New(t)

	BuiltAt = ""
	assert.Nil(BuildTime())

	BuiltAt = "whenever"
	assert.Nil(BuildTime())

	BuiltAt = "1136239445"
	bt := BuildTime()
	assert.NotNil(bt)
	assert.Equal(time.Unix(1136239445, 0), *bt)
}
