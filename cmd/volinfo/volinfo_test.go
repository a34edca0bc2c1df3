package volinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRoot(t *testing.T) {
	assert.EqualValues(t, `C:\`, normalizeRoot("C"))
	assert.EqualValues(t, `C:\`, normalizeRoot("C:"))
	assert.EqualValues(t, `C:\`, normalizeRoot(`C:\`))
	assert.EqualValues(t, `d:\`, normalizeRoot("d"))
	assert.EqualValues(t, `\\?\Volume{foo}\`, normalizeRoot(`\\?\Volume{foo}\`))
}
