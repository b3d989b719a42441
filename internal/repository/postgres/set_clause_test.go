package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetClause(t *testing.T) {
	set := newSetClause()
	set.add("title", "New")
	set.add("is_published", true)

	assert.Equal(t, "title = $1, is_published = $2", set.String())
	assert.Equal(t, 3, set.next())
	assert.Equal(t, []interface{}{"New", true}, set.args)
}
