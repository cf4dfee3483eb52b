package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocument_String(t *testing.T) {
	d := Document{"email": "a@x.com", "price": 9.5}
	assert.Equal(t, "a@x.com", d.String("email"))
	assert.Equal(t, "", d.String("price"))
	assert.Equal(t, "", d.String("missing"))
}

func TestDocument_CloneIsShallowCopy(t *testing.T) {
	d := Document{"email": "a@x.com"}
	c := d.Clone()
	c["role"] = "admin"
	_, ok := d["role"]
	assert.False(t, ok)
}

func TestRole_IsAdmin(t *testing.T) {
	assert.True(t, RoleAdmin.IsAdmin())
	assert.False(t, RoleNormal.IsAdmin())
	assert.False(t, Role("").IsAdmin())
}
