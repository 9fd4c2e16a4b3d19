package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChannelAddressValid(t *testing.T) {
	assert.True(t, ChannelGlobal.Valid())
	assert.True(t, PrivateChannel("s-1").Valid())
	assert.False(t, ChannelAddress("PRIVATE_").Valid())
	assert.False(t, ChannelAddress("hallway").Valid())
	assert.False(t, ChannelAddress("").Valid())
}

func TestPrivateOwner(t *testing.T) {
	owner, ok := PrivateChannel("s-42").PrivateOwner()
	assert.True(t, ok)
	assert.Equal(t, "s-42", owner)

	_, ok = ChannelGlobal.PrivateOwner()
	assert.False(t, ok)
}

func TestChannelAccessMatrix(t *testing.T) {
	sup := &Actor{ID: "sup-1", Role: RoleSupervisor}
	owner := &Actor{ID: "s-1", Role: RoleStaff}
	other := &Actor{ID: "s-2", Role: RoleStaff}
	resident := &Actor{ID: "u-1", Role: RoleCitizen}
	private := PrivateChannel("s-1")

	assert.True(t, ChannelGlobal.AccessibleBy(sup))
	assert.True(t, ChannelGlobal.AccessibleBy(owner))
	assert.False(t, ChannelGlobal.AccessibleBy(resident))

	assert.True(t, private.AccessibleBy(sup))
	assert.True(t, private.AccessibleBy(owner))
	assert.False(t, private.AccessibleBy(other))
	assert.False(t, private.AccessibleBy(resident))
}
