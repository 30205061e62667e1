package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryKnownAfterRegister(t *testing.T) {
	registry := NewUniquenessRegistry()

	assert.False(t, registry.Known(KindPhoneNumber, "1234567890"))

	registry.Register(KindPhoneNumber, "1234567890")
	assert.True(t, registry.Known(KindPhoneNumber, "1234567890"))
}

func TestRegistryKindsAreIndependent(t *testing.T) {
	registry := NewUniquenessRegistry()

	registry.Register(KindPhoneNumber, "123456789")

	assert.False(t, registry.Known(KindSocialID, "123456789"))
	assert.False(t, registry.Known(KindAccountID, "123456789"))
}

func TestRegistryNeverShrinks(t *testing.T) {
	registry := NewUniquenessRegistry()

	values := []string{"1111111111", "2222222222", "3333333333"}
	for _, v := range values {
		registry.Register(KindPhoneNumber, v)
	}
	for _, v := range values {
		assert.True(t, registry.Known(KindPhoneNumber, v))
	}
}

func TestFreshRegistriesAreIsolated(t *testing.T) {
	first := NewUniquenessRegistry()
	first.Register(KindSocialID, "123456789")

	second := NewUniquenessRegistry()
	assert.False(t, second.Known(KindSocialID, "123456789"))
}
