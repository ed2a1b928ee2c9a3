package company

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"contractbot/internal/domain"
	"contractbot/internal/errors"
)

func TestLookup_KnownKeys(t *testing.T) {
	for _, key := range Keys() {
		profile, err := Lookup(key)
		assert.NoError(t, err)
		assert.Equal(t, key, profile.Key)
		assert.NotEmpty(t, profile.Name)
		assert.NotEmpty(t, profile.OGRN)
		assert.NotEmpty(t, profile.INN)
		assert.NotEmpty(t, profile.LegalAddress)
		assert.NotEmpty(t, profile.CentralWarehouse)
		assert.NotEmpty(t, profile.ExecutorName)
		assert.NotEmpty(t, profile.ContractText)
	}
}

func TestLookup_UnknownKey(t *testing.T) {
	_, err := Lookup(domain.CompanyKey("romashka"))
	assert.Error(t, err)
	_, ok := errors.IsConfigError(err)
	assert.True(t, ok)
}

func TestKeys_StableOrder(t *testing.T) {
	keys := Keys()
	assert.Equal(t, []domain.CompanyKey{domain.CompanyProstor, domain.CompanyStroytorgcomplect}, keys)

	// Returned slice must not alias the registry's internal order.
	keys[0] = domain.CompanyKey("mutated")
	assert.Equal(t, domain.CompanyProstor, Keys()[0])
}

func TestContractText_NumberedClauses(t *testing.T) {
	for _, key := range Keys() {
		profile, err := Lookup(key)
		assert.NoError(t, err)

		lines := strings.Split(profile.ContractText, "\n")
		assert.True(t, strings.HasPrefix(lines[0], "1."))
		assert.Contains(t, profile.ContractText, "\n11.")
	}
}

func TestRegistry_Adapter(t *testing.T) {
	r := Registry{}
	assert.Equal(t, Keys(), r.Keys())

	profile, err := r.Lookup(domain.CompanyProstor)
	assert.NoError(t, err)
	assert.Equal(t, `ООО "Простор"`, profile.Name)
}
