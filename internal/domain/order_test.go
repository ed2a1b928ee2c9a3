package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"contractbot/internal/errors"
)

func TestOrderRecord_ApplyQuantity(t *testing.T) {
	var r OrderRecord

	err := r.Apply(FieldQuantity, "0")
	assert.Error(t, err)
	_, ok := errors.IsValidationError(err)
	assert.True(t, ok)

	err = r.Apply(FieldQuantity, "-1")
	assert.Error(t, err)

	err = r.Apply(FieldQuantity, "abc")
	assert.Error(t, err)

	err = r.Apply(FieldQuantity, "1")
	assert.NoError(t, err)
	assert.Equal(t, 1, r.Quantity)
}

func TestOrderRecord_ApplyCost(t *testing.T) {
	var r OrderRecord

	err := r.Apply(FieldCost, "-1")
	assert.Error(t, err)

	err = r.Apply(FieldCost, "0")
	assert.NoError(t, err)
	assert.Equal(t, 0, r.Cost)

	err = r.Apply(FieldCost, "119990")
	assert.NoError(t, err)
	assert.Equal(t, 119990, r.Cost)
}

func TestOrderRecord_ApplyCostWithGroupSeparators(t *testing.T) {
	var r OrderRecord

	err := r.Apply(FieldCost, "122 990")
	assert.NoError(t, err)
	assert.Equal(t, 122990, r.Cost)
}

func TestOrderRecord_ApplyStringFields(t *testing.T) {
	var r OrderRecord

	err := r.Apply(FieldFirstName, "  Людмила  ")
	assert.NoError(t, err)
	assert.Equal(t, "Людмила", r.FirstName)

	err = r.Apply(FieldAddress, "   ")
	assert.Error(t, err)
	ve, ok := errors.IsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, "address", ve.Field)
	assert.Empty(t, r.Address)
}

func TestOrderRecord_ApplyFailureDoesNotMutate(t *testing.T) {
	r := OrderRecord{Quantity: 3}

	err := r.Apply(FieldQuantity, "zero")
	assert.Error(t, err)
	assert.Equal(t, 3, r.Quantity)
}

func TestOrderRecord_TotalAmount(t *testing.T) {
	r := OrderRecord{Quantity: 2, Cost: 59990}
	assert.Equal(t, 119980, r.TotalAmount())
}

func TestOrderRecord_Validate(t *testing.T) {
	r := completeRecord()
	assert.NoError(t, r.Validate())

	incomplete := completeRecord()
	incomplete.SbpBank = ""
	assert.Error(t, incomplete.Validate())

	noCompany := completeRecord()
	noCompany.CompanyKey = ""
	assert.Error(t, noCompany.Validate())

	noQuantity := completeRecord()
	noQuantity.Quantity = 0
	assert.Error(t, noQuantity.Validate())
}

func TestOrderRecord_FullName(t *testing.T) {
	r := OrderRecord{FirstName: "Людмила", LastName: "Романова", MiddleName: "Викторовна"}
	assert.Equal(t, "Романова Людмила Викторовна", r.FullName())
}

func completeRecord() OrderRecord {
	return OrderRecord{
		CompanyKey:     CompanyProstor,
		Date:           "07.07.2024",
		ContractNumber: "990178",
		FirstName:      "Людмила",
		LastName:       "Романова",
		MiddleName:     "Викторовна",
		Phone:          "+7 (900) 788-90-12",
		Address:        "г. Москва, ул. Остоженка, д. 90, кв. 78",
		OrderedItem:    "Станок Юпитер Гранд 9000",
		Quantity:       1,
		Cost:           119990,
		SbpPhone:       "+7 (990) 189-90-81",
		SbpFullName:    "Васильева Ольга Виктровна",
		SbpBank:        "РОСБАНК",
	}
}
