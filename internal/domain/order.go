package domain

import (
	"strconv"
	"strings"

	"contractbot/internal/errors"
)

// Field names one collected form value. The values double as wire names in
// the conversation store.
type Field string

const (
	FieldDate           Field = "date"
	FieldContractNumber Field = "contract_number"
	FieldFirstName      Field = "first_name"
	FieldLastName       Field = "last_name"
	FieldMiddleName     Field = "middle_name"
	FieldPhone          Field = "phone"
	FieldAddress        Field = "address"
	FieldOrderedItem    Field = "ordered_item"
	FieldQuantity       Field = "quantity"
	FieldCost           Field = "cost"
	FieldSbpPhone       Field = "sbp_phone"
	FieldSbpFullName    Field = "sbp_full_name"
	FieldSbpBank        Field = "sbp_bank"
)

// Fields lists every collected field in the order the dialogue asks for them.
var Fields = []Field{
	FieldDate,
	FieldContractNumber,
	FieldFirstName,
	FieldLastName,
	FieldMiddleName,
	FieldPhone,
	FieldAddress,
	FieldOrderedItem,
	FieldQuantity,
	FieldCost,
	FieldSbpPhone,
	FieldSbpFullName,
	FieldSbpBank,
}

// OrderRecord accumulates validated values for one submission. It is owned
// by exactly one conversation.
type OrderRecord struct {
	CompanyKey     CompanyKey `json:"company_key"`
	Date           string     `json:"date"`
	ContractNumber string     `json:"contract_number"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	MiddleName     string     `json:"middle_name"`
	Phone          string     `json:"phone"`
	Address        string     `json:"address"`
	OrderedItem    string     `json:"ordered_item"`
	Quantity       int        `json:"quantity"`
	Cost           int        `json:"cost"`
	SbpPhone       string     `json:"sbp_phone"`
	SbpFullName    string     `json:"sbp_full_name"`
	SbpBank        string     `json:"sbp_bank"`
}

// Apply validates one raw input against a field's constraint and stores it.
// On failure the record is left untouched and a ValidationError names the
// offending field.
func (r *OrderRecord) Apply(field Field, raw string) error {
	switch field {
	case FieldQuantity:
		n, err := parseAmount(raw)
		if err != nil {
			return errors.NewValidationError(string(field), "значение должно быть целым числом")
		}
		if n < 1 {
			return errors.NewValidationError(string(field), "значение должно быть не меньше 1")
		}
		r.Quantity = n
		return nil
	case FieldCost:
		n, err := parseAmount(raw)
		if err != nil {
			return errors.NewValidationError(string(field), "значение должно быть целым числом")
		}
		if n < 0 {
			return errors.NewValidationError(string(field), "значение не может быть отрицательным")
		}
		r.Cost = n
		return nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return errors.NewValidationError(string(field), "значение не может быть пустым")
	}

	switch field {
	case FieldDate:
		r.Date = value
	case FieldContractNumber:
		r.ContractNumber = value
	case FieldFirstName:
		r.FirstName = value
	case FieldLastName:
		r.LastName = value
	case FieldMiddleName:
		r.MiddleName = value
	case FieldPhone:
		r.Phone = value
	case FieldAddress:
		r.Address = value
	case FieldOrderedItem:
		r.OrderedItem = value
	case FieldSbpPhone:
		r.SbpPhone = value
	case FieldSbpFullName:
		r.SbpFullName = value
	case FieldSbpBank:
		r.SbpBank = value
	default:
		return errors.NewValidationError(string(field), "неизвестное поле")
	}
	return nil
}

// parseAmount accepts numbers typed with group-separator spaces ("122 990").
func parseAmount(raw string) (int, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
	return strconv.Atoi(cleaned)
}

// Validate reports whether every field has been collected. Used before
// generation, in particular on /retry with a partially filled record.
func (r *OrderRecord) Validate() error {
	stringFields := map[Field]string{
		FieldDate:           r.Date,
		FieldContractNumber: r.ContractNumber,
		FieldFirstName:      r.FirstName,
		FieldLastName:       r.LastName,
		FieldMiddleName:     r.MiddleName,
		FieldPhone:          r.Phone,
		FieldAddress:        r.Address,
		FieldOrderedItem:    r.OrderedItem,
		FieldSbpPhone:       r.SbpPhone,
		FieldSbpFullName:    r.SbpFullName,
		FieldSbpBank:        r.SbpBank,
	}
	for _, field := range Fields {
		switch field {
		case FieldQuantity:
			if r.Quantity < 1 {
				return errors.NewValidationError(string(field), "значение должно быть не меньше 1")
			}
		case FieldCost:
			if r.Cost < 0 {
				return errors.NewValidationError(string(field), "значение не может быть отрицательным")
			}
		default:
			if strings.TrimSpace(stringFields[field]) == "" {
				return errors.NewValidationError(string(field), "значение не может быть пустым")
			}
		}
	}
	if r.CompanyKey == "" {
		return errors.NewValidationError("company_key", "компания не выбрана")
	}
	return nil
}

// FullName is "Фамилия Имя Отчество" as printed in the buyer block.
func (r *OrderRecord) FullName() string {
	return r.LastName + " " + r.FirstName + " " + r.MiddleName
}

// TotalAmount is quantity × unit cost, non-negative by construction.
func (r *OrderRecord) TotalAmount() int {
	return r.Quantity * r.Cost
}
