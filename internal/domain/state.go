package domain

// State identifies which field the conversation is waiting for. The empty
// state means no dialogue is in progress (company not selected yet).
type State string

const (
	StateIdle           State = ""
	StateDate           State = "date"
	StateContractNumber State = "contract_number"
	StateFirstName      State = "first_name"
	StateLastName       State = "last_name"
	StateMiddleName     State = "middle_name"
	StatePhone          State = "phone"
	StateAddress        State = "address"
	StateOrderedItem    State = "ordered_item"
	StateQuantity       State = "quantity"
	StateCost           State = "cost"
	StateSbpPhone       State = "sbp_phone"
	StateSbpFullName    State = "sbp_full_name"
	StateSbpBank        State = "sbp_bank"

	// StateComplete marks a finished dialogue: every field collected, the
	// record preserved until generation succeeds or is reset.
	StateComplete State = "complete"
)
