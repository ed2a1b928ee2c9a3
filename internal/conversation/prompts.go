package conversation

import "contractbot/internal/domain"

// Prompt emitted when the dialogue enters a state.
var prompts = map[domain.State]string{
	domain.StateDate:           "Введите дату договора:",
	domain.StateContractNumber: "Введите номер договора:",
	domain.StateFirstName:      "Введите имя:",
	domain.StateLastName:       "Введите фамилию:",
	domain.StateMiddleName:     "Введите отчество (если нет, напишите '-'):",
	domain.StatePhone:          "Введите телефон:",
	domain.StateAddress:        "Введите адрес:",
	domain.StateOrderedItem:    "Введите заказанный товар:",
	domain.StateQuantity:       "Введите количество:",
	domain.StateCost:           "Введите стоимость:",
	domain.StateSbpPhone:       "Введите номер телефона (СБП):",
	domain.StateSbpFullName:    "Введите ФИО (СБП):",
	domain.StateSbpBank:        "Введите банк (СБП):",
}

const (
	msgGenerationFailed = "Произошла ошибка. Попробуйте еще раз /retry.\nСбросить текущее состояние /start"
	msgGenerated        = "Для генерации нового файла нажмите /start"
	msgContextCleared   = "Контекст очищен"
	msgUnknownCommand   = "Неизвестная команда."
	msgIncompleteRecord = "Анкета заполнена не полностью. Начните заново: /start"
)
