package company

import (
	"fmt"

	"contractbot/internal/domain"
	"contractbot/internal/errors"
)

// Closed set of supplier profiles. Keys are what the /company_* commands
// offer, so a miss here is a configuration error, not user input.
var profiles = map[domain.CompanyKey]domain.CompanyProfile{
	domain.CompanyProstor: {
		Key:              domain.CompanyProstor,
		Name:             `ООО "Простор"`,
		OGRN:             "1197746047938",
		INN:              "7728458381",
		LegalAddress:     "117279, город Москва, Профсоюзная ул., д. 97",
		CentralWarehouse: "141895, Московская область\nГлазово деревня, 30, «PNK Парк Северное Шереметьево»",
		ExecutorName:     "Любовский Алексей Михайлович",
		ContractText: "1. Предметом настоящего Счет-договора является поставка Товара с вышеуказанным перечнем.\n" +
			"2. Поставщик обязан передать Товар Покупателю в срок от 15 до 25 календарных дней с момента зачисления оплаты.\n" +
			"3. Оплаченный Товар доставляется Покупателю силами Поставщика с использованием услуг транспортных\n" +
			"компаний и обязательным страхованием на полную сумму заказа.\n" +
			"4. Поставщик гарантирует доставку Товара Покупателю по ценам и в сроки, указанные в настоящем Счет-договоре.\n" +
			"5. Поставщик гарантирует, что данный Товар новый, в заводской упаковке, надлежащего качества,\n" +
			"соответствует своим техническим характеристикам, назначению и всем требованиям ГОСТа.\n" +
			"6. В случае просрочки поставки Товара Поставщиком в срок, указанный в Счет-договоре, Поставщик\n" +
			"уплачивает Покупателю неустойку в размере 0,5% от цены не поставленного Товара за каждый день просрочки\n" +
			"поставки до фактического исполнения обязательства по настоящему Счет-договору.\n" +
			"7. При приемке Товара Покупатель проверяет комплектность, отсутствие видимых дефектов и механических\n" +
			"повреждений. В случае обнаружения дефектов и/или некомплектности Товара, Покупатель составляет Акт\n" +
			"совместно с представителем транспортной компании, где указывает соответствующие недостатки. Поставщик\n" +
			"обязуется заменить Товар или вернуть денежные средства в полном объеме в течении 3 (трех) рабочих дней.\n" +
			"8. Претензии по качеству товара принимаются в течении 30 дней с момента принятия товара Покупателем.\n" +
			"9. Гарантийный срок (установленный заводом-изготовителем) исчисляется с момента передачи товара\n" +
			"Покупателю.\n" +
			"10. Поставка осуществляется на условиях 100% (полной) предоплаты товара по настоящему Счет-договору.\n" +
			"11. Настоящий Счет-договор действителен в течении 1 (одного) дня от даты его составления. При отсутствии\n" +
			"оплаты в указанный срок настоящий Счет-договор признается недействительным.",
	},
	domain.CompanyStroytorgcomplect: {
		Key:              domain.CompanyStroytorgcomplect,
		Name:             `ООО "Стройторгкомплект"`,
		OGRN:             "1157746053046",
		INN:              "7728188093",
		LegalAddress:     "108817, г. Москва, п. Внуковское, ул. Лётчика Ульянина, д. 6",
		CentralWarehouse: "108811, г. Москва, Киевское ш., д. 4, БП “Румянцево”",
		ExecutorName:     "Шишкин Александр Сергеевич",
		ContractText: "1. Предметом настоящего Счет-договора является поставка Товара с вышеуказанным перечнем.\n" +
			"2. Поставщик обязан передать Товар Покупателю в срок от 15 до 25 рабочих дней с момента зачисления оплаты.\n" +
			"3. Оплаченный Товар доставляется Покупателю силами Поставщика с использованием услуг транспортных\n" +
			"компаний и обязательным страхованием на полную сумму заказа.\n" +
			"4. Поставщик гарантирует доставку Товара Покупателю по ценам и в сроки, указанные в настоящем Счет-договоре.\n" +
			"5. Поставщик гарантирует, что данный Товар новый, в заводской упаковке, надлежащего качества,\n" +
			"соответствует своим техническим характеристикам, назначению и всем требованиям ГОСТа.\n" +
			"6. В случае просрочки поставки Товара Поставщиком в срок, указанный в Счет-договоре, Поставщик\n" +
			"уплачивает Покупателю неустойку в размере 0,5% от цены не поставленного Товара за каждый день просрочки\n" +
			"поставки до фактического исполнения обязательства по настоящему Счет-договору.\n" +
			"7. При приемке Товара Покупатель проверяет комплектность, отсутствие видимых дефектов и механических\n" +
			"повреждений. В случае обнаружения дефектов и/или некомплектности Товара, Покупатель составляет Акт\n" +
			"совместно с представителем транспортной компании, где указывает соответствующие недостатки. Поставщик\n" +
			"обязуется заменить Товар или вернуть денежные средства в полном объеме в течении 3 (трех) рабочих дней.\n" +
			"8. Претензии по качеству товара принимаются в течении 30 дней с момента принятия товара Покупателем.\n" +
			"9. Гарантийный срок (установленный заводом-изготовителем) исчисляется с момента передачи товара\n" +
			"Покупателю.\n" +
			"10. Поставка осуществляется на условиях 100% (полной) предоплаты товара по настоящему Счет-договору.\n" +
			"11. Настоящий Счет-договор действителен в течении 1 (одного) дня от даты его составления. При отсутствии\n" +
			"оплаты в указанный срок настоящий Счет-договор признается недействительным.",
	},
}

// keyOrder fixes the order commands and menus list companies in.
var keyOrder = []domain.CompanyKey{
	domain.CompanyProstor,
	domain.CompanyStroytorgcomplect,
}

// Lookup returns a copy of the profile for key.
func Lookup(key domain.CompanyKey) (domain.CompanyProfile, error) {
	profile, ok := profiles[key]
	if !ok {
		return domain.CompanyProfile{}, errors.NewConfigError(fmt.Sprintf("неизвестная компания: %q", key))
	}
	return profile, nil
}

// Keys returns the registered company keys in stable order.
func Keys() []domain.CompanyKey {
	keys := make([]domain.CompanyKey, len(keyOrder))
	copy(keys, keyOrder)
	return keys
}

// Registry adapts the static profile table for consumers that accept an
// interface.
type Registry struct{}

func (Registry) Lookup(key domain.CompanyKey) (domain.CompanyProfile, error) {
	return Lookup(key)
}

func (Registry) Keys() []domain.CompanyKey {
	return Keys()
}
