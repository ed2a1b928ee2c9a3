package document

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"contractbot/internal/company"
	"contractbot/internal/domain"
)

func testRecord() domain.OrderRecord {
	return domain.OrderRecord{
		CompanyKey:     domain.CompanyProstor,
		Date:           "07.07.2024",
		ContractNumber: "990178",
		FirstName:      "Людмила",
		LastName:       "Романова",
		MiddleName:     "Викторовна",
		Phone:          "+7 (900) 788-90-12",
		Address:        "г. Москва, ул. Остоженка, д. 90, кв. 78",
		OrderedItem:    "Станок Юпитер Гранд 9000 с полным комплектом, 100% оригинал",
		Quantity:       1,
		Cost:           119990,
		SbpPhone:       "+7 (990) 189-90-81",
		SbpFullName:    "Васильева Ольга Виктровна",
		SbpBank:        "РОСБАНК",
	}
}

func TestDocumentName(t *testing.T) {
	profile, err := company.Lookup(domain.CompanyProstor)
	assert.NoError(t, err)

	name := DocumentName(testRecord(), profile)
	assert.Equal(t, `ООО "Простор". Счет-договор на поставку товара № 990178`, name)
}

func TestPaymentSteps(t *testing.T) {
	profile, err := company.Lookup(domain.CompanyProstor)
	assert.NoError(t, err)

	steps := PaymentSteps(testRecord(), profile)
	assert.Len(t, steps, 7)
	assert.Contains(t, steps[2], "+7 (990) 189-90-81")
	assert.Equal(t, "4. Укажите сумму перевода: 119 990 руб.", steps[3])
	assert.Contains(t, steps[4], `ООО "Простор"`)
	assert.Contains(t, steps[4], "Васильева Ольга Виктровна")
	assert.Contains(t, steps[5], "РОСБАНК")
}

func TestSupplierLines(t *testing.T) {
	profile, err := company.Lookup(domain.CompanyProstor)
	assert.NoError(t, err)

	lines := SupplierLines(profile)
	assert.Equal(t, "ОГРН: 1197746047938", lines[0])
	assert.Equal(t, "ИНН: 7728458381", lines[1])
	assert.Equal(t, "Юр. адрес: 117279, город Москва, Профсоюзная ул., д. 97", lines[2])
	// The warehouse address spans two lines.
	assert.Equal(t, "Центральный склад: 141895, Московская область", lines[3])
	assert.Equal(t, "Глазово деревня, 30, «PNK Парк Северное Шереметьево»", lines[4])
	assert.Equal(t, "__________________________/Любовский Алексей Михайлович/", lines[len(lines)-1])
}

// The full render needs the real fonts and overlay images; skip when they
// are not deployed next to the repo.
func TestRender_TwoPageDocument(t *testing.T) {
	dir := os.Getenv("ASSETS_DIR")
	if dir == "" {
		dir = filepath.Join("..", "..", "assets")
	}
	assets, err := LoadAssets(dir, company.Keys())
	if err != nil {
		t.Skipf("render assets not available: %v", err)
	}

	renderer := NewRenderer(assets, zap.NewNop())

	for _, key := range company.Keys() {
		profile, err := company.Lookup(key)
		assert.NoError(t, err)

		record := testRecord()
		record.CompanyKey = key

		doc, err := renderer.Render(context.Background(), record, profile)
		assert.NoError(t, err)
		assert.NotEmpty(t, doc.Data)
		assert.Contains(t, doc.Name, "Счет-договор")
		assert.True(t, bytes.Contains(doc.Data, []byte("/Count 2")), "expected a two-page document")
	}
}
